package entity

import "time"

// Station holds the single station's settings: letterhead details, bank
// account for transfers, and the numbering sequences for invoices and
// receipts. Exactly one row exists.
type Station struct {
	ID             string
	Name           string
	Address        string
	Phone          string
	Email          string
	BankName       string
	AccountName    string
	AccountNumber  string
	LogoURL        string
	InvoicePrefix  string
	InvoiceCounter int
	ReceiptPrefix  string
	ReceiptCounter int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
