package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Accepted payment methods.
const (
	MethodCash         = "Cash"
	MethodBankTransfer = "Bank Transfer"
	MethodPOS          = "POS"
	MethodCheque       = "Cheque"
)

// PaymentMethods lists the accepted methods for validation.
var PaymentMethods = []string{MethodCash, MethodBankTransfer, MethodPOS, MethodCheque}

// Payment records money received against one invoice. A payment is immutable
// once created: its lifecycle is create-once, read-many, and the balance
// snapshot fields preserve the invoice state at the moment it was applied.
type Payment struct {
	ID                   string
	InvoiceID            string
	ReceiptNumber        string
	AmountPaid           decimal.Decimal
	PaymentMethod        string
	TransactionRef       string
	DateReceived         time.Time
	ReceivedBy           string
	Position             string // role of the person who received the money
	Notes                string
	InvoiceBalanceBefore decimal.Decimal
	InvoiceBalanceAfter  decimal.Decimal // balance_before - amount_paid, never negative
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
