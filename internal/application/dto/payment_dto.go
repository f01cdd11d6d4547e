package dto

import "github.com/shopspring/decimal"

// CreatePaymentRequest body for POST /api/payments.
type CreatePaymentRequest struct {
	InvoiceID      string          `json:"invoice_id"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	PaymentMethod  string          `json:"payment_method"`
	TransactionRef string          `json:"transaction_ref,omitempty"`
	DateReceived   string          `json:"date_received"` // yyyy-MM-dd
	ReceivedBy     string          `json:"received_by"`
	Position       string          `json:"position,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

// PreviewPaymentRequest body for POST /api/payments/preview.
type PreviewPaymentRequest struct {
	InvoiceID  string          `json:"invoice_id"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
}

// PaymentPreviewResponse advisory result of applying a proposed amount to an
// invoice's current outstanding balance. The authoritative check happens
// again inside the record-payment transaction.
type PaymentPreviewResponse struct {
	InvoiceID     string          `json:"invoice_id"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	FullyPaid     bool            `json:"fully_paid"`
}

// PaymentResponse payment/receipt with server-computed numbering and balance
// snapshots.
type PaymentResponse struct {
	ID                   string          `json:"id"`
	InvoiceID            string          `json:"invoice_id"`
	InvoiceNumber        string          `json:"invoice_number,omitempty"`
	ClientName           string          `json:"client_name,omitempty"`
	ReceiptNumber        string          `json:"receipt_number"`
	AmountPaid           decimal.Decimal `json:"amount_paid"`
	PaymentMethod        string          `json:"payment_method"`
	TransactionRef       string          `json:"transaction_ref,omitempty"`
	DateReceived         string          `json:"date_received"`
	ReceivedBy           string          `json:"received_by"`
	Position             string          `json:"position,omitempty"`
	Notes                string          `json:"notes,omitempty"`
	InvoiceBalanceBefore decimal.Decimal `json:"invoice_balance_before"`
	InvoiceBalanceAfter  decimal.Decimal `json:"invoice_balance_after"`
	InvoiceStatus        string          `json:"invoice_status,omitempty"`
	CreatedAt            string          `json:"created_at"`
}
