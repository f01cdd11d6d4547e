package dto

import "github.com/shopspring/decimal"

// ServiceLineRequest is one raw service line as submitted by a client.
// Derived values (total_slots, line_total) are never accepted on the wire;
// the server recomputes them so its arithmetic stays authoritative.
type ServiceLineRequest struct {
	Description  string          `json:"description"`
	Duration     string          `json:"duration,omitempty"`
	DailySlots   int             `json:"daily_slots"`
	CampaignDays int             `json:"campaign_days"`
	RatePerSlot  decimal.Decimal `json:"rate_per_slot"`
}

// CreateInvoiceRequest body for POST /api/invoices. VATRate is optional;
// when nil the station default applies. A zero rate must be sent explicitly.
type CreateInvoiceRequest struct {
	ClientID        string               `json:"client_id"`
	InvoiceType     string               `json:"invoice_type"`
	InvoiceDate     string               `json:"invoice_date"` // yyyy-MM-dd
	Services        []ServiceLineRequest `json:"services"`
	VATRate         *decimal.Decimal     `json:"vat_rate,omitempty"`
	AdvanceRequired *decimal.Decimal     `json:"advance_required,omitempty"`
	PaymentTerms    string               `json:"payment_terms,omitempty"`
	Notes           string               `json:"notes,omitempty"`
}

// UpdateInvoiceRequest body for PUT /api/invoices/:id. Nil fields keep their
// current value; a non-nil Services replaces the whole line list.
type UpdateInvoiceRequest struct {
	ClientID        *string              `json:"client_id,omitempty"`
	InvoiceType     *string              `json:"invoice_type,omitempty"`
	InvoiceDate     *string              `json:"invoice_date,omitempty"`
	Services        []ServiceLineRequest `json:"services,omitempty"`
	VATRate         *decimal.Decimal     `json:"vat_rate,omitempty"`
	AdvanceRequired *decimal.Decimal     `json:"advance_required,omitempty"`
	PaymentTerms    *string              `json:"payment_terms,omitempty"`
	Notes           *string              `json:"notes,omitempty"`
}

// ServiceLineResponse service line with server-computed derivations.
type ServiceLineResponse struct {
	Description  string          `json:"description"`
	Duration     string          `json:"duration,omitempty"`
	DailySlots   int             `json:"daily_slots"`
	CampaignDays int             `json:"campaign_days"`
	RatePerSlot  decimal.Decimal `json:"rate_per_slot"`
	TotalSlots   int             `json:"total_slots"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

// InvoiceResponse full invoice with authoritative totals.
type InvoiceResponse struct {
	ID                 string                `json:"id"`
	InvoiceNumber      string                `json:"invoice_number"`
	ClientID           string                `json:"client_id"`
	ClientName         string                `json:"client_name,omitempty"`
	InvoiceType        string                `json:"invoice_type"`
	InvoiceDate        string                `json:"invoice_date"`
	Services           []ServiceLineResponse `json:"services"`
	VATRate            decimal.Decimal       `json:"vat_rate"`
	TotalSlots         int                   `json:"total_slots"`
	Subtotal           decimal.Decimal       `json:"subtotal"`
	VATAmount          decimal.Decimal       `json:"vat_amount"`
	TotalAmount        decimal.Decimal       `json:"total_amount"`
	AmountInWords      string                `json:"amount_in_words,omitempty"`
	AdvanceRequired    decimal.Decimal       `json:"advance_required"`
	AmountPaid         decimal.Decimal       `json:"amount_paid"`
	OutstandingBalance decimal.Decimal       `json:"outstanding_balance"`
	Status             string                `json:"status"`
	PaymentTerms       string                `json:"payment_terms,omitempty"`
	Notes              string                `json:"notes,omitempty"`
	CreatedAt          string                `json:"created_at"`
	UpdatedAt          string                `json:"updated_at"`
}
