package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice lifecycle statuses.
const (
	StatusDraft     = "draft"
	StatusPending   = "pending"   // issued, nothing received yet
	StatusPartial   = "partial"   // 0 < amount_paid < total_amount
	StatusPaid      = "paid"      // outstanding_balance = 0 and amount_paid > 0
	StatusCancelled = "cancelled" // no further payments accepted
)

// Invoice document types. Both compute identically; they differ only in
// labeling and workflow (a proforma precedes the campaign, an advance bill
// demands payment before broadcast).
const (
	TypeProforma    = "proforma"
	TypeAdvanceBill = "advance_bill"
)

// InvoiceStatuses is the closed status enum, in lifecycle order.
var InvoiceStatuses = []string{StatusDraft, StatusPending, StatusPartial, StatusPaid, StatusCancelled}

// Invoice is the header of a proforma or advance bill. Monetary fields are
// recomputed server-side from the service lines; clients never submit totals.
type Invoice struct {
	ID                 string
	InvoiceNumber      string
	ClientID           string
	InvoiceType        string
	InvoiceDate        time.Time
	Services           []ServiceLine // owned, ordered, never empty
	VATRate            decimal.Decimal
	TotalSlots         int
	Subtotal           decimal.Decimal
	VATAmount          decimal.Decimal
	TotalAmount        decimal.Decimal
	AmountInWords      string
	AdvanceRequired    decimal.Decimal
	AmountPaid         decimal.Decimal
	OutstandingBalance decimal.Decimal // total_amount - amount_paid, never negative
	Status             string
	PaymentTerms       string
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ServiceLine is one airtime service entry on an invoice. It exists only as
// part of its invoice's Services slice; it is created and destroyed with it.
type ServiceLine struct {
	ID           string
	InvoiceID    string
	Position     int // order within the invoice
	Description  string
	Duration     string // spot length, e.g. "60 sec"
	DailySlots   int
	CampaignDays int
	RatePerSlot  decimal.Decimal
	TotalSlots   int             // daily_slots × campaign_days
	LineTotal    decimal.Decimal // total_slots × rate_per_slot
}
