package dto

import "github.com/shopspring/decimal"

// StatusBreakdownDTO one slice of the invoice status breakdown widget.
type StatusBreakdownDTO struct {
	Status string          `json:"status"`
	Label  string          `json:"label"` // display form, e.g. "Partial"
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// DashboardStatsDTO response for GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	TotalInvoiced      decimal.Decimal      `json:"total_invoiced"`
	TotalPaid          decimal.Decimal      `json:"total_paid"`
	OutstandingBalance decimal.Decimal      `json:"outstanding_balance"`
	TotalClients       int                  `json:"total_clients"`
	RecentInvoices     []InvoiceResponse    `json:"recent_invoices"`
	RecentPayments     []PaymentResponse    `json:"recent_payments"`
	StatusBreakdown    []StatusBreakdownDTO `json:"status_breakdown"`
}
