package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/emiratefm/airtime-billing/internal/domain/entity"
)

// DashboardTotals are the station-wide aggregates shown on the dashboard.
type DashboardTotals struct {
	TotalInvoiced      decimal.Decimal
	TotalPaid          decimal.Decimal
	OutstandingBalance decimal.Decimal
	TotalClients       int
}

// StatusCount is one slice of the invoice status breakdown.
type StatusCount struct {
	Status string
	Count  int
	Total  decimal.Decimal
}

// DashboardRepository read-only queries backing the dashboard.
type DashboardRepository interface {
	GetTotals(ctx context.Context) (*DashboardTotals, error)
	GetRecentInvoices(ctx context.Context, limit int) ([]*entity.Invoice, error)
	GetRecentPayments(ctx context.Context, limit int) ([]*entity.Payment, error)
	GetStatusBreakdown(ctx context.Context) ([]StatusCount, error)
}
