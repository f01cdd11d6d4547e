package postgres

import (
	"context"
	"fmt"

	"github.com/emiratefm/airtime-billing/internal/domain/entity"
	"github.com/emiratefm/airtime-billing/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo implements DashboardRepository: read-only aggregate queries.
// Takes a context per call because the dashboard use case runs its queries
// in parallel.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository builds the adapter. Pass a pool or tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// GetTotals returns the station-wide aggregates. Cancelled invoices are
// excluded from the money totals but counted clients are all active ones.
func (r *DashboardRepo) GetTotals(ctx context.Context) (*repository.DashboardTotals, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(total_amount) FROM invoices WHERE status <> 'cancelled'), 0),
			COALESCE((SELECT SUM(amount_paid) FROM invoices WHERE status <> 'cancelled'), 0),
			COALESCE((SELECT SUM(outstanding_balance) FROM invoices WHERE status <> 'cancelled'), 0),
			(SELECT COUNT(*) FROM clients WHERE is_active)`
	var t repository.DashboardTotals
	err := r.q.QueryRow(ctx, query).Scan(
		&t.TotalInvoiced, &t.TotalPaid, &t.OutstandingBalance, &t.TotalClients,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard totals: %w", err)
	}
	return &t, nil
}

// GetRecentInvoices returns the latest invoice headers.
func (r *DashboardRepo) GetRecentInvoices(ctx context.Context, limit int) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.InvoiceNumber, &inv.ClientID, &inv.InvoiceType, &inv.InvoiceDate,
			&inv.VATRate, &inv.TotalSlots, &inv.Subtotal, &inv.VATAmount, &inv.TotalAmount,
			&inv.AmountInWords, &inv.AdvanceRequired, &inv.AmountPaid, &inv.OutstandingBalance,
			&inv.Status, &inv.PaymentTerms, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan recent invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// GetRecentPayments returns the latest payments.
func (r *DashboardRepo) GetRecentPayments(ctx context.Context, limit int) ([]*entity.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(
			&p.ID, &p.InvoiceID, &p.ReceiptNumber, &p.AmountPaid, &p.PaymentMethod,
			&p.TransactionRef, &p.DateReceived, &p.ReceivedBy, &p.Position, &p.Notes,
			&p.InvoiceBalanceBefore, &p.InvoiceBalanceAfter, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan recent payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetStatusBreakdown returns count and total per invoice status.
func (r *DashboardRepo) GetStatusBreakdown(ctx context.Context) ([]repository.StatusCount, error) {
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM invoices GROUP BY status ORDER BY status`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("status breakdown: %w", err)
	}
	defer rows.Close()
	var list []repository.StatusCount
	for rows.Next() {
		var row repository.StatusCount
		if err := rows.Scan(&row.Status, &row.Count, &row.Total); err != nil {
			return nil, fmt.Errorf("scan status breakdown: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
