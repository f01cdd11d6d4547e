// Package analytics holds the read-only dashboard use case: station-wide
// billing aggregates and recent activity.
package analytics

import (
	"context"
	"fmt"

	"github.com/emiratefm/airtime-billing/internal/application/billing"
	"github.com/emiratefm/airtime-billing/internal/application/dto"
	"github.com/emiratefm/airtime-billing/internal/domain/entity"
	"github.com/emiratefm/airtime-billing/internal/domain/repository"
	"github.com/emiratefm/airtime-billing/pkg/format"
)

const dashboardRecent = 5 // rows per recent-activity widget

// DashboardUseCase builds the dashboard snapshot.
//
// Data source: DashboardRepository (read-only queries). It never touches the
// invoice or payment tables directly.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
	clientRepo    repository.ClientRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository, clientRepo repository.ClientRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo, clientRepo: clientRepo}
}

// GetStats assembles the DashboardStatsDTO.
//
// Four queries in parallel:
//  1. GetTotals           → invoiced / paid / outstanding / client count
//  2. GetRecentInvoices   → latest invoices
//  3. GetRecentPayments   → latest payments
//  4. GetStatusBreakdown  → count and total per status
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type totalsResult struct {
		totals *repository.DashboardTotals
		err    error
	}
	type invoicesResult struct {
		invoices []*entity.Invoice
		err      error
	}
	type paymentsResult struct {
		payments []*entity.Payment
		err      error
	}
	type breakdownResult struct {
		rows []repository.StatusCount
		err  error
	}

	totalsCh := make(chan totalsResult, 1)
	invoicesCh := make(chan invoicesResult, 1)
	paymentsCh := make(chan paymentsResult, 1)
	breakdownCh := make(chan breakdownResult, 1)

	go func() {
		t, err := uc.dashboardRepo.GetTotals(ctx)
		totalsCh <- totalsResult{t, err}
	}()
	go func() {
		inv, err := uc.dashboardRepo.GetRecentInvoices(ctx, dashboardRecent)
		invoicesCh <- invoicesResult{inv, err}
	}()
	go func() {
		p, err := uc.dashboardRepo.GetRecentPayments(ctx, dashboardRecent)
		paymentsCh <- paymentsResult{p, err}
	}()
	go func() {
		rows, err := uc.dashboardRepo.GetStatusBreakdown(ctx)
		breakdownCh <- breakdownResult{rows, err}
	}()

	totals := <-totalsCh
	invoices := <-invoicesCh
	payments := <-paymentsCh
	breakdown := <-breakdownCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totals: %w", totals.err)
	}
	if invoices.err != nil {
		return nil, fmt.Errorf("dashboard: recent invoices: %w", invoices.err)
	}
	if payments.err != nil {
		return nil, fmt.Errorf("dashboard: recent payments: %w", payments.err)
	}
	if breakdown.err != nil {
		return nil, fmt.Errorf("dashboard: status breakdown: %w", breakdown.err)
	}

	// ── Map to wire shapes ────────────────────────────────────────────────────
	recentInvoices := make([]dto.InvoiceResponse, 0, len(invoices.invoices))
	for _, inv := range invoices.invoices {
		recentInvoices = append(recentInvoices, *billing.ToInvoiceResponse(inv, uc.clientName(inv.ClientID)))
	}
	recentPayments := make([]dto.PaymentResponse, 0, len(payments.payments))
	for _, p := range payments.payments {
		recentPayments = append(recentPayments, *billing.ToPaymentResponse(p, "", "", ""))
	}
	statusRows := make([]dto.StatusBreakdownDTO, 0, len(breakdown.rows))
	for _, row := range breakdown.rows {
		label, err := format.Status(row.Status)
		if err != nil {
			label = row.Status
		}
		statusRows = append(statusRows, dto.StatusBreakdownDTO{
			Status: row.Status,
			Label:  label,
			Count:  row.Count,
			Total:  row.Total,
		})
	}

	return &dto.DashboardStatsDTO{
		TotalInvoiced:      totals.totals.TotalInvoiced,
		TotalPaid:          totals.totals.TotalPaid,
		OutstandingBalance: totals.totals.OutstandingBalance,
		TotalClients:       totals.totals.TotalClients,
		RecentInvoices:     recentInvoices,
		RecentPayments:     recentPayments,
		StatusBreakdown:    statusRows,
	}, nil
}

func (uc *DashboardUseCase) clientName(clientID string) string {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil || client == nil {
		return ""
	}
	return client.CompanyName
}
