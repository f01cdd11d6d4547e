package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emiratefm/airtime-billing/internal/domain"
	"github.com/emiratefm/airtime-billing/internal/domain/entity"
	"github.com/emiratefm/airtime-billing/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository (works with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, invoice_number, client_id, invoice_type, invoice_date,
	vat_rate, total_slots, subtotal, vat_amount, total_amount, amount_in_words,
	advance_required, amount_paid, outstanding_balance, status, payment_terms, notes,
	created_at, updated_at`

// Create persists the invoice header.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNumber, invoice.ClientID, invoice.InvoiceType, invoice.InvoiceDate,
		invoice.VATRate, invoice.TotalSlots, invoice.Subtotal, invoice.VATAmount, invoice.TotalAmount,
		invoice.AmountInWords, invoice.AdvanceRequired, invoice.AmountPaid, invoice.OutstandingBalance,
		invoice.Status, invoice.PaymentTerms, invoice.Notes, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateService persists one service line.
func (r *InvoiceRepo) CreateService(line *entity.ServiceLine) error {
	query := `
		INSERT INTO invoice_services (id, invoice_id, position, description, duration,
			daily_slots, campaign_days, rate_per_slot, total_slots, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.InvoiceID, line.Position, line.Description, line.Duration,
		line.DailySlots, line.CampaignDays, line.RatePerSlot, line.TotalSlots, line.LineTotal,
	)
	if err != nil {
		return fmt.Errorf("insert service line: %w", err)
	}
	return nil
}

// Update rewrites the invoice header, recomputed totals included.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET client_id = $2, invoice_type = $3, invoice_date = $4, vat_rate = $5,
			total_slots = $6, subtotal = $7, vat_amount = $8, total_amount = $9, amount_in_words = $10,
			advance_required = $11, amount_paid = $12, outstanding_balance = $13, status = $14,
			payment_terms = $15, notes = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.ClientID, invoice.InvoiceType, invoice.InvoiceDate, invoice.VATRate,
		invoice.TotalSlots, invoice.Subtotal, invoice.VATAmount, invoice.TotalAmount, invoice.AmountInWords,
		invoice.AdvanceRequired, invoice.AmountPaid, invoice.OutstandingBalance, invoice.Status,
		invoice.PaymentTerms, invoice.Notes, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// UpdateBalances rewrites only the payment-affected columns.
func (r *InvoiceRepo) UpdateBalances(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET amount_paid = $2, outstanding_balance = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.AmountPaid, invoice.OutstandingBalance, invoice.Status, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice balances: %w", err)
	}
	return nil
}

// Delete removes the invoice header.
func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// DeleteServices removes all service lines of one invoice.
func (r *InvoiceRepo) DeleteServices(invoiceID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoice_services WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return fmt.Errorf("delete service lines: %w", err)
	}
	return nil
}

// GetByID fetches one invoice header, nil when absent.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.getOne(`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
}

// GetByIDForUpdate fetches the header locking the row (SELECT FOR UPDATE).
// Only meaningful inside a transaction.
func (r *InvoiceRepo) GetByIDForUpdate(id string) (*entity.Invoice, error) {
	return r.getOne(`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`, id)
}

func (r *InvoiceRepo) getOne(query, id string) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.ClientID, &inv.InvoiceType, &inv.InvoiceDate,
		&inv.VATRate, &inv.TotalSlots, &inv.Subtotal, &inv.VATAmount, &inv.TotalAmount,
		&inv.AmountInWords, &inv.AdvanceRequired, &inv.AmountPaid, &inv.OutstandingBalance,
		&inv.Status, &inv.PaymentTerms, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetServicesByInvoiceID returns the invoice's lines in position order.
func (r *InvoiceRepo) GetServicesByInvoiceID(invoiceID string) ([]entity.ServiceLine, error) {
	query := `
		SELECT id, invoice_id, position, description, duration, daily_slots, campaign_days,
			rate_per_slot, total_slots, line_total
		FROM invoice_services WHERE invoice_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list service lines: %w", err)
	}
	defer rows.Close()
	var list []entity.ServiceLine
	for rows.Next() {
		var l entity.ServiceLine
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.Position, &l.Description, &l.Duration,
			&l.DailySlots, &l.CampaignDays, &l.RatePerSlot, &l.TotalSlots, &l.LineTotal); err != nil {
			return nil, fmt.Errorf("scan service line: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// List returns invoice headers matching the filter, newest first.
func (r *InvoiceRepo) List(filter repository.InvoiceFilter) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE ($1 = '' OR client_id::text = $1) AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, filter.ClientID, filter.Status, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
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
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
