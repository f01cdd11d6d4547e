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

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implements PaymentRepository (works with pool or tx). Payments
// are insert-only; the table has no UPDATE or DELETE path.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository builds the adapter. Pass a pool or tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, invoice_id, receipt_number, amount_paid, payment_method,
	transaction_ref, date_received, received_by, position, notes,
	invoice_balance_before, invoice_balance_after, created_at, updated_at`

// Create persists a payment with its balance snapshot.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.InvoiceID, payment.ReceiptNumber, payment.AmountPaid, payment.PaymentMethod,
		payment.TransactionRef, payment.DateReceived, payment.ReceivedBy, payment.Position, payment.Notes,
		payment.InvoiceBalanceBefore, payment.InvoiceBalanceAfter, payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID fetches one payment, nil when absent.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.InvoiceID, &p.ReceiptNumber, &p.AmountPaid, &p.PaymentMethod,
		&p.TransactionRef, &p.DateReceived, &p.ReceivedBy, &p.Position, &p.Notes,
		&p.InvoiceBalanceBefore, &p.InvoiceBalanceAfter, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// List returns payments matching the filter, newest first.
func (r *PaymentRepo) List(filter repository.PaymentFilter) ([]*entity.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE $1 = '' OR invoice_id::text = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, filter.InvoiceID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
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
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CountByInvoice returns the number of payments recorded against an invoice.
func (r *PaymentRepo) CountByInvoice(invoiceID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM payments WHERE invoice_id = $1`, invoiceID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count payments: %w", err)
	}
	return count, nil
}
