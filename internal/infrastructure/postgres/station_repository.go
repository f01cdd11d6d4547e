package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emiratefm/airtime-billing/internal/domain/entity"
	"github.com/emiratefm/airtime-billing/internal/domain/repository"
)

var _ repository.StationRepository = (*StationRepo)(nil)

// StationRepo implements StationRepository (works with pool or tx). The
// stations table holds exactly one row.
type StationRepo struct {
	q Querier
}

// NewStationRepository builds the adapter. Pass a pool or tx (Querier).
func NewStationRepository(q Querier) *StationRepo {
	return &StationRepo{q: q}
}

const stationColumns = `id, name, address, phone, email, bank_name, account_name, account_number,
	logo_url, invoice_prefix, invoice_counter, receipt_prefix, receipt_counter, created_at, updated_at`

// Get fetches the station row, nil when the system is not bootstrapped yet.
func (r *StationRepo) Get() (*entity.Station, error) {
	query := `SELECT ` + stationColumns + ` FROM stations LIMIT 1`
	var s entity.Station
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.ID, &s.Name, &s.Address, &s.Phone, &s.Email, &s.BankName, &s.AccountName, &s.AccountNumber,
		&s.LogoURL, &s.InvoicePrefix, &s.InvoiceCounter, &s.ReceiptPrefix, &s.ReceiptCounter,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get station: %w", err)
	}
	return &s, nil
}

// Create persists the station row (bootstrap only).
func (r *StationRepo) Create(station *entity.Station) error {
	query := `
		INSERT INTO stations (` + stationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		station.ID, station.Name, station.Address, station.Phone, station.Email,
		station.BankName, station.AccountName, station.AccountNumber, station.LogoURL,
		station.InvoicePrefix, station.InvoiceCounter, station.ReceiptPrefix, station.ReceiptCounter,
		station.CreatedAt, station.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert station: %w", err)
	}
	return nil
}

// Update rewrites the settings columns. Counters move only through the
// numbering methods below.
func (r *StationRepo) Update(station *entity.Station) error {
	query := `
		UPDATE stations SET name = $2, address = $3, phone = $4, email = $5, bank_name = $6,
			account_name = $7, account_number = $8, logo_url = $9, invoice_prefix = $10,
			receipt_prefix = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		station.ID, station.Name, station.Address, station.Phone, station.Email, station.BankName,
		station.AccountName, station.AccountNumber, station.LogoURL, station.InvoicePrefix,
		station.ReceiptPrefix, station.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update station: %w", err)
	}
	return nil
}

// NextInvoiceNumber bumps the invoice counter atomically and returns the
// formatted number, e.g. "INV-0042". Run inside the transaction that
// persists the invoice: a rollback takes the bump with it.
func (r *StationRepo) NextInvoiceNumber() (string, error) {
	query := `
		UPDATE stations SET invoice_counter = invoice_counter + 1, updated_at = NOW()
		RETURNING invoice_prefix, invoice_counter`
	var prefix string
	var counter int
	if err := r.q.QueryRow(context.Background(), query).Scan(&prefix, &counter); err != nil {
		return "", fmt.Errorf("next invoice number: %w", err)
	}
	return fmt.Sprintf("%s-%04d", prefix, counter), nil
}

// NextReceiptNumber bumps the receipt counter atomically and returns the
// formatted number, e.g. "RCP-0042".
func (r *StationRepo) NextReceiptNumber() (string, error) {
	query := `
		UPDATE stations SET receipt_counter = receipt_counter + 1, updated_at = NOW()
		RETURNING receipt_prefix, receipt_counter`
	var prefix string
	var counter int
	if err := r.q.QueryRow(context.Background(), query).Scan(&prefix, &counter); err != nil {
		return "", fmt.Errorf("next receipt number: %w", err)
	}
	return fmt.Sprintf("%s-%04d", prefix, counter), nil
}
