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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implements ClientRepository (works with pool or tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository builds the adapter. Pass a pool or tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persists a new advertiser.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, company_name, address, phone, email, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.CompanyName, client.Address, client.Phone, client.Email,
		client.Active, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// Update rewrites the advertiser row.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET company_name = $2, address = $3, phone = $4, email = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.CompanyName, client.Address, client.Phone, client.Email,
		client.Active, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete removes the advertiser row.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

// GetByID fetches one advertiser, nil when absent.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `
		SELECT id, company_name, address, phone, email, is_active, created_at, updated_at
		FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyName, &c.Address, &c.Phone, &c.Email, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// GetByCompanyName fetches by exact company name (unique), nil when absent.
func (r *ClientRepo) GetByCompanyName(name string) (*entity.Client, error) {
	query := `
		SELECT id, company_name, address, phone, email, is_active, created_at, updated_at
		FROM clients WHERE company_name = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&c.ID, &c.CompanyName, &c.Address, &c.Phone, &c.Email, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by name: %w", err)
	}
	return &c, nil
}

// List returns advertisers matching search (ILIKE on name), paginated.
func (r *ClientRepo) List(search string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT id, company_name, address, phone, email, is_active, created_at, updated_at
		FROM clients
		WHERE $1 = '' OR company_name ILIKE '%' || $1 || '%'
		ORDER BY company_name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.CompanyName, &c.Address, &c.Phone, &c.Email, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Balances aggregates the client's invoices. Cancelled invoices do not
// count toward what the client owes.
func (r *ClientRepo) Balances(clientID string) (*entity.ClientBalances, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0), COALESCE(SUM(amount_paid), 0), COALESCE(SUM(outstanding_balance), 0)
		FROM invoices WHERE client_id = $1 AND status <> 'cancelled'`
	var b entity.ClientBalances
	err := r.q.QueryRow(context.Background(), query, clientID).Scan(
		&b.TotalInvoiced, &b.TotalPaid, &b.OutstandingBalance,
	)
	if err != nil {
		return nil, fmt.Errorf("client balances: %w", err)
	}
	return &b, nil
}

// HasInvoices reports whether any invoice references the client.
func (r *ClientRepo) HasInvoices(clientID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM invoices WHERE client_id = $1)`, clientID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("client has invoices: %w", err)
	}
	return exists, nil
}
