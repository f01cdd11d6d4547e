package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emiratefm/airtime-billing/internal/domain/entity"
	"github.com/emiratefm/airtime-billing/internal/domain/repository"
)

var _ repository.RateRepository = (*RateRepo)(nil)

// RateRepo implements RateRepository (works with pool or tx).
type RateRepo struct {
	q Querier
}

// NewRateRepository builds the adapter. Pass a pool or tx (Querier).
func NewRateRepository(q Querier) *RateRepo {
	return &RateRepo{q: q}
}

// Create persists a rate-card entry.
func (r *RateRepo) Create(rate *entity.Rate) error {
	query := `
		INSERT INTO rates (id, category, duration, time_slot, platform, price, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		rate.ID, rate.Category, rate.Duration, rate.TimeSlot, rate.Platform,
		rate.Price, rate.Description, rate.Active, rate.CreatedAt, rate.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rate: %w", err)
	}
	return nil
}

// Update rewrites the rate row.
func (r *RateRepo) Update(rate *entity.Rate) error {
	query := `
		UPDATE rates SET category = $2, duration = $3, time_slot = $4, platform = $5,
			price = $6, description = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rate.ID, rate.Category, rate.Duration, rate.TimeSlot, rate.Platform,
		rate.Price, rate.Description, rate.Active, rate.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update rate: %w", err)
	}
	return nil
}

// Delete removes the rate row.
func (r *RateRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM rates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete rate: %w", err)
	}
	return nil
}

// GetByID fetches one rate, nil when absent.
func (r *RateRepo) GetByID(id string) (*entity.Rate, error) {
	query := `
		SELECT id, category, duration, time_slot, platform, price, description, is_active, created_at, updated_at
		FROM rates WHERE id = $1`
	var rate entity.Rate
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rate.ID, &rate.Category, &rate.Duration, &rate.TimeSlot, &rate.Platform,
		&rate.Price, &rate.Description, &rate.Active, &rate.CreatedAt, &rate.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rate: %w", err)
	}
	return &rate, nil
}

// List returns rate-card entries, optionally filtered by category.
func (r *RateRepo) List(category string, limit, offset int) ([]*entity.Rate, error) {
	query := `
		SELECT id, category, duration, time_slot, platform, price, description, is_active, created_at, updated_at
		FROM rates
		WHERE $1 = '' OR category = $1
		ORDER BY category, duration LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list rates: %w", err)
	}
	defer rows.Close()
	var list []*entity.Rate
	for rows.Next() {
		var rate entity.Rate
		if err := rows.Scan(&rate.ID, &rate.Category, &rate.Duration, &rate.TimeSlot, &rate.Platform,
			&rate.Price, &rate.Description, &rate.Active, &rate.CreatedAt, &rate.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan rate: %w", err)
		}
		list = append(list, &rate)
	}
	return list, rows.Err()
}
