package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/emiratefm/airtime-billing/internal/application/dto"
	"github.com/emiratefm/airtime-billing/internal/domain"
	"github.com/emiratefm/airtime-billing/internal/domain/entity"
	"github.com/emiratefm/airtime-billing/internal/domain/repository"
)

// RateUseCase CRUD for the station's rate card. Rates are a reference for
// operators filling invoice forms; invoices copy the chosen price, they do
// not link back to the rate.
type RateUseCase struct {
	repo repository.RateRepository
}

// NewRateUseCase builds the use case.
func NewRateUseCase(repo repository.RateRepository) *RateUseCase {
	return &RateUseCase{repo: repo}
}

// Create adds a rate-card entry.
func (uc *RateUseCase) Create(in dto.CreateRateRequest) (*dto.RateResponse, error) {
	if strings.TrimSpace(in.Category) == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	rate := &entity.Rate{
		ID:          uuid.New().String(),
		Category:    strings.TrimSpace(in.Category),
		Duration:    strings.TrimSpace(in.Duration),
		TimeSlot:    strings.TrimSpace(in.TimeSlot),
		Platform:    strings.TrimSpace(in.Platform),
		Price:       in.Price,
		Description: strings.TrimSpace(in.Description),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(rate); err != nil {
		return nil, err
	}
	return toRateResponse(rate), nil
}

// GetByID returns one rate-card entry.
func (uc *RateUseCase) GetByID(id string) (*dto.RateResponse, error) {
	rate, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, domain.ErrNotFound
	}
	return toRateResponse(rate), nil
}

// Update applies non-nil fields.
func (uc *RateUseCase) Update(id string, in dto.UpdateRateRequest) (*dto.RateResponse, error) {
	rate, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, domain.ErrNotFound
	}
	if in.Category != nil {
		if strings.TrimSpace(*in.Category) == "" {
			return nil, domain.ErrInvalidInput
		}
		rate.Category = strings.TrimSpace(*in.Category)
	}
	if in.Duration != nil {
		rate.Duration = strings.TrimSpace(*in.Duration)
	}
	if in.TimeSlot != nil {
		rate.TimeSlot = strings.TrimSpace(*in.TimeSlot)
	}
	if in.Platform != nil {
		rate.Platform = strings.TrimSpace(*in.Platform)
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		rate.Price = *in.Price
	}
	if in.Description != nil {
		rate.Description = strings.TrimSpace(*in.Description)
	}
	if in.Active != nil {
		rate.Active = *in.Active
	}
	rate.UpdatedAt = time.Now()
	if err := uc.repo.Update(rate); err != nil {
		return nil, err
	}
	return toRateResponse(rate), nil
}

// Delete removes a rate-card entry. Existing invoices keep their copied
// prices, so deletion is always safe.
func (uc *RateUseCase) Delete(id string) error {
	rate, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if rate == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List returns rate-card entries, optionally filtered by category.
func (uc *RateUseCase) List(category string, page dto.PageRequest) ([]*dto.RateResponse, error) {
	page.DefaultPage()
	rates, err := uc.repo.List(strings.TrimSpace(category), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, toRateResponse(r))
	}
	return out, nil
}

func toRateResponse(r *entity.Rate) *dto.RateResponse {
	return &dto.RateResponse{
		ID:          r.ID,
		Category:    r.Category,
		Duration:    r.Duration,
		TimeSlot:    r.TimeSlot,
		Platform:    r.Platform,
		Price:       r.Price,
		Description: r.Description,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}
