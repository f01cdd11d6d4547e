package usecase

import (
	"strings"
	"time"

	"github.com/emiratefm/airtime-billing/internal/application/dto"
	"github.com/emiratefm/airtime-billing/internal/domain"
	"github.com/emiratefm/airtime-billing/internal/domain/entity"
	"github.com/emiratefm/airtime-billing/internal/domain/repository"
)

// StationUseCase reads and updates the single station-settings row. The
// numbering counters are visible here but only move through the billing
// transactions, never through this use case.
type StationUseCase struct {
	repo repository.StationRepository
}

// NewStationUseCase builds the use case.
func NewStationUseCase(repo repository.StationRepository) *StationUseCase {
	return &StationUseCase{repo: repo}
}

// Get returns the station settings.
func (uc *StationUseCase) Get() (*dto.StationResponse, error) {
	station, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, domain.ErrNotFound
	}
	return toStationResponse(station), nil
}

// Update applies non-nil fields to the station row. Prefixes must stay
// non-empty; counters are not editable.
func (uc *StationUseCase) Update(in dto.UpdateStationRequest) (*dto.StationResponse, error) {
	station, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		station.Name = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil {
		station.Address = strings.TrimSpace(*in.Address)
	}
	if in.Phone != nil {
		station.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		station.Email = strings.TrimSpace(*in.Email)
	}
	if in.BankName != nil {
		station.BankName = strings.TrimSpace(*in.BankName)
	}
	if in.AccountName != nil {
		station.AccountName = strings.TrimSpace(*in.AccountName)
	}
	if in.AccountNumber != nil {
		station.AccountNumber = strings.TrimSpace(*in.AccountNumber)
	}
	if in.LogoURL != nil {
		station.LogoURL = strings.TrimSpace(*in.LogoURL)
	}
	if in.InvoicePrefix != nil {
		if strings.TrimSpace(*in.InvoicePrefix) == "" {
			return nil, domain.ErrInvalidInput
		}
		station.InvoicePrefix = strings.TrimSpace(*in.InvoicePrefix)
	}
	if in.ReceiptPrefix != nil {
		if strings.TrimSpace(*in.ReceiptPrefix) == "" {
			return nil, domain.ErrInvalidInput
		}
		station.ReceiptPrefix = strings.TrimSpace(*in.ReceiptPrefix)
	}
	station.UpdatedAt = time.Now()
	if err := uc.repo.Update(station); err != nil {
		return nil, err
	}
	return toStationResponse(station), nil
}

func toStationResponse(s *entity.Station) *dto.StationResponse {
	return &dto.StationResponse{
		ID:             s.ID,
		Name:           s.Name,
		Address:        s.Address,
		Phone:          s.Phone,
		Email:          s.Email,
		BankName:       s.BankName,
		AccountName:    s.AccountName,
		AccountNumber:  s.AccountNumber,
		LogoURL:        s.LogoURL,
		InvoicePrefix:  s.InvoicePrefix,
		InvoiceCounter: s.InvoiceCounter,
		ReceiptPrefix:  s.ReceiptPrefix,
		ReceiptCounter: s.ReceiptCounter,
	}
}
