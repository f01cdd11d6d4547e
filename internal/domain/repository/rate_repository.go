package repository

import "github.com/emiratefm/airtime-billing/internal/domain/entity"

// RateRepository persistence port for the rate card.
type RateRepository interface {
	Create(rate *entity.Rate) error
	Update(rate *entity.Rate) error
	Delete(id string) error
	GetByID(id string) (*entity.Rate, error)
	List(category string, limit, offset int) ([]*entity.Rate, error)
}
