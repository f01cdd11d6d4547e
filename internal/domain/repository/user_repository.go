package repository

import (
	"time"

	"github.com/emiratefm/airtime-billing/internal/domain/entity"
)

// UserRepository persistence port for staff accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	UpdateLastLogin(id string, at time.Time) error
}
