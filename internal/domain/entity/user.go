package entity

import "time"

// User roles.
const (
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
)

// User is a staff account that can sign in to the billing system.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	Active       bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
