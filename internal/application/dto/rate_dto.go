package dto

import "github.com/shopspring/decimal"

// CreateRateRequest body for POST /api/rates.
type CreateRateRequest struct {
	Category    string          `json:"category"`
	Duration    string          `json:"duration,omitempty"`
	TimeSlot    string          `json:"time_slot,omitempty"`
	Platform    string          `json:"platform,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}

// UpdateRateRequest body for PUT /api/rates/:id.
type UpdateRateRequest struct {
	Category    *string          `json:"category,omitempty"`
	Duration    *string          `json:"duration,omitempty"`
	TimeSlot    *string          `json:"time_slot,omitempty"`
	Platform    *string          `json:"platform,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Description *string          `json:"description,omitempty"`
	Active      *bool            `json:"is_active,omitempty"`
}

// RateResponse rate-card entry in responses.
type RateResponse struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Duration    string          `json:"duration,omitempty"`
	TimeSlot    string          `json:"time_slot,omitempty"`
	Platform    string          `json:"platform,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Active      bool            `json:"is_active"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}
