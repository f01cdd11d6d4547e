package dto

import "github.com/shopspring/decimal"

// CreateClientRequest body for POST /api/clients.
type CreateClientRequest struct {
	CompanyName string `json:"company_name"`
	Address     string `json:"address"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

// UpdateClientRequest body for PUT /api/clients/:id. Nil fields are left
// unchanged.
type UpdateClientRequest struct {
	CompanyName *string `json:"company_name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Active      *bool   `json:"is_active,omitempty"`
}

// ClientResponse client in responses, including the derived balance
// aggregates over its invoices.
type ClientResponse struct {
	ID                 string          `json:"id"`
	CompanyName        string          `json:"company_name"`
	Address            string          `json:"address"`
	Phone              string          `json:"phone,omitempty"`
	Email              string          `json:"email,omitempty"`
	TotalInvoiced      decimal.Decimal `json:"total_invoiced"`
	TotalPaid          decimal.Decimal `json:"total_paid"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	Active             bool            `json:"is_active"`
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          string          `json:"updated_at"`
}
