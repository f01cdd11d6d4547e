package repository

import "github.com/emiratefm/airtime-billing/internal/domain/entity"

// InvoiceFilter narrows invoice listings.
type InvoiceFilter struct {
	ClientID string
	Status   string
	Limit    int
	Offset   int
}

// InvoiceRepository persistence port for invoices and their service lines.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateService(line *entity.ServiceLine) error
	// Update rewrites the header including recomputed totals.
	Update(invoice *entity.Invoice) error
	// UpdateBalances rewrites only the payment-affected columns
	// (amount_paid, outstanding_balance, status).
	UpdateBalances(invoice *entity.Invoice) error
	Delete(id string) error
	DeleteServices(invoiceID string) error
	GetByID(id string) (*entity.Invoice, error)
	// GetByIDForUpdate locks the invoice row (SELECT ... FOR UPDATE); only
	// meaningful inside a transaction. The payment path uses it so two
	// operators cannot reconcile against the same balance.
	GetByIDForUpdate(id string) (*entity.Invoice, error)
	GetServicesByInvoiceID(invoiceID string) ([]entity.ServiceLine, error)
	List(filter InvoiceFilter) ([]*entity.Invoice, error)
}
