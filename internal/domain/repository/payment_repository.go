package repository

import "github.com/emiratefm/airtime-billing/internal/domain/entity"

// PaymentFilter narrows payment listings.
type PaymentFilter struct {
	InvoiceID string
	Limit     int
	Offset    int
}

// PaymentRepository persistence port for payments. Payments are immutable:
// there is intentionally no Update or Delete.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	List(filter PaymentFilter) ([]*entity.Payment, error)
	CountByInvoice(invoiceID string) (int, error)
}
