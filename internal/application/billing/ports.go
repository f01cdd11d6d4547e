package billing

import (
	"context"

	"github.com/emiratefm/airtime-billing/internal/domain/entity"
	"github.com/emiratefm/airtime-billing/internal/domain/repository"
)

// BillingTxRunner runs fn inside one database transaction with tx-scoped
// repositories. Invoice numbering, header writes and payment writes all go
// through here so a failure rolls back the counter bump together with the
// document.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
		stationRepo repository.StationRepository,
	) error) error
}

// InvoicePDFGenerator renders the printable invoice document.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice, station *entity.Station, client *entity.Client) ([]byte, error)
}

// ReceiptPDFGenerator renders the printable payment receipt.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, payment *entity.Payment, inv *entity.Invoice, station *entity.Station, client *entity.Client) ([]byte, error)
}
