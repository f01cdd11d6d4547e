package billing

import (
	"context"
	"fmt"

	"github.com/emiratefm/airtime-billing/internal/domain"
	"github.com/emiratefm/airtime-billing/internal/domain/entity"
	"github.com/emiratefm/airtime-billing/internal/domain/repository"
)

// PDFUseCase renders the printable invoice and receipt documents with the
// station letterhead.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	clientRepo  repository.ClientRepository
	stationRepo repository.StationRepository
	invoiceGen  InvoicePDFGenerator
	receiptGen  ReceiptPDFGenerator
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	clientRepo repository.ClientRepository,
	stationRepo repository.StationRepository,
	invoiceGen InvoicePDFGenerator,
	receiptGen ReceiptPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		clientRepo:  clientRepo,
		stationRepo: stationRepo,
		invoiceGen:  invoiceGen,
		receiptGen:  receiptGen,
	}
}

// DownloadInvoicePDF loads the invoice with its lines, client and station
// and renders the document. The filename follows the invoice number.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	services, err := uc.invoiceRepo.GetServicesByInvoiceID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load lines: %w", err)
	}
	inv.Services = services

	client, station, err := uc.loadParties(inv.ClientID)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.invoiceGen.GenerateInvoicePDF(ctx, inv, station, client)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render invoice: %w", err)
	}
	return pdfBytes, inv.InvoiceNumber + ".pdf", nil
}

// DownloadReceiptPDF renders the receipt for one payment. The filename
// follows the receipt number.
func (uc *PDFUseCase) DownloadReceiptPDF(ctx context.Context, paymentID string) (pdfBytes []byte, filename string, err error) {
	payment, err := uc.paymentRepo.GetByID(paymentID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load payment: %w", err)
	}
	if payment == nil {
		return nil, "", domain.ErrNotFound
	}
	inv, err := uc.invoiceRepo.GetByID(payment.InvoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	client, station, err := uc.loadParties(inv.ClientID)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.receiptGen.GenerateReceiptPDF(ctx, payment, inv, station, client)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render receipt: %w", err)
	}
	return pdfBytes, payment.ReceiptNumber + ".pdf", nil
}

func (uc *PDFUseCase) loadParties(clientID string) (*entity.Client, *entity.Station, error) {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, nil, fmt.Errorf("pdf: load client: %w", err)
	}
	if client == nil {
		return nil, nil, domain.ErrNotFound
	}
	station, err := uc.stationRepo.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("pdf: load station: %w", err)
	}
	if station == nil {
		return nil, nil, domain.ErrNotFound
	}
	return client, station, nil
}
