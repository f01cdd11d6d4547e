package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/emiratefm/airtime-billing/internal/application/dto"
	"github.com/emiratefm/airtime-billing/internal/domain"
	dombilling "github.com/emiratefm/airtime-billing/internal/domain/billing"
	"github.com/emiratefm/airtime-billing/internal/domain/entity"
	"github.com/emiratefm/airtime-billing/internal/domain/repository"
	"github.com/emiratefm/airtime-billing/pkg/amountwords"
)

// InvoiceUseCase read, update, cancel and delete operations on existing
// invoices. Creation lives in CreateInvoiceUseCase.
type InvoiceUseCase struct {
	txRunner    BillingTxRunner
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	clientRepo  repository.ClientRepository
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(
	txRunner BillingTxRunner,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	clientRepo repository.ClientRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		clientRepo:  clientRepo,
	}
}

// GetByID returns the invoice with its service lines and client name.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.loadInvoice(id)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponse(inv, uc.clientName(inv.ClientID)), nil
}

// List returns invoice headers matching the filter. Service lines are not
// loaded in listings.
func (uc *InvoiceUseCase) List(filter repository.InvoiceFilter, page dto.PageRequest) ([]*dto.InvoiceResponse, error) {
	page.DefaultPage()
	filter.Limit = page.Limit
	filter.Offset = page.Offset
	invoices, err := uc.invoiceRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, ToInvoiceResponse(inv, uc.clientName(inv.ClientID)))
	}
	return out, nil
}

// Update applies non-nil fields and recomputes every derived value. The
// update is refused with ErrConflict when the invoice is cancelled or when
// the recomputed total would fall below what has already been paid; recorded
// payments are never invalidated by an edit.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	var inv *entity.Invoice
	err := uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		_ repository.PaymentRepository,
		_ repository.StationRepository,
	) error {
		// ── Lock the invoice so a concurrent payment cannot land between the
		// read and the rewrite ────────────────────────────────────────────────
		locked, err := invoiceRepo.GetByIDForUpdate(id)
		if err != nil {
			return fmt.Errorf("update invoice: lock: %w", err)
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		if locked.Status == entity.StatusCancelled {
			return domain.ErrConflict
		}
		services, err := invoiceRepo.GetServicesByInvoiceID(id)
		if err != nil {
			return err
		}
		locked.Services = services

		if in.ClientID != nil {
			client, err := uc.clientRepo.GetByID(*in.ClientID)
			if err != nil {
				return err
			}
			if client == nil {
				return domain.ErrNotFound
			}
			locked.ClientID = client.ID
		}
		if in.InvoiceType != nil {
			if !validInvoiceType(*in.InvoiceType) {
				return domain.ErrInvalidInput
			}
			locked.InvoiceType = *in.InvoiceType
		}
		if in.InvoiceDate != nil {
			d, err := parseDate(*in.InvoiceDate)
			if err != nil {
				return err
			}
			locked.InvoiceDate = d
		}
		if in.PaymentTerms != nil {
			locked.PaymentTerms = strings.TrimSpace(*in.PaymentTerms)
		}
		if in.Notes != nil {
			locked.Notes = strings.TrimSpace(*in.Notes)
		}

		vatRate := locked.VATRate
		if in.VATRate != nil {
			vatRate = *in.VATRate
		}

		// ── Recompose lines (replaced or kept) and recompute totals ───────────
		lines := in.Services
		if lines == nil {
			lines = make([]dto.ServiceLineRequest, 0, len(locked.Services))
			for _, l := range locked.Services {
				lines = append(lines, dto.ServiceLineRequest{
					Description:  l.Description,
					Duration:     l.Duration,
					DailySlots:   l.DailySlots,
					CampaignDays: l.CampaignDays,
					RatePerSlot:  l.RatePerSlot,
				})
			}
		}
		composer, err := composeLines(lines, vatRate)
		if err != nil {
			return err
		}
		totals := composer.Totals()

		// Shrinking the invoice below the money already received would force a
		// refund path that does not exist.
		if totals.GrandTotal.LessThan(locked.AmountPaid) {
			return domain.ErrConflict
		}

		if in.AdvanceRequired != nil {
			if in.AdvanceRequired.IsNegative() || in.AdvanceRequired.GreaterThan(totals.GrandTotal) {
				return domain.ErrInvalidInput
			}
			locked.AdvanceRequired = *in.AdvanceRequired
		}

		locked.VATRate = vatRate
		locked.TotalSlots = totals.TotalSlots
		locked.Subtotal = totals.Subtotal
		locked.VATAmount = totals.VATAmount
		locked.TotalAmount = totals.GrandTotal
		locked.AmountInWords = amountwords.Naira(totals.GrandTotal)
		locked.OutstandingBalance = dombilling.Outstanding(totals.GrandTotal, locked.AmountPaid)
		locked.Status = dombilling.ClassifyStatus(locked.OutstandingBalance, locked.AmountPaid)
		locked.UpdatedAt = time.Now()

		if err := invoiceRepo.DeleteServices(locked.ID); err != nil {
			return fmt.Errorf("update invoice: clear lines: %w", err)
		}
		locked.Services = locked.Services[:0]
		for _, line := range composer.Lines() {
			line.ID = uuid.New().String()
			line.InvoiceID = locked.ID
			if err := invoiceRepo.CreateService(&line); err != nil {
				return fmt.Errorf("update invoice: line %d: %w", line.Position, err)
			}
			locked.Services = append(locked.Services, line)
		}
		if err := invoiceRepo.Update(locked); err != nil {
			return fmt.Errorf("update invoice: header: %w", err)
		}
		inv = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ToInvoiceResponse(inv, uc.clientName(inv.ClientID)), nil
}

// Cancel marks the invoice cancelled, closing it to further payments.
// Settled invoices cannot be cancelled.
func (uc *InvoiceUseCase) Cancel(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.loadInvoice(id)
	if err != nil {
		return nil, err
	}
	if inv.Status == entity.StatusCancelled || inv.Status == entity.StatusPaid {
		return nil, domain.ErrConflict
	}
	inv.Status = entity.StatusCancelled
	inv.UpdatedAt = time.Now()
	err = uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		_ repository.PaymentRepository,
		_ repository.StationRepository,
	) error {
		return invoiceRepo.UpdateBalances(inv)
	})
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponse(inv, uc.clientName(inv.ClientID)), nil
}

// Delete removes the invoice and its lines. Invoices with recorded payments
// are never deleted; cancel them instead so the money trail survives.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	count, err := uc.paymentRepo.CountByInvoice(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		_ repository.PaymentRepository,
		_ repository.StationRepository,
	) error {
		if err := invoiceRepo.DeleteServices(id); err != nil {
			return fmt.Errorf("delete invoice: lines: %w", err)
		}
		if err := invoiceRepo.Delete(id); err != nil {
			return fmt.Errorf("delete invoice: header: %w", err)
		}
		return nil
	})
}

// loadInvoice fetches header plus service lines.
func (uc *InvoiceUseCase) loadInvoice(id string) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	services, err := uc.invoiceRepo.GetServicesByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	inv.Services = services
	return inv, nil
}

// clientName best-effort lookup for display; listings tolerate a missing
// client row.
func (uc *InvoiceUseCase) clientName(clientID string) string {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil || client == nil {
		return ""
	}
	return client.CompanyName
}
