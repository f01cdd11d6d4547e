package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/emiratefm/airtime-billing/internal/application/dto"
	"github.com/emiratefm/airtime-billing/internal/domain"
	"github.com/emiratefm/airtime-billing/internal/domain/entity"
	"github.com/emiratefm/airtime-billing/internal/domain/repository"
	"github.com/emiratefm/airtime-billing/pkg/amountwords"
)

// CreateInvoiceUseCase composes and persists a new invoice: runs the lines
// through the domain composer, pulls the next invoice number from the
// station counter and writes header plus lines in one transaction.
type CreateInvoiceUseCase struct {
	txRunner       BillingTxRunner
	clientRepo     repository.ClientRepository
	defaultVATRate decimal.Decimal
}

// NewCreateInvoiceUseCase builds the use case. defaultVATRate is the
// percentage applied when a request omits vat_rate.
func NewCreateInvoiceUseCase(txRunner BillingTxRunner, clientRepo repository.ClientRepository, defaultVATRate decimal.Decimal) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:       txRunner,
		clientRepo:     clientRepo,
		defaultVATRate: defaultVATRate,
	}
}

// Create validates the request, derives every monetary value server-side and
// persists the invoice. New invoices start as pending with nothing paid.
func (uc *CreateInvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ClientID == "" || !validInvoiceType(in.InvoiceType) {
		return nil, domain.ErrInvalidInput
	}
	invoiceDate, err := parseDate(in.InvoiceDate)
	if err != nil {
		return nil, err
	}

	// ── Client must exist ─────────────────────────────────────────────────────
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	// ── Compose lines and totals ──────────────────────────────────────────────
	// A nil vat_rate means "station default"; an explicit 0 is honored.
	vatRate := uc.defaultVATRate
	if in.VATRate != nil {
		vatRate = *in.VATRate
	}
	composer, err := composeLines(in.Services, vatRate)
	if err != nil {
		return nil, err
	}
	totals := composer.Totals()

	advance := decimal.Zero
	if in.AdvanceRequired != nil {
		advance = *in.AdvanceRequired
	}
	if advance.IsNegative() || advance.GreaterThan(totals.GrandTotal) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:                 uuid.New().String(),
		ClientID:           client.ID,
		InvoiceType:        in.InvoiceType,
		InvoiceDate:        invoiceDate,
		VATRate:            vatRate,
		TotalSlots:         totals.TotalSlots,
		Subtotal:           totals.Subtotal,
		VATAmount:          totals.VATAmount,
		TotalAmount:        totals.GrandTotal,
		AmountInWords:      amountwords.Naira(totals.GrandTotal),
		AdvanceRequired:    advance,
		AmountPaid:         decimal.Zero,
		OutstandingBalance: totals.GrandTotal,
		Status:             entity.StatusPending,
		PaymentTerms:       strings.TrimSpace(in.PaymentTerms),
		Notes:              strings.TrimSpace(in.Notes),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	// ── Persist atomically: number + header + lines ───────────────────────────
	err = uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		_ repository.PaymentRepository,
		stationRepo repository.StationRepository,
	) error {
		number, err := stationRepo.NextInvoiceNumber()
		if err != nil {
			return fmt.Errorf("create invoice: next number: %w", err)
		}
		inv.InvoiceNumber = number
		if err := invoiceRepo.Create(inv); err != nil {
			return fmt.Errorf("create invoice: header: %w", err)
		}
		for _, line := range composer.Lines() {
			line.ID = uuid.New().String()
			line.InvoiceID = inv.ID
			if err := invoiceRepo.CreateService(&line); err != nil {
				return fmt.Errorf("create invoice: line %d: %w", line.Position, err)
			}
			inv.Services = append(inv.Services, line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ToInvoiceResponse(inv, client.CompanyName), nil
}
