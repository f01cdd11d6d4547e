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
)

// PaymentUseCase records and reads payments. Recording is the only write:
// payments are immutable once created, and every recording locks the invoice
// row so concurrent operators reconcile against a serialized balance.
type PaymentUseCase struct {
	txRunner    BillingTxRunner
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	clientRepo  repository.ClientRepository
}

// NewPaymentUseCase builds the use case.
func NewPaymentUseCase(
	txRunner BillingTxRunner,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	clientRepo repository.ClientRepository,
) *PaymentUseCase {
	return &PaymentUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		clientRepo:  clientRepo,
	}
}

// Preview applies a proposed amount to the invoice's current balance without
// writing anything. Advisory only: the balance may move before the payment
// is actually recorded.
func (uc *PaymentUseCase) Preview(in dto.PreviewPaymentRequest) (*dto.PaymentPreviewResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(in.InvoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	preview, err := dombilling.PreviewPayment(inv.OutstandingBalance, in.AmountPaid)
	if err != nil {
		return nil, err
	}
	return &dto.PaymentPreviewResponse{
		InvoiceID:     inv.ID,
		BalanceBefore: inv.OutstandingBalance,
		BalanceAfter:  preview.BalanceAfter,
		FullyPaid:     preview.FullyPaid,
	}, nil
}

// Record validates and persists a payment against an invoice. Inside the
// transaction the invoice row is locked, the amount is re-validated against
// the locked balance, the receipt number is pulled from the station counter
// and the invoice's paid/outstanding/status columns are rewritten. The
// payment stores the balance before and after as a permanent snapshot.
func (uc *PaymentUseCase) Record(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.InvoiceID == "" || strings.TrimSpace(in.ReceivedBy) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	dateReceived, err := parseDate(in.DateReceived)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	payment := &entity.Payment{
		ID:             uuid.New().String(),
		InvoiceID:      in.InvoiceID,
		AmountPaid:     in.AmountPaid,
		PaymentMethod:  in.PaymentMethod,
		TransactionRef: strings.TrimSpace(in.TransactionRef),
		DateReceived:   dateReceived,
		ReceivedBy:     strings.TrimSpace(in.ReceivedBy),
		Position:       strings.TrimSpace(in.Position),
		Notes:          strings.TrimSpace(in.Notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var inv *entity.Invoice
	err = uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
		stationRepo repository.StationRepository,
	) error {
		// ── Lock the invoice and re-validate against the locked balance ───────
		locked, err := invoiceRepo.GetByIDForUpdate(in.InvoiceID)
		if err != nil {
			return fmt.Errorf("record payment: lock invoice: %w", err)
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		if locked.Status == entity.StatusCancelled {
			return domain.ErrConflict
		}
		preview, err := dombilling.PreviewPayment(locked.OutstandingBalance, in.AmountPaid)
		if err != nil {
			return err
		}

		// ── Receipt number + immutable snapshot ───────────────────────────────
		receipt, err := stationRepo.NextReceiptNumber()
		if err != nil {
			return fmt.Errorf("record payment: next receipt: %w", err)
		}
		payment.ReceiptNumber = receipt
		payment.InvoiceBalanceBefore = locked.OutstandingBalance
		payment.InvoiceBalanceAfter = preview.BalanceAfter
		if err := paymentRepo.Create(payment); err != nil {
			return fmt.Errorf("record payment: create: %w", err)
		}

		// ── Roll the invoice forward ──────────────────────────────────────────
		locked.AmountPaid = locked.AmountPaid.Add(in.AmountPaid)
		locked.OutstandingBalance = preview.BalanceAfter
		locked.Status = dombilling.ClassifyStatus(locked.OutstandingBalance, locked.AmountPaid)
		locked.UpdatedAt = now
		if err := invoiceRepo.UpdateBalances(locked); err != nil {
			return fmt.Errorf("record payment: update balances: %w", err)
		}
		inv = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ToPaymentResponse(payment, inv.InvoiceNumber, uc.clientName(inv.ClientID), inv.Status), nil
}

// GetByID returns one payment with its invoice context.
func (uc *PaymentUseCase) GetByID(id string) (*dto.PaymentResponse, error) {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	invoiceNumber, clientName, status := uc.invoiceContext(payment.InvoiceID)
	return ToPaymentResponse(payment, invoiceNumber, clientName, status), nil
}

// List returns payments, optionally scoped to one invoice, newest first.
func (uc *PaymentUseCase) List(invoiceID string, page dto.PageRequest) ([]*dto.PaymentResponse, error) {
	page.DefaultPage()
	payments, err := uc.paymentRepo.List(repository.PaymentFilter{
		InvoiceID: invoiceID,
		Limit:     page.Limit,
		Offset:    page.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		invoiceNumber, clientName, status := uc.invoiceContext(p.InvoiceID)
		out = append(out, ToPaymentResponse(p, invoiceNumber, clientName, status))
	}
	return out, nil
}

// invoiceContext best-effort display fields for a payment's invoice.
func (uc *PaymentUseCase) invoiceContext(invoiceID string) (invoiceNumber, clientName, status string) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil || inv == nil {
		return "", "", ""
	}
	invoiceNumber = inv.InvoiceNumber
	status = inv.Status
	if client, err := uc.clientRepo.GetByID(inv.ClientID); err == nil && client != nil {
		clientName = client.CompanyName
	}
	return invoiceNumber, clientName, status
}

func (uc *PaymentUseCase) clientName(clientID string) string {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil || client == nil {
		return ""
	}
	return client.CompanyName
}
