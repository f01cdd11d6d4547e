// Package billing holds the invoice and payment use cases: composing and
// persisting invoices, reconciling payments against them, and rendering the
// printable documents. All arithmetic is delegated to the domain billing
// package; this layer owns validation, transactions and DTO mapping.
package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/emiratefm/airtime-billing/internal/application/dto"
	"github.com/emiratefm/airtime-billing/internal/domain"
	dombilling "github.com/emiratefm/airtime-billing/internal/domain/billing"
	"github.com/emiratefm/airtime-billing/internal/domain/entity"
	"github.com/emiratefm/airtime-billing/pkg/format"
)

// composeLines runs the submitted service lines through the domain composer
// so the persisted values are exactly the ones it derives. Rejects empty
// line lists and any line the composer refuses.
func composeLines(services []dto.ServiceLineRequest, vatRate decimal.Decimal) (*dombilling.Composer, error) {
	if len(services) == 0 {
		return nil, domain.ErrInvalidInput
	}
	c, err := dombilling.NewComposer(vatRate)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if i > 0 {
			c.AddLine()
		}
		s := services[i]
		edit := dombilling.LineEdit{
			Description:  &s.Description,
			Duration:     &s.Duration,
			DailySlots:   &s.DailySlots,
			CampaignDays: &s.CampaignDays,
			RatePerSlot:  &s.RatePerSlot,
		}
		if err := c.UpdateLine(i, edit); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func validInvoiceType(t string) bool {
	return t == entity.TypeProforma || t == entity.TypeAdvanceBill
}

func validPaymentMethod(m string) bool {
	for _, v := range entity.PaymentMethods {
		if m == v {
			return true
		}
	}
	return false
}

// parseDate parses a yyyy-MM-dd wire date.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(format.DateAPI, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

// ToInvoiceResponse maps an invoice (with its service lines loaded) to the
// wire shape. clientName may be empty when the caller did not join it.
func ToInvoiceResponse(inv *entity.Invoice, clientName string) *dto.InvoiceResponse {
	lines := make([]dto.ServiceLineResponse, 0, len(inv.Services))
	for _, l := range inv.Services {
		lines = append(lines, dto.ServiceLineResponse{
			Description:  l.Description,
			Duration:     l.Duration,
			DailySlots:   l.DailySlots,
			CampaignDays: l.CampaignDays,
			RatePerSlot:  l.RatePerSlot,
			TotalSlots:   l.TotalSlots,
			LineTotal:    l.LineTotal,
		})
	}
	return &dto.InvoiceResponse{
		ID:                 inv.ID,
		InvoiceNumber:      inv.InvoiceNumber,
		ClientID:           inv.ClientID,
		ClientName:         clientName,
		InvoiceType:        inv.InvoiceType,
		InvoiceDate:        inv.InvoiceDate.Format(format.DateAPI),
		Services:           lines,
		VATRate:            inv.VATRate,
		TotalSlots:         inv.TotalSlots,
		Subtotal:           inv.Subtotal,
		VATAmount:          inv.VATAmount,
		TotalAmount:        inv.TotalAmount,
		AmountInWords:      inv.AmountInWords,
		AdvanceRequired:    inv.AdvanceRequired,
		AmountPaid:         inv.AmountPaid,
		OutstandingBalance: inv.OutstandingBalance,
		Status:             inv.Status,
		PaymentTerms:       inv.PaymentTerms,
		Notes:              inv.Notes,
		CreatedAt:          inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          inv.UpdatedAt.Format(time.RFC3339),
	}
}

// ToPaymentResponse maps a payment to the wire shape. invoiceNumber,
// clientName and invoiceStatus may be empty when the caller did not join
// them.
func ToPaymentResponse(p *entity.Payment, invoiceNumber, clientName, invoiceStatus string) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:                   p.ID,
		InvoiceID:            p.InvoiceID,
		InvoiceNumber:        invoiceNumber,
		ClientName:           clientName,
		ReceiptNumber:        p.ReceiptNumber,
		AmountPaid:           p.AmountPaid,
		PaymentMethod:        p.PaymentMethod,
		TransactionRef:       p.TransactionRef,
		DateReceived:         p.DateReceived.Format(format.DateAPI),
		ReceivedBy:           p.ReceivedBy,
		Position:             p.Position,
		Notes:                p.Notes,
		InvoiceBalanceBefore: p.InvoiceBalanceBefore,
		InvoiceBalanceAfter:  p.InvoiceBalanceAfter,
		InvoiceStatus:        invoiceStatus,
		CreatedAt:            p.CreatedAt.Format(time.RFC3339),
	}
}
