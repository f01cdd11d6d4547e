package billing

import (
	"github.com/shopspring/decimal"

	"github.com/emiratefm/airtime-billing/internal/domain"
	"github.com/emiratefm/airtime-billing/internal/domain/entity"
)

// PaymentPreview is the derived result of applying a proposed payment to an
// invoice's outstanding balance.
type PaymentPreview struct {
	BalanceAfter decimal.Decimal
	FullyPaid    bool
}

// PreviewPayment validates a proposed payment against the known outstanding
// balance and derives the resulting balance. Paying the exact balance is
// allowed and settles the invoice; paying more is rejected.
//
// When called from a form this is an advisory check only: another operator
// may record a payment against the same invoice between preview and submit.
// The authoritative run is the one the record-payment use case performs
// inside its transaction, with the invoice row locked.
func PreviewPayment(outstandingBefore, proposedAmount decimal.Decimal) (PaymentPreview, error) {
	if proposedAmount.LessThanOrEqual(decimal.Zero) {
		return PaymentPreview{}, domain.ErrInvalidAmount
	}
	if proposedAmount.GreaterThan(outstandingBefore) {
		return PaymentPreview{}, domain.ErrOverpayment
	}
	after := outstandingBefore.Sub(proposedAmount)
	return PaymentPreview{BalanceAfter: after, FullyPaid: after.IsZero()}, nil
}

// ClassifyStatus derives the invoice status from its balance after a payment
// and the cumulative amount paid:
//
//	paid    ⟺ balance = 0 and amount_paid > 0
//	partial ⟺ balance > 0 and amount_paid > 0
//	pending otherwise (nothing received; a zero-total invoice stays pending)
func ClassifyStatus(balanceAfter, amountPaidTotal decimal.Decimal) string {
	if amountPaidTotal.LessThanOrEqual(decimal.Zero) {
		return entity.StatusPending
	}
	if balanceAfter.IsZero() {
		return entity.StatusPaid
	}
	return entity.StatusPartial
}
