package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emiratefm/airtime-billing/internal/domain"
	"github.com/emiratefm/airtime-billing/internal/domain/billing"
	"github.com/emiratefm/airtime-billing/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// PreviewPayment
// ──────────────────────────────────────────────────────────────────────────────

func TestPreviewPayment_PartialPayment(t *testing.T) {
	p, err := billing.PreviewPayment(decimal.NewFromInt(10750), decimal.NewFromInt(4000))
	require.NoError(t, err)
	assert.True(t, p.BalanceAfter.Equal(decimal.NewFromInt(6750)))
	assert.False(t, p.FullyPaid)
}

func TestPreviewPayment_ExactBalanceSettlesInvoice(t *testing.T) {
	p, err := billing.PreviewPayment(decimal.NewFromInt(10750), decimal.NewFromInt(10750))
	require.NoError(t, err)
	assert.True(t, p.BalanceAfter.IsZero())
	assert.True(t, p.FullyPaid)
}

func TestPreviewPayment_OverpaymentRejected(t *testing.T) {
	_, err := billing.PreviewPayment(decimal.NewFromInt(10750), decimal.NewFromInt(12000))
	assert.ErrorIs(t, err, domain.ErrOverpayment,
		"a payment above the outstanding balance must be rejected before any request is sent")
}

func TestPreviewPayment_OneKoboOverIsStillOverpayment(t *testing.T) {
	_, err := billing.PreviewPayment(decimal.RequireFromString("100.00"), decimal.RequireFromString("100.01"))
	assert.ErrorIs(t, err, domain.ErrOverpayment)
}

func TestPreviewPayment_NonPositiveAmountRejected(t *testing.T) {
	_, err := billing.PreviewPayment(decimal.NewFromInt(500), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = billing.PreviewPayment(decimal.NewFromInt(500), decimal.NewFromInt(-50))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

// ──────────────────────────────────────────────────────────────────────────────
// ClassifyStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyStatus_Paid(t *testing.T) {
	got := billing.ClassifyStatus(decimal.Zero, decimal.NewFromInt(10750))
	assert.Equal(t, entity.StatusPaid, got)
}

func TestClassifyStatus_Partial(t *testing.T) {
	got := billing.ClassifyStatus(decimal.NewFromInt(6750), decimal.NewFromInt(4000))
	assert.Equal(t, entity.StatusPartial, got)
}

func TestClassifyStatus_NothingPaidStaysPending(t *testing.T) {
	got := billing.ClassifyStatus(decimal.NewFromInt(10750), decimal.Zero)
	assert.Equal(t, entity.StatusPending, got)
}

func TestClassifyStatus_ZeroTotalZeroPaidIsNotPaid(t *testing.T) {
	// paid requires amount_paid > 0, not merely a zero balance
	got := billing.ClassifyStatus(decimal.Zero, decimal.Zero)
	assert.Equal(t, entity.StatusPending, got)
}
