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
// SlotsFor
// ──────────────────────────────────────────────────────────────────────────────

func TestSlotsFor_Product(t *testing.T) {
	slots, err := billing.SlotsFor(2, 5)
	require.NoError(t, err)
	assert.Equal(t, 10, slots)
}

func TestSlotsFor_NumericallyCommutative(t *testing.T) {
	a, err1 := billing.SlotsFor(3, 7)
	b, err2 := billing.SlotsFor(7, 3)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, a, b, "daily×days and days×daily must agree numerically")
}

func TestSlotsFor_RejectsNonPositiveInputs(t *testing.T) {
	cases := [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -1}, {0, 0}}
	for _, c := range cases {
		_, err := billing.SlotsFor(c[0], c[1])
		assert.ErrorIs(t, err, domain.ErrInvalidInput,
			"SlotsFor(%d, %d) must be rejected, not coerced to zero", c[0], c[1])
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// LineTotal / Subtotal
// ──────────────────────────────────────────────────────────────────────────────

func TestLineTotal_RoundsHalfUpAtFinalMultiply(t *testing.T) {
	// 3 slots × 0.125 = 0.375 → 0.38 half-up
	got := billing.LineTotal(3, decimal.RequireFromString("0.125"))
	assert.True(t, got.Equal(decimal.RequireFromString("0.38")), "got %s", got)
}

func TestSubtotal_SumsLineTotals(t *testing.T) {
	lines := []entity.ServiceLine{
		{DailySlots: 2, CampaignDays: 5, RatePerSlot: decimal.NewFromInt(1000)},
		{DailySlots: 1, CampaignDays: 3, RatePerSlot: decimal.RequireFromString("250.50")},
	}
	got := billing.Subtotal(lines)
	assert.True(t, got.Equal(decimal.RequireFromString("10751.50")), "got %s", got)
}

func TestSubtotal_EmptyListIsZero(t *testing.T) {
	assert.True(t, billing.Subtotal(nil).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// VATAmount / GrandTotal
// ──────────────────────────────────────────────────────────────────────────────

func TestVATAmount_NonNegativeAndAdditive(t *testing.T) {
	sub := decimal.NewFromInt(10000)
	rate := decimal.RequireFromString("7.5")

	vat := billing.VATAmount(sub, rate)
	assert.True(t, vat.Equal(decimal.NewFromInt(750)), "got %s", vat)
	assert.False(t, vat.IsNegative())

	total := billing.GrandTotal(sub, vat)
	assert.True(t, total.Equal(decimal.NewFromInt(10750)), "got %s", total)
}

func TestVATAmount_ZeroRate(t *testing.T) {
	vat := billing.VATAmount(decimal.NewFromInt(5000), decimal.Zero)
	assert.True(t, vat.IsZero())
}

func TestVATAmount_RoundsToTwoPlaces(t *testing.T) {
	// 333.33 × 7.5% = 24.99975 → 25.00
	vat := billing.VATAmount(decimal.RequireFromString("333.33"), decimal.RequireFromString("7.5"))
	assert.Equal(t, "25.00", vat.StringFixed(2))
}

// ──────────────────────────────────────────────────────────────────────────────
// Outstanding
// ──────────────────────────────────────────────────────────────────────────────

func TestOutstanding_ExactDifferenceWithinRange(t *testing.T) {
	total := decimal.NewFromInt(10750)
	assert.True(t, billing.Outstanding(total, decimal.Zero).Equal(total))
	assert.True(t, billing.Outstanding(total, decimal.NewFromInt(750)).Equal(decimal.NewFromInt(10000)))
	assert.True(t, billing.Outstanding(total, total).IsZero())
}

func TestOutstanding_MonotonicallyNonIncreasing(t *testing.T) {
	total := decimal.NewFromInt(5000)
	prev := billing.Outstanding(total, decimal.Zero)
	for paid := int64(500); paid <= 5000; paid += 500 {
		cur := billing.Outstanding(total, decimal.NewFromInt(paid))
		assert.True(t, cur.LessThanOrEqual(prev), "outstanding grew as paid increased")
		prev = cur
	}
}

func TestOutstanding_ClampsOverpaymentToZero(t *testing.T) {
	got := billing.Outstanding(decimal.NewFromInt(100), decimal.NewFromInt(250))
	assert.True(t, got.IsZero(), "overpayment must clamp to zero, never go negative")
}

// ──────────────────────────────────────────────────────────────────────────────
// End-to-end scenario: the reference campaign
//
//	1 line {daily_slots: 2, campaign_days: 5, rate_per_slot: 1000}, VAT 7.5%
//	→ total_slots 10, subtotal 10,000, vat 750, total 10,750
// ──────────────────────────────────────────────────────────────────────────────

func TestReferenceCampaignScenario(t *testing.T) {
	slots, err := billing.SlotsFor(2, 5)
	require.NoError(t, err)
	assert.Equal(t, 10, slots)

	sub := billing.LineTotal(slots, decimal.NewFromInt(1000))
	assert.True(t, sub.Equal(decimal.NewFromInt(10000)))

	vat := billing.VATAmount(sub, decimal.RequireFromString("7.5"))
	total := billing.GrandTotal(sub, vat)
	assert.True(t, vat.Equal(decimal.NewFromInt(750)))
	assert.True(t, total.Equal(decimal.NewFromInt(10750)))
}
