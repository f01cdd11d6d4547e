package format_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emiratefm/airtime-billing/internal/domain"
	"github.com/emiratefm/airtime-billing/pkg/format"
)

// ──────────────────────────────────────────────────────────────────────────────
// Currency
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrency_TwoDecimalsAtEveryMagnitude(t *testing.T) {
	cases := map[string]string{
		"0":           "₦0.00",
		"1":           "₦1.00",
		"999.9":       "₦999.90",
		"1000":        "₦1,000.00",
		"10750":       "₦10,750.00",
		"1000000":     "₦1,000,000.00",
		"2500000.05":  "₦2,500,000.05",
		"12345678.90": "₦12,345,678.90",
	}
	for in, want := range cases {
		got := format.Currency(decimal.RequireFromString(in))
		assert.Equal(t, want, got, "Currency(%s)", in)
	}
}

func TestCurrency_NegativeAmount(t *testing.T) {
	got := format.Currency(decimal.RequireFromString("-1234.5"))
	assert.Equal(t, "-₦1,234.50", got)
}

func TestNumber_GroupsThousands(t *testing.T) {
	assert.Equal(t, "1,250", format.Number(1250))
	assert.Equal(t, "0", format.Number(0))
}

// ──────────────────────────────────────────────────────────────────────────────
// Status
// ──────────────────────────────────────────────────────────────────────────────

func TestStatus_CapitalizesKnownStatuses(t *testing.T) {
	cases := map[string]string{
		"draft":     "Draft",
		"pending":   "Pending",
		"partial":   "Partial",
		"paid":      "Paid",
		"cancelled": "Cancelled",
		"PAID":      "Paid", // stored lowercase, but display is forgiving about case
	}
	for in, want := range cases {
		got, err := format.Status(in)
		require.NoError(t, err, "Status(%q)", in)
		assert.Equal(t, want, got)
	}
}

func TestStatus_UnknownValueIsAnError(t *testing.T) {
	_, err := format.Status("refunded")
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)

	_, err = format.Status("")
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
}

// ──────────────────────────────────────────────────────────────────────────────
// Phone
// ──────────────────────────────────────────────────────────────────────────────

func TestPhone_NigerianFormats(t *testing.T) {
	assert.Equal(t, "+234 803 123 4567", format.Phone("2348031234567"))
	assert.Equal(t, "+234 803 123 4567", format.Phone("+234-803-123-4567"))
	assert.Equal(t, "0803 123 4567", format.Phone("08031234567"))
}

func TestPhone_UnrecognizedPassesThrough(t *testing.T) {
	assert.Equal(t, "12345", format.Phone("12345"))
	assert.Equal(t, "", format.Phone(""))
}
