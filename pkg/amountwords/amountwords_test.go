package amountwords_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/emiratefm/airtime-billing/pkg/amountwords"
)

func TestNaira_WholeAmounts(t *testing.T) {
	cases := map[string]string{
		"0":       "Zero Naira Only",
		"1":       "One Naira Only",
		"21":      "Twenty-One Naira Only",
		"100":     "One Hundred Naira Only",
		"115":     "One Hundred and Fifteen Naira Only",
		"10750":   "Ten Thousand, Seven Hundred and Fifty Naira Only",
		"1000000": "One Million Naira Only",
		"2500300": "Two Million, Five Hundred Thousand, Three Hundred Naira Only",
		"1000001": "One Million, One Naira Only",
	}
	for in, want := range cases {
		got := amountwords.Naira(decimal.RequireFromString(in))
		assert.Equal(t, want, got, "Naira(%s)", in)
	}
}

func TestNaira_WithKobo(t *testing.T) {
	got := amountwords.Naira(decimal.RequireFromString("10750.50"))
	assert.Equal(t, "Ten Thousand, Seven Hundred and Fifty Naira, Fifty Kobo Only", got)

	got = amountwords.Naira(decimal.RequireFromString("0.05"))
	assert.Equal(t, "Five Kobo Only", got)
}

func TestNaira_QuadrillionScale(t *testing.T) {
	got := amountwords.Naira(decimal.RequireFromString("1000000000000000"))
	assert.Equal(t, "One Quadrillion Naira Only", got)

	got = amountwords.Naira(decimal.RequireFromString("9000000000000000000"))
	assert.Equal(t, "Nine Quintillion Naira Only", got)
}

func TestNaira_BeyondInt64FallsBackToFigures(t *testing.T) {
	got := amountwords.Naira(decimal.RequireFromString("10000000000000000000"))
	assert.Equal(t, "10000000000000000000.00 Naira Only", got)
}

func TestNaira_TruncatesBelowKobo(t *testing.T) {
	got := amountwords.Naira(decimal.RequireFromString("9.999"))
	assert.Equal(t, "Nine Naira, Ninety-Nine Kobo Only", got)
}
