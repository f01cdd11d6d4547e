// Package amountwords spells out Naira amounts for the "amount in words"
// line printed on invoices and receipts.
package amountwords

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

var scales = []string{"", " Thousand", " Million", " Billion", " Trillion", " Quadrillion", " Quintillion"}

// Naira renders an amount as words, e.g. 10750.50 →
// "Ten Thousand, Seven Hundred and Fifty Naira, Fifty Kobo Only".
// Amounts are truncated to kobo (2 decimal places) before spelling.
func Naira(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	amount = amount.Abs().Truncate(2)

	var b strings.Builder
	if neg {
		b.WriteString("Minus ")
	}

	// Grouping works on int64; past that range print the figure instead.
	if !amount.BigInt().IsInt64() {
		b.WriteString(amount.StringFixed(2))
		b.WriteString(" Naira Only")
		return b.String()
	}

	naira := amount.IntPart()
	kobo := amount.Sub(decimal.NewFromInt(naira)).Mul(decimal.NewFromInt(100)).IntPart()
	if naira == 0 && kobo == 0 {
		return "Zero Naira Only"
	}
	if naira > 0 {
		b.WriteString(words(naira))
		b.WriteString(" Naira")
	}
	if kobo > 0 {
		if naira > 0 {
			b.WriteString(", ")
		}
		b.WriteString(words(kobo))
		b.WriteString(" Kobo")
	}
	b.WriteString(" Only")
	return b.String()
}

// words spells a positive integer, grouping by thousands.
func words(n int64) string {
	if n == 0 {
		return "Zero"
	}

	// split into 3-digit groups, least significant first
	var groups []int64
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		parts = append(parts, hundreds(g)+scales[i])
	}
	return strings.Join(parts, ", ")
}

// hundreds spells a group of 1–999.
func hundreds(n int64) string {
	var b strings.Builder
	if n >= 100 {
		b.WriteString(ones[n/100])
		b.WriteString(" Hundred")
		n %= 100
		if n > 0 {
			b.WriteString(" and ")
		}
	}
	switch {
	case n == 0:
	case n < 20:
		b.WriteString(ones[n])
	default:
		b.WriteString(tens[n/10])
		if n%10 > 0 {
			b.WriteString("-")
			b.WriteString(ones[n%10])
		}
	}
	return b.String()
}
