// Package format holds the deterministic display formatting shared by every
// surface that renders billing output: API responses, PDFs and logs. The
// locale/currency pair is fixed (English grouping, Naira) so the same number
// always renders the same bytes regardless of host locale.
package format

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/emiratefm/airtime-billing/internal/domain"
	"github.com/emiratefm/airtime-billing/internal/domain/entity"
)

// NairaSymbol prefixes every formatted amount.
const NairaSymbol = "₦"

// Display and wire date layouts (dd/MM/yyyy on screen, yyyy-MM-dd on the API).
const (
	DateDisplay = "02/01/2006"
	DateAPI     = "2006-01-02"
)

var printer = message.NewPrinter(language.English)

// Currency renders a monetary amount with the Naira symbol, comma thousands
// separators and exactly two decimal places: 10750 → "₦10,750.00".
func Currency(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")

	grouped := intPart
	// ParseInt only fails past the int64 range; stored amounts are
	// NUMERIC(14,2) so the ungrouped fallback is never hit in practice.
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		grouped = printer.Sprintf("%d", n)
	}
	return sign + NairaSymbol + grouped + "." + frac
}

// Number renders an integer with comma thousands separators.
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Status capitalizes an invoice status for display. The enum is closed:
// anything outside it is an error, not a best-effort render.
func Status(status string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(status))
	for _, known := range entity.InvoiceStatuses {
		if s == known {
			r := []rune(s)
			r[0] = unicode.ToUpper(r[0])
			return string(r), nil
		}
	}
	return "", domain.ErrUnknownStatus
}

// Phone normalizes a Nigerian phone number into readable groups:
// "2348031234567" → "+234 803 123 4567", "08031234567" → "0803 123 4567".
// Anything that doesn't look Nigerian is returned as-is.
func Phone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	switch {
	case strings.HasPrefix(cleaned, "234") && len(cleaned) == 13:
		return "+" + cleaned[:3] + " " + cleaned[3:6] + " " + cleaned[6:9] + " " + cleaned[9:]
	case strings.HasPrefix(cleaned, "0") && len(cleaned) == 11:
		return cleaned[:4] + " " + cleaned[4:7] + " " + cleaned[7:]
	default:
		return phone
	}
}
