// Package billing holds the station's invoice arithmetic as pure domain
// services: slot and line totals, VAT, outstanding balances and payment
// reconciliation. Everything here is deterministic, synchronous and free of
// I/O; use cases call it inside their transactions and forms can mirror it
// for previews, but the values persisted are always the ones computed here.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/emiratefm/airtime-billing/internal/domain"
	"github.com/emiratefm/airtime-billing/internal/domain/entity"
)

// one hundred, for percentage → fraction conversion.
var hundred = decimal.NewFromInt(100)

// SlotsFor returns dailySlots × campaignDays. Non-positive inputs are
// rejected rather than coerced: a zero or negative count reaching this point
// is a validation failure upstream, never a quantity.
func SlotsFor(dailySlots, campaignDays int) (int, error) {
	if dailySlots <= 0 || campaignDays <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return dailySlots * campaignDays, nil
}

// LineTotal returns slots × ratePerSlot rounded to 2 decimal places,
// half-up. Rounding happens only at this final multiplication; slot counts
// are exact integers and are never rounded.
func LineTotal(slots int, ratePerSlot decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(slots)).Mul(ratePerSlot).Round(2)
}

// Subtotal sums LineTotal over all service lines. An empty list yields zero.
func Subtotal(lines []entity.ServiceLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(LineTotal(l.DailySlots*l.CampaignDays, l.RatePerSlot))
	}
	return total
}

// VATAmount returns subtotal × ratePercent / 100 rounded to 2 decimal
// places. ratePercent is a percentage (7.5 means 7.5%).
func VATAmount(subtotal, ratePercent decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(ratePercent).Div(hundred).Round(2)
}

// GrandTotal returns subtotal + vatAmount.
func GrandTotal(subtotal, vatAmount decimal.Decimal) decimal.Decimal {
	return subtotal.Add(vatAmount)
}

// Outstanding returns max(0, total − paid). A paid amount above total clamps
// to zero here; detecting the excess is the caller's job (see
// PreviewPayment), not something to absorb silently into a negative balance.
func Outstanding(total, paid decimal.Decimal) decimal.Decimal {
	out := total.Sub(paid)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}
