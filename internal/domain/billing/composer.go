package billing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/emiratefm/airtime-billing/internal/domain"
	"github.com/emiratefm/airtime-billing/internal/domain/entity"
)

// Totals are the derived aggregates of a service-line list. They are
// recomputed from scratch on every read and never mutated directly.
type Totals struct {
	TotalSlots int
	Subtotal   decimal.Decimal
	VATAmount  decimal.Decimal
	GrandTotal decimal.Decimal
}

// LineEdit is a partial update for one service line. Nil fields are left
// untouched.
type LineEdit struct {
	Description  *string
	Duration     *string
	DailySlots   *int
	CampaignDays *int
	RatePerSlot  *decimal.Decimal
}

// Composer maintains a working, not-yet-persisted ordered list of service
// lines and derives invoice totals from it. One composer belongs to exactly
// one in-progress invoice (form session or create/update request); it is not
// shared and needs no locking. Abandoning it is the only cancellation.
type Composer struct {
	lines   []entity.ServiceLine
	vatRate decimal.Decimal
}

// NewComposer returns a composer seeded with a single blank line, since an
// invoice must always carry at least one service line.
func NewComposer(vatRate decimal.Decimal) (*Composer, error) {
	if vatRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	c := &Composer{vatRate: vatRate}
	c.AddLine()
	return c, nil
}

// AddLine appends a blank service line. Always permitted.
func (c *Composer) AddLine() {
	c.lines = append(c.lines, entity.ServiceLine{DailySlots: 1, CampaignDays: 1, RatePerSlot: decimal.Zero})
}

// RemoveLine deletes the line at index. Removing the sole remaining line is
// an invariant violation and leaves the list unchanged.
func (c *Composer) RemoveLine(index int) error {
	if index < 0 || index >= len(c.lines) {
		return domain.ErrLineIndex
	}
	if len(c.lines) == 1 {
		return domain.ErrLastServiceLine
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// UpdateLine applies edit to the line at index. Numeric fields are validated
// strictly: non-positive slot or day counts and negative rates are rejected
// with ErrInvalidInput, never coerced to zero. On failure the line is left
// as it was.
func (c *Composer) UpdateLine(index int, edit LineEdit) error {
	if index < 0 || index >= len(c.lines) {
		return domain.ErrLineIndex
	}
	if edit.DailySlots != nil && *edit.DailySlots <= 0 {
		return domain.ErrInvalidInput
	}
	if edit.CampaignDays != nil && *edit.CampaignDays <= 0 {
		return domain.ErrInvalidInput
	}
	if edit.RatePerSlot != nil && edit.RatePerSlot.IsNegative() {
		return domain.ErrInvalidInput
	}
	line := &c.lines[index]
	if edit.Description != nil {
		line.Description = strings.TrimSpace(*edit.Description)
	}
	if edit.Duration != nil {
		line.Duration = strings.TrimSpace(*edit.Duration)
	}
	if edit.DailySlots != nil {
		line.DailySlots = *edit.DailySlots
	}
	if edit.CampaignDays != nil {
		line.CampaignDays = *edit.CampaignDays
	}
	if edit.RatePerSlot != nil {
		line.RatePerSlot = *edit.RatePerSlot
	}
	return nil
}

// SetVATRate changes the VAT percentage for the whole invoice.
func (c *Composer) SetVATRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return domain.ErrInvalidInput
	}
	c.vatRate = rate
	return nil
}

// VATRate returns the current VAT percentage.
func (c *Composer) VATRate() decimal.Decimal { return c.vatRate }

// Len returns the number of service lines.
func (c *Composer) Len() int { return len(c.lines) }

// Lines returns the current lines with derived TotalSlots and LineTotal
// filled in, ordered, as a copy the caller may keep.
func (c *Composer) Lines() []entity.ServiceLine {
	out := make([]entity.ServiceLine, len(c.lines))
	for i, l := range c.lines {
		l.Position = i
		l.TotalSlots = l.DailySlots * l.CampaignDays
		l.LineTotal = LineTotal(l.TotalSlots, l.RatePerSlot)
		out[i] = l
	}
	return out
}

// Totals recomputes the invoice aggregates from the current lines and VAT
// rate. The result is never cached: every call reflects the latest edit.
func (c *Composer) Totals() Totals {
	slots := 0
	for _, l := range c.lines {
		slots += l.DailySlots * l.CampaignDays
	}
	sub := Subtotal(c.lines)
	vat := VATAmount(sub, c.vatRate)
	return Totals{
		TotalSlots: slots,
		Subtotal:   sub,
		VATAmount:  vat,
		GrandTotal: GrandTotal(sub, vat),
	}
}

// Validate checks the composed lines are submittable: every line needs a
// description, positive slot and day counts, and a non-negative rate.
func (c *Composer) Validate() error {
	for _, l := range c.lines {
		if strings.TrimSpace(l.Description) == "" {
			return domain.ErrInvalidInput
		}
		if _, err := SlotsFor(l.DailySlots, l.CampaignDays); err != nil {
			return err
		}
		if l.RatePerSlot.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	return nil
}
