package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emiratefm/airtime-billing/internal/domain"
	"github.com/emiratefm/airtime-billing/internal/domain/billing"
)

func strPtr(s string) *string          { return &s }
func intPtr(n int) *int                { return &n }
func decPtr(s string) *decimal.Decimal { d := decimal.RequireFromString(s); return &d }
func newComposer(t *testing.T) *billing.Composer {
	t.Helper()
	c, err := billing.NewComposer(decimal.RequireFromString("7.5"))
	require.NoError(t, err)
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Line list invariants
// ──────────────────────────────────────────────────────────────────────────────

func TestNewComposer_SeedsOneBlankLine(t *testing.T) {
	c := newComposer(t)
	assert.Equal(t, 1, c.Len())
}

func TestNewComposer_RejectsNegativeVATRate(t *testing.T) {
	_, err := billing.NewComposer(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRemoveLine_LastLineIsInvariantViolation(t *testing.T) {
	c := newComposer(t)
	err := c.RemoveLine(0)
	assert.ErrorIs(t, err, domain.ErrLastServiceLine)
	assert.Equal(t, 1, c.Len(), "failed removal must leave the sequence unchanged")
}

func TestRemoveLine_OutOfRange(t *testing.T) {
	c := newComposer(t)
	assert.ErrorIs(t, c.RemoveLine(5), domain.ErrLineIndex)
	assert.ErrorIs(t, c.RemoveLine(-1), domain.ErrLineIndex)
}

func TestAddThenRemove_KeepsOrder(t *testing.T) {
	c := newComposer(t)
	c.AddLine()
	c.AddLine()
	require.NoError(t, c.UpdateLine(0, billing.LineEdit{Description: strPtr("first")}))
	require.NoError(t, c.UpdateLine(1, billing.LineEdit{Description: strPtr("second")}))
	require.NoError(t, c.UpdateLine(2, billing.LineEdit{Description: strPtr("third")}))

	require.NoError(t, c.RemoveLine(1))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "first", lines[0].Description)
	assert.Equal(t, "third", lines[1].Description)
	assert.Equal(t, 0, lines[0].Position)
	assert.Equal(t, 1, lines[1].Position)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateLine validation
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateLine_OutOfRangeIndex(t *testing.T) {
	c := newComposer(t)
	err := c.UpdateLine(3, billing.LineEdit{Description: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrLineIndex)
}

func TestUpdateLine_RejectsNonPositiveCounts(t *testing.T) {
	c := newComposer(t)
	assert.ErrorIs(t, c.UpdateLine(0, billing.LineEdit{DailySlots: intPtr(0)}), domain.ErrInvalidInput)
	assert.ErrorIs(t, c.UpdateLine(0, billing.LineEdit{CampaignDays: intPtr(-2)}), domain.ErrInvalidInput)
	assert.ErrorIs(t, c.UpdateLine(0, billing.LineEdit{RatePerSlot: decPtr("-10")}), domain.ErrInvalidInput)

	// rejected edits must not partially apply
	lines := c.Lines()
	assert.Equal(t, 1, lines[0].DailySlots)
	assert.Equal(t, 1, lines[0].CampaignDays)
}

// ──────────────────────────────────────────────────────────────────────────────
// Totals recomputation
// ──────────────────────────────────────────────────────────────────────────────

func TestTotals_RecomputedAfterEveryEdit(t *testing.T) {
	c := newComposer(t)
	require.NoError(t, c.UpdateLine(0, billing.LineEdit{
		Description: strPtr("Morning drive jingle"),
		DailySlots:  intPtr(2), CampaignDays: intPtr(5), RatePerSlot: decPtr("1000"),
	}))

	totals := c.Totals()
	assert.Equal(t, 10, totals.TotalSlots)
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(10000)))
	assert.True(t, totals.VATAmount.Equal(decimal.NewFromInt(750)))
	assert.True(t, totals.GrandTotal.Equal(decimal.NewFromInt(10750)))

	// editing a field must be reflected on the very next Totals call
	require.NoError(t, c.UpdateLine(0, billing.LineEdit{CampaignDays: intPtr(10)}))
	totals = c.Totals()
	assert.Equal(t, 20, totals.TotalSlots)
	assert.True(t, totals.GrandTotal.Equal(decimal.NewFromInt(21500)))
}

func TestTotals_VATRateChangeRecomputes(t *testing.T) {
	c := newComposer(t)
	require.NoError(t, c.UpdateLine(0, billing.LineEdit{
		Description: strPtr("spot"), DailySlots: intPtr(1), CampaignDays: intPtr(1), RatePerSlot: decPtr("200"),
	}))
	require.NoError(t, c.SetVATRate(decimal.Zero))

	totals := c.Totals()
	assert.True(t, totals.VATAmount.IsZero())
	assert.True(t, totals.GrandTotal.Equal(decimal.NewFromInt(200)))
}

func TestLines_FillsDerivedFields(t *testing.T) {
	c := newComposer(t)
	require.NoError(t, c.UpdateLine(0, billing.LineEdit{
		Description: strPtr("OAP mention"), DailySlots: intPtr(3), CampaignDays: intPtr(4), RatePerSlot: decPtr("500"),
	}))
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 12, lines[0].TotalSlots)
	assert.True(t, lines[0].LineTotal.Equal(decimal.NewFromInt(6000)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_BlankDescriptionRejected(t *testing.T) {
	c := newComposer(t)
	assert.ErrorIs(t, c.Validate(), domain.ErrInvalidInput, "seeded blank line is not submittable")

	require.NoError(t, c.UpdateLine(0, billing.LineEdit{
		Description: strPtr("Sponsored program"), RatePerSlot: decPtr("1500"),
	}))
	assert.NoError(t, c.Validate())
}
