package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/emiratefm/airtime-billing/internal/application/billing"
	"github.com/emiratefm/airtime-billing/internal/application/dto"
	"github.com/emiratefm/airtime-billing/internal/domain"
	"github.com/emiratefm/airtime-billing/internal/domain/entity"
	"github.com/emiratefm/airtime-billing/internal/domain/repository"
)

func strPtr(s string) *string { return &s }

// stubTxRunner runs the closure directly against the stub repositories, no
// database involved.
type stubTxRunner struct{ invoices *stubInvoiceRepo }

func (r *stubTxRunner) RunBilling(_ context.Context, fn func(
	repository.InvoiceRepository,
	repository.PaymentRepository,
	repository.StationRepository,
) error) error {
	return fn(r.invoices, nil, nil)
}

// stubInvoiceRepo serves a stale row on plain reads and a fresher row on the
// locking read, mimicking a payment that landed between the two.
type stubInvoiceRepo struct {
	stale      *entity.Invoice
	locked     *entity.Invoice
	lines      []entity.ServiceLine
	lockedRead bool
	updated    *entity.Invoice
}

func (r *stubInvoiceRepo) Create(*entity.Invoice) error { return nil }
func (r *stubInvoiceRepo) CreateService(*entity.ServiceLine) error { return nil }
func (r *stubInvoiceRepo) Update(inv *entity.Invoice) error { r.updated = inv; return nil }
func (r *stubInvoiceRepo) UpdateBalances(*entity.Invoice) error { return nil }
func (r *stubInvoiceRepo) Delete(string) error { return nil }
func (r *stubInvoiceRepo) DeleteServices(string) error { return nil }
func (r *stubInvoiceRepo) GetByID(string) (*entity.Invoice, error) { return r.stale, nil }
func (r *stubInvoiceRepo) GetByIDForUpdate(string) (*entity.Invoice, error) {
	r.lockedRead = true
	return r.locked, nil
}
func (r *stubInvoiceRepo) GetServicesByInvoiceID(string) ([]entity.ServiceLine, error) {
	return r.lines, nil
}
func (r *stubInvoiceRepo) List(repository.InvoiceFilter) ([]*entity.Invoice, error) { return nil, nil }

type stubClientRepo struct{ client *entity.Client }

func (r *stubClientRepo) Create(*entity.Client) error { return nil }
func (r *stubClientRepo) Update(*entity.Client) error { return nil }
func (r *stubClientRepo) Delete(string) error { return nil }
func (r *stubClientRepo) GetByID(string) (*entity.Client, error) { return r.client, nil }
func (r *stubClientRepo) GetByCompanyName(string) (*entity.Client, error) { return nil, nil }
func (r *stubClientRepo) List(string, int, int) ([]*entity.Client, error) { return nil, nil }
func (r *stubClientRepo) Balances(string) (*entity.ClientBalances, error) { return nil, nil }
func (r *stubClientRepo) HasInvoices(string) (bool, error) { return false, nil }

func partiallyPaidFixture() (*stubInvoiceRepo, *appbilling.InvoiceUseCase) {
	now := time.Now()
	locked := &entity.Invoice{
		ID:                 "inv-1",
		InvoiceNumber:      "INV-0042",
		ClientID:           "cl-1",
		InvoiceType:        "proforma",
		InvoiceDate:        now,
		VATRate:            decimal.RequireFromString("7.5"),
		TotalSlots:         10,
		Subtotal:           decimal.NewFromInt(10000),
		VATAmount:          decimal.NewFromInt(750),
		TotalAmount:        decimal.NewFromInt(10750),
		AmountPaid:         decimal.NewFromInt(4000),
		OutstandingBalance: decimal.NewFromInt(6750),
		Status:             entity.StatusPartial,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	stale := *locked
	stale.AmountPaid = decimal.Zero
	stale.OutstandingBalance = locked.TotalAmount
	stale.Status = entity.StatusPending

	repo := &stubInvoiceRepo{
		stale:  &stale,
		locked: locked,
		lines: []entity.ServiceLine{{
			Description: "Breakfast show spots", DailySlots: 2, CampaignDays: 5,
			RatePerSlot: decimal.NewFromInt(1000),
		}},
	}
	uc := appbilling.NewInvoiceUseCase(
		&stubTxRunner{invoices: repo}, repo, nil,
		&stubClientRepo{client: &entity.Client{ID: "cl-1", CompanyName: "Wave Foods Ltd"}},
	)
	return repo, uc
}

// A payment recorded by another operator must be visible to the edit: the
// shrink check runs against the row read under lock, not the stale pool read.
func TestUpdate_RefusesShrinkBelowLockedAmountPaid(t *testing.T) {
	repo, uc := partiallyPaidFixture()

	// new total 2,150 is below the 4,000 already received on the locked row
	in := dto.UpdateInvoiceRequest{Services: []dto.ServiceLineRequest{{
		Description: "Midday spot", DailySlots: 1, CampaignDays: 1,
		RatePerSlot: decimal.NewFromInt(2000),
	}}}
	_, err := uc.Update(context.Background(), "inv-1", in)

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.True(t, repo.lockedRead, "edit must read the invoice under a row lock")
	assert.Nil(t, repo.updated, "refused edit must not rewrite the header")
}

func TestUpdate_RecomputesBalanceFromLockedRow(t *testing.T) {
	repo, uc := partiallyPaidFixture()

	out, err := uc.Update(context.Background(), "inv-1", dto.UpdateInvoiceRequest{
		Notes: strPtr("rush order"),
	})
	require.NoError(t, err)

	assert.True(t, repo.lockedRead)
	assert.True(t, out.AmountPaid.Equal(decimal.NewFromInt(4000)),
		"amount_paid must come from the locked row, not the stale read")
	assert.True(t, out.OutstandingBalance.Equal(decimal.NewFromInt(6750)))
	assert.Equal(t, entity.StatusPartial, out.Status)
	require.NotNil(t, repo.updated)
	assert.True(t, repo.updated.TotalAmount.Equal(decimal.NewFromInt(10750)))
}
