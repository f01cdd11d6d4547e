package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/emiratefm/airtime-billing/internal/application/dto"
	"github.com/emiratefm/airtime-billing/internal/domain"
	"github.com/emiratefm/airtime-billing/internal/domain/entity"
	"github.com/emiratefm/airtime-billing/internal/domain/repository"
)

// ClientUseCase CRUD for advertisers. Balance aggregates are derived from
// the client's invoices at read time, never stored on the client row.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase builds the use case.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create registers a new advertiser. Company names are unique.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.CompanyName)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCompanyName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:          uuid.New().String(),
		CompanyName: name,
		Address:     strings.TrimSpace(in.Address),
		Phone:       strings.TrimSpace(in.Phone),
		Email:       strings.TrimSpace(in.Email),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client, nil), nil
}

// GetByID returns the advertiser with its derived balances.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	balances, err := uc.repo.Balances(id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client, balances), nil
}

// Update applies non-nil fields. Renaming into an existing company name is a
// duplicate.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.CompanyName != nil {
		name := strings.TrimSpace(*in.CompanyName)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if name != client.CompanyName {
			existing, err := uc.repo.GetByCompanyName(name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, domain.ErrDuplicate
			}
		}
		client.CompanyName = name
	}
	if in.Address != nil {
		client.Address = strings.TrimSpace(*in.Address)
	}
	if in.Phone != nil {
		client.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		client.Email = strings.TrimSpace(*in.Email)
	}
	if in.Active != nil {
		client.Active = *in.Active
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	balances, err := uc.repo.Balances(id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client, balances), nil
}

// Delete removes an advertiser. Clients with invoices cannot be deleted;
// deactivate them instead.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	has, err := uc.repo.HasInvoices(id)
	if err != nil {
		return err
	}
	if has {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

// List returns advertisers matching the search term, paginated, each with
// its derived balances.
func (uc *ClientUseCase) List(search string, page dto.PageRequest) ([]*dto.ClientResponse, error) {
	page.DefaultPage()
	clients, err := uc.repo.List(strings.TrimSpace(search), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		balances, err := uc.repo.Balances(c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, toClientResponse(c, balances))
	}
	return out, nil
}

func toClientResponse(c *entity.Client, b *entity.ClientBalances) *dto.ClientResponse {
	resp := &dto.ClientResponse{
		ID:                 c.ID,
		CompanyName:        c.CompanyName,
		Address:            c.Address,
		Phone:              c.Phone,
		Email:              c.Email,
		TotalInvoiced:      decimal.Zero,
		TotalPaid:          decimal.Zero,
		OutstandingBalance: decimal.Zero,
		Active:             c.Active,
		CreatedAt:          c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          c.UpdatedAt.Format(time.RFC3339),
	}
	if b != nil {
		resp.TotalInvoiced = b.TotalInvoiced
		resp.TotalPaid = b.TotalPaid
		resp.OutstandingBalance = b.OutstandingBalance
	}
	return resp
}
