package repository

import "github.com/emiratefm/airtime-billing/internal/domain/entity"

// ClientRepository persistence port for advertisers.
type ClientRepository interface {
	Create(client *entity.Client) error
	Update(client *entity.Client) error
	Delete(id string) error
	GetByID(id string) (*entity.Client, error)
	GetByCompanyName(name string) (*entity.Client, error)
	List(search string, limit, offset int) ([]*entity.Client, error)
	// Balances aggregates the client's invoices (total invoiced/paid/
	// outstanding); derived by SQL, never stored.
	Balances(clientID string) (*entity.ClientBalances, error)
	HasInvoices(clientID string) (bool, error)
}
