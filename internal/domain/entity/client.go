package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is an advertiser billed by the station.
type Client struct {
	ID          string
	CompanyName string
	Address     string
	Phone       string
	Email       string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ClientBalances are aggregates over the client's invoices. They are derived
// by SQL at read time and never stored on the client row.
type ClientBalances struct {
	TotalInvoiced      decimal.Decimal
	TotalPaid          decimal.Decimal
	OutstandingBalance decimal.Decimal
}
