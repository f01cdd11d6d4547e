package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is one entry of the station's rate card: the price of a broadcast
// slot for a category/duration/time-slot combination.
type Rate struct {
	ID          string
	Category    string
	Duration    string // e.g. "30 sec", "60 sec"
	TimeSlot    string // e.g. "Prime Time 6am-9am"
	Platform    string // e.g. "FM", "Online Stream"
	Price       decimal.Decimal
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
