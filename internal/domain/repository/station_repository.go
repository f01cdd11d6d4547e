package repository

import "github.com/emiratefm/airtime-billing/internal/domain/entity"

// StationRepository persistence port for the single station-settings row and
// its numbering sequences.
type StationRepository interface {
	Get() (*entity.Station, error)
	Create(station *entity.Station) error
	Update(station *entity.Station) error
	// NextInvoiceNumber / NextReceiptNumber atomically bump the counter and
	// return the formatted number (e.g. "INV-0042"). Call inside the same
	// transaction that persists the document so gaps only appear on rollback.
	NextInvoiceNumber() (string, error)
	NextReceiptNumber() (string, error)
}
