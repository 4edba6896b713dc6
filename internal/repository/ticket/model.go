package ticket

import "time"

type TicketDB struct {
	ID          int64
	LocationID  int64
	Subject     string
	Body        string
	Status      string
	ExportBinID *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
