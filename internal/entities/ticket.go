package entities

import (
	"time"
)

type Ticket struct {
	ID          int64
	LocationID  int64
	Subject     string
	Body        string
	Status      TicketStatus
	ExportBinID *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TicketStatus string

const (
	TicketOpen     TicketStatus = "open"
	TicketResolved TicketStatus = "resolved"
	TicketClosed   TicketStatus = "closed"
)

func (s TicketStatus) String() string {
	return string(s)
}

type TicketModify struct {
	ID          *int64
	Status      *TicketStatus
	ExportBinID *string
}
