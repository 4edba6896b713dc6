package ticket

import (
	"parceltrack/internal/entities"
)

func ToDomain(t *TicketDB) *entities.Ticket {
	if t == nil {
		return nil
	}

	return &entities.Ticket{
		ID:          t.ID,
		LocationID:  t.LocationID,
		Subject:     t.Subject,
		Body:        t.Body,
		Status:      entities.TicketStatus(t.Status),
		ExportBinID: t.ExportBinID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToDomainList(ticketsDB []TicketDB) []entities.Ticket {
	if len(ticketsDB) == 0 {
		return []entities.Ticket{}
	}

	result := make([]entities.Ticket, len(ticketsDB))
	for i, ticketDB := range ticketsDB {
		result[i] = *ToDomain(&ticketDB)
	}
	return result
}
