//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ticket_status_put_test
package ticket_status_put

import (
	"context"

	"parceltrack/internal/entities"
	"parceltrack/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateStatus(ctx context.Context, id int64, status entities.TicketStatus) (*entities.Ticket, error)
}
