//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ticket_get_test
package ticket_get

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
	GetTicket(ctx context.Context, id int64) (*entities.Ticket, error)
}
