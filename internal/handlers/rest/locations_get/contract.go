//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=locations_get_test
package locations_get

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
	GetLocations(ctx context.Context) ([]entities.Location, error)
}
