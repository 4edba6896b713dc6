//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=storage_location_delete_test
package storage_location_delete

import (
	"context"

	"parceltrack/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteStorageLocation(ctx context.Context, id int64) error
}
