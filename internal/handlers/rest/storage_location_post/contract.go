//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=storage_location_post_test
package storage_location_post

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
	CreateStorageLocation(ctx context.Context, locationID int64, name string) (int64, error)
}
