//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcels_bulk_patch_test
package parcels_bulk_patch

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
	BulkUpdate(ctx context.Context, locationID int64, ids []int64, changes entities.BulkParcelChanges) (*entities.BulkUpdateResult, error)
}
