//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcels_search_get_test
package parcels_search_get

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
	Search(ctx context.Context, locationID int64, query string) (*entities.SearchResult, error)
}
