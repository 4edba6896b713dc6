//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_pricing_put_test
package location_pricing_put

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
	ReplacePricingTiers(ctx context.Context, locationID int64, tiers []entities.PricingTier) error
}
