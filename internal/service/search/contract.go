//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=search_test
package search

import (
	"context"

	"parceltrack/internal/entities"
)

type Repository interface {
	SearchParcels(ctx context.Context, locationID int64, query string) ([]entities.Parcel, error)
}

type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Location, error)
	GetPricingTiers(ctx context.Context, locationID int64) ([]entities.PricingTier, error)
	GetStorageLocations(ctx context.Context, locationID int64) ([]entities.StorageLocation, error)
}
