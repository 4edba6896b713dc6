//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_test
package location

import (
	"context"

	"parceltrack/internal/entities"
	"parceltrack/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, locationModifyEntity entities.LocationModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Location, error)
	GetAll(ctx context.Context) ([]entities.Location, error)
	Update(ctx context.Context, locationModifyEntity entities.LocationModify) (*entities.Location, error)
	Delete(ctx context.Context, id int64) error

	CreateStorageLocation(ctx context.Context, locationID int64, name string) (int64, error)
	GetStorageLocations(ctx context.Context, locationID int64) ([]entities.StorageLocation, error)
	DeleteStorageLocation(ctx context.Context, id int64) error

	ReplacePricingTiers(ctx context.Context, locationID int64, tiers []entities.PricingTier) error
	GetPricingTiers(ctx context.Context, locationID int64) ([]entities.PricingTier, error)
}

type ParcelRepository interface {
	ClearStorageRefs(ctx context.Context, storageLocationID int64) (int64, error)
}

// Exporter прощальный снапшот перед удалением локации.
type Exporter interface {
	ExportForDeletion(ctx context.Context, locationID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
