package location

import (
	"context"
	"fmt"

	"parceltrack/internal/entities"
	"parceltrack/pkg/logger"
)

type Location struct {
	repository Repository
	parcels    ParcelRepository
	exporter   Exporter
	txManager  TxManager
	log        serviceLogger
}

func New(
	repository Repository,
	parcels ParcelRepository,
	exporter Exporter,
	txManager TxManager,
	log serviceLogger,
) *Location {
	return &Location{
		repository: repository,
		parcels:    parcels,
		exporter:   exporter,
		txManager:  txManager,
		log:        log,
	}
}

func (s *Location) CreateLocation(ctx context.Context, locationModify entities.LocationModify) (int64, error) {
	if locationModify.Name == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*locationModify.Name) {
		return 0, ErrInvalidName
	}
	if locationModify.PricingType != nil && !isValidPricingType(locationModify.PricingType.String()) {
		return 0, ErrInvalidPricingType
	}
	if locationModify.PerPoundRate != nil && !isValidRate(*locationModify.PerPoundRate) {
		return 0, ErrInvalidRate
	}

	id, err := s.repository.Create(ctx, locationModify)
	if err != nil {
		return 0, fmt.Errorf("create location: %w", err)
	}

	return id, nil
}

func (s *Location) UpdateLocation(ctx context.Context, locationModify entities.LocationModify) (*entities.Location, error) {
	if locationModify.Name == nil &&
		locationModify.PricingEnabled == nil &&
		locationModify.PricingType == nil &&
		locationModify.PerPoundRate == nil &&
		locationModify.IsSuspended == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if locationModify.Name != nil && !isValidName(*locationModify.Name) {
		return nil, ErrInvalidName
	}
	if locationModify.PricingType != nil && !isValidPricingType(locationModify.PricingType.String()) {
		return nil, ErrInvalidPricingType
	}
	if locationModify.PerPoundRate != nil && !isValidRate(*locationModify.PerPoundRate) {
		return nil, ErrInvalidRate
	}

	location, err := s.repository.Update(ctx, locationModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	return location, nil
}

func (s *Location) GetLocation(ctx context.Context, id int64) (*entities.Location, error) {
	location, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	return location, nil
}

func (s *Location) GetLocations(ctx context.Context) ([]entities.Location, error) {
	locations, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get locations: %w", err)
	}

	return locations, nil
}

// DeleteLocation перед удалением пытается снять прощальный снапшот.
// Провал выгрузки логируется и удаление не блокирует.
func (s *Location) DeleteLocation(ctx context.Context, id int64) error {
	if _, err := s.repository.GetByID(ctx, id); err != nil {
		return fmt.Errorf("failed to get location: %w", err)
	}

	if err := s.exporter.ExportForDeletion(ctx, id); err != nil {
		s.log.Warn("deletion snapshot failed, proceeding with delete",
			logger.NewField("location_id", id),
			logger.NewField("error", err),
		)
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}

	return nil
}

func (s *Location) CreateStorageLocation(ctx context.Context, locationID int64, name string) (int64, error) {
	if !isValidName(name) {
		return 0, ErrInvalidName
	}

	id, err := s.repository.CreateStorageLocation(ctx, locationID, name)
	if err != nil {
		return 0, fmt.Errorf("create storage location: %w", err)
	}

	return id, nil
}

func (s *Location) GetStorageLocations(ctx context.Context, locationID int64) ([]entities.StorageLocation, error) {
	storageLocations, err := s.repository.GetStorageLocations(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get storage locations: %w", err)
	}

	return storageLocations, nil
}

// DeleteStorageLocation снимает ссылки с посылок и удаляет ячейку одной
// транзакцией. Сами посылки не трогаются.
func (s *Location) DeleteStorageLocation(ctx context.Context, id int64) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.parcels.ClearStorageRefs(ctx, id); err != nil {
			return fmt.Errorf("clear storage refs: %w", err)
		}

		if err := s.repository.DeleteStorageLocation(ctx, id); err != nil {
			return fmt.Errorf("delete storage location: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete storage location: %w", err)
	}

	return nil
}

func (s *Location) ReplacePricingTiers(ctx context.Context, locationID int64, tiers []entities.PricingTier) error {
	for _, tier := range tiers {
		if !isValidTier(tier) {
			return ErrInvalidTier
		}
	}

	if err := s.repository.ReplacePricingTiers(ctx, locationID, tiers); err != nil {
		return fmt.Errorf("replace pricing tiers: %w", err)
	}

	return nil
}

func (s *Location) GetPricingTiers(ctx context.Context, locationID int64) ([]entities.PricingTier, error) {
	tiers, err := s.repository.GetPricingTiers(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pricing tiers: %w", err)
	}

	return tiers, nil
}
