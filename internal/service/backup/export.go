package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"parceltrack/internal/entities"
	"parceltrack/internal/service/pricing"
)

// buildExport собирает точку во времени: конфиг локации, ячейки, тарифы и
// живые посылки с посчитанной стоимостью. Архив намеренно не выгружается.
func (m *Manager) buildExport(ctx context.Context, location *entities.Location) ([]byte, error) {
	storageLocations, err := m.locations.GetStorageLocations(ctx, location.ID)
	if err != nil {
		return nil, fmt.Errorf("get storage locations: %w", err)
	}

	tiers, err := m.locations.GetPricingTiers(ctx, location.ID)
	if err != nil {
		return nil, fmt.Errorf("get pricing tiers: %w", err)
	}

	parcels, err := m.parcels.GetByLocation(ctx, location.ID)
	if err != nil {
		return nil, fmt.Errorf("get parcels: %w", err)
	}

	export := entities.LocationExport{
		ExportedAt: time.Now().UTC(),
		Location:   toLocationInfo(location),
	}

	export.StorageLocations = make([]entities.StorageLocationExport, 0, len(storageLocations))
	storageNames := make(map[int64]string, len(storageLocations))
	for _, sl := range storageLocations {
		export.StorageLocations = append(export.StorageLocations, entities.StorageLocationExport{Name: sl.Name})
		storageNames[sl.ID] = sl.Name
	}

	export.PricingTiers = make([]entities.PricingTierExport, 0, len(tiers))
	for _, tier := range tiers {
		export.PricingTiers = append(export.PricingTiers, entities.PricingTierExport{
			MinWeight: tier.MinWeight.String(),
			MaxWeight: tier.MaxWeight.String(),
			Price:     tier.Price.String(),
		})
	}

	cfg := pricing.ConfigFromLocation(location)
	export.Parcels = make([]entities.ParcelExport, 0, len(parcels))
	for _, p := range parcels {
		cost, err := pricing.Cost(p.Weight, cfg, tiers)
		if err != nil {
			return nil, fmt.Errorf("cost for parcel %d: %w", p.ID, err)
		}

		var storageName *string
		if p.StorageLocationID != nil {
			if name, ok := storageNames[*p.StorageLocationID]; ok {
				storageName = &name
			}
		}

		export.Parcels = append(export.Parcels, entities.ParcelExport{
			TrackingNumber:  p.TrackingNumber,
			RecipientName:   p.RecipientName,
			Weight:          p.Weight.String(),
			StorageLocation: storageName,
			Notes:           p.Notes,
			Status:          p.Status.String(),
			PickedUpBy:      p.PickedUpBy,
			DeliveredAt:     p.DeliveredAt,
			Cost:            cost.String(),
			CreatedAt:       p.CreatedAt,
		})
	}

	payload, err := json.Marshal(export)
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}

	return payload, nil
}

func toLocationInfo(location *entities.Location) entities.LocationExportInfo {
	info := entities.LocationExportInfo{
		Name:           location.Name,
		PricingEnabled: location.PricingEnabled,
		PricingType:    location.PricingType.String(),
		IsSuspended:    location.IsSuspended,
	}
	if location.PerPoundRate != nil {
		rate := location.PerPoundRate.String()
		info.PerPoundRate = &rate
	}
	return info
}
