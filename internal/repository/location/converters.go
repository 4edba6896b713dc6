package location

import (
	"parceltrack/internal/entities"
)

func ToDomain(l *LocationDB) *entities.Location {
	if l == nil {
		return nil
	}

	return &entities.Location{
		ID:             l.ID,
		Name:           l.Name,
		PricingEnabled: l.PricingEnabled,
		PricingType:    entities.PricingType(l.PricingType),
		PerPoundRate:   l.PerPoundRate,
		IsSuspended:    l.IsSuspended,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func FromDomainModify(locationModify *entities.LocationModify) *LocationModifyDB {
	if locationModify == nil {
		return nil
	}
	locationDB := &LocationModifyDB{}

	if locationModify.ID != nil {
		locationDB.ID = locationModify.ID
	}
	if locationModify.Name != nil {
		locationDB.Name = locationModify.Name
	}
	if locationModify.PricingEnabled != nil {
		locationDB.PricingEnabled = locationModify.PricingEnabled
	}
	if locationModify.PricingType != nil {
		pricingType := locationModify.PricingType.String()
		locationDB.PricingType = &pricingType
	}
	if locationModify.PerPoundRate != nil {
		locationDB.PerPoundRate = locationModify.PerPoundRate
	}
	if locationModify.IsSuspended != nil {
		locationDB.IsSuspended = locationModify.IsSuspended
	}

	return locationDB
}

func ToDomainList(locationsDB []LocationDB) []entities.Location {
	if len(locationsDB) == 0 {
		return []entities.Location{}
	}

	result := make([]entities.Location, len(locationsDB))
	for i, locationDB := range locationsDB {
		result[i] = *ToDomain(&locationDB)
	}
	return result
}

func ToStorageLocationDomainList(storageLocationsDB []StorageLocationDB) []entities.StorageLocation {
	if len(storageLocationsDB) == 0 {
		return []entities.StorageLocation{}
	}

	result := make([]entities.StorageLocation, len(storageLocationsDB))
	for i, storageLocationDB := range storageLocationsDB {
		result[i] = entities.StorageLocation{
			ID:         storageLocationDB.ID,
			LocationID: storageLocationDB.LocationID,
			Name:       storageLocationDB.Name,
		}
	}
	return result
}

func ToPricingTierDomainList(tiersDB []PricingTierDB) []entities.PricingTier {
	if len(tiersDB) == 0 {
		return []entities.PricingTier{}
	}

	result := make([]entities.PricingTier, len(tiersDB))
	for i, tierDB := range tiersDB {
		result[i] = entities.PricingTier{
			ID:         tierDB.ID,
			LocationID: tierDB.LocationID,
			MinWeight:  tierDB.MinWeight,
			MaxWeight:  tierDB.MaxWeight,
			Price:      tierDB.Price,
		}
	}
	return result
}
