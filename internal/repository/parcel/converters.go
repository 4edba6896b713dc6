package parcel

import (
	"parceltrack/internal/entities"
)

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}

	return &entities.Parcel{
		ID:                p.ID,
		LocationID:        p.LocationID,
		TrackingNumber:    p.TrackingNumber,
		RecipientName:     p.RecipientName,
		Weight:            p.Weight,
		StorageLocationID: p.StorageLocationID,
		Notes:             p.Notes,
		Status:            entities.ParcelStatus(p.Status),
		PickedUpBy:        p.PickedUpBy,
		DeliveredAt:       p.DeliveredAt,
		CreatedAt:         p.CreatedAt,
	}
}

func FromDomainModify(parcelModify *entities.ParcelModify) *ParcelModifyDB {
	if parcelModify == nil {
		return nil
	}
	parcelDB := &ParcelModifyDB{}

	if parcelModify.ID != nil {
		parcelDB.ID = parcelModify.ID
	}
	if parcelModify.LocationID != nil {
		parcelDB.LocationID = parcelModify.LocationID
	}
	if parcelModify.TrackingNumber != nil {
		parcelDB.TrackingNumber = parcelModify.TrackingNumber
	}
	if parcelModify.RecipientName != nil {
		parcelDB.RecipientName = parcelModify.RecipientName
	}
	if parcelModify.Weight != nil {
		parcelDB.Weight = parcelModify.Weight
	}
	if parcelModify.StorageLocationID != nil {
		parcelDB.StorageLocationID = parcelModify.StorageLocationID
	}
	if parcelModify.Notes != nil {
		parcelDB.Notes = parcelModify.Notes
	}
	if parcelModify.Status != nil {
		status := parcelModify.Status.String()
		parcelDB.Status = &status
	}
	if parcelModify.PickedUpBy != nil {
		parcelDB.PickedUpBy = parcelModify.PickedUpBy
	}

	return parcelDB
}

func ToDomainList(parcelsDB []ParcelDB) []entities.Parcel {
	if len(parcelsDB) == 0 {
		return []entities.Parcel{}
	}

	result := make([]entities.Parcel, len(parcelsDB))
	for i, parcelDB := range parcelsDB {
		result[i] = *ToDomain(&parcelDB)
	}
	return result
}
