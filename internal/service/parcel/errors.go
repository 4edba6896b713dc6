package parcel

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidTrackingNumber = errors.New("invalid tracking number")
	ErrInvalidRecipientName  = errors.New("invalid recipient name")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidMonths         = errors.New("invalid months threshold")
	ErrEmptyBulkChanges      = errors.New("no bulk fields to update")
	ErrEmptyBulkIDs          = errors.New("no parcel ids supplied")

	ErrParcelNotFound = errors.New("parcel not found")
	// чужая ячейка хранения: storage_location_id принадлежит другой локации
	ErrStorageLocationMismatch = errors.New("storage location belongs to another location")
)
