package location

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPricingType    = errors.New("invalid pricing type")
	ErrInvalidRate           = errors.New("invalid per pound rate")
	ErrInvalidTier           = errors.New("invalid pricing tier")

	ErrLocationNotFound        = errors.New("location not found")
	ErrStorageLocationNotFound = errors.New("storage location not found")
	ErrConflict                = errors.New("resource already exists")
)
