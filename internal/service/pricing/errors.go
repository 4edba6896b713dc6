package pricing

import "errors"

var (
	ErrInvalidWeight      = errors.New("invalid weight")
	ErrInvalidRate        = errors.New("invalid per pound rate")
	ErrInvalidTier        = errors.New("invalid pricing tier")
	ErrInvalidPricingType = errors.New("invalid pricing type")
)
