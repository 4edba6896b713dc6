package location

import (
	"strings"

	"github.com/shopspring/decimal"
	"parceltrack/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPricingType(pricingType string) bool {
	switch pricingType {
	case "per_pound", "range_based":
		return true
	default:
		return false
	}
}

func isValidRate(rate decimal.Decimal) bool {
	return !rate.IsNegative()
}

func isValidTier(tier entities.PricingTier) bool {
	if tier.MinWeight.IsNegative() || tier.MaxWeight.IsNegative() || tier.Price.IsNegative() {
		return false
	}
	return !tier.MinWeight.GreaterThan(tier.MaxWeight)
}
