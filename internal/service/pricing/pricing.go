package pricing

import (
	"sort"

	"github.com/shopspring/decimal"
	"parceltrack/internal/entities"
)

// Config срез тарифных настроек локации, достаточный для расчета.
type Config struct {
	PricingEnabled bool
	PricingType    entities.PricingType
	PerPoundRate   *decimal.Decimal
}

func ConfigFromLocation(loc *entities.Location) Config {
	return Config{
		PricingEnabled: loc.PricingEnabled,
		PricingType:    loc.PricingType,
		PerPoundRate:   loc.PerPoundRate,
	}
}

// Cost считает стоимость хранения посылки. Чистая функция: результат
// зависит только от аргументов.
//
// range_based: диапазоны просматриваются в переданном порядке (порядок
// вставки, не сортированный), берется цена первого подошедшего, границы
// включительно. Если ни один не подошел — диапазон с наибольшим MaxWeight
// работает как открытый сверху "переполненный" тариф. Вес ниже всех
// минимумов дает 0 — так ведет себя исходная тарифная политика.
func Cost(weight decimal.Decimal, cfg Config, tiers []entities.PricingTier) (decimal.Decimal, error) {
	if !weight.IsPositive() {
		return decimal.Zero, ErrInvalidWeight
	}

	if !cfg.PricingEnabled {
		return decimal.Zero, nil
	}

	switch cfg.PricingType {
	case entities.PricingPerPound:
		if cfg.PerPoundRate == nil {
			return decimal.Zero, nil
		}
		if cfg.PerPoundRate.IsNegative() {
			return decimal.Zero, ErrInvalidRate
		}
		return weight.Mul(*cfg.PerPoundRate), nil

	case entities.PricingRangeBased:
		return rangeBasedCost(weight, tiers)

	default:
		return decimal.Zero, ErrInvalidPricingType
	}
}

func rangeBasedCost(weight decimal.Decimal, tiers []entities.PricingTier) (decimal.Decimal, error) {
	for _, tier := range tiers {
		if !isValidTier(tier) {
			return decimal.Zero, ErrInvalidTier
		}
	}

	for _, tier := range tiers {
		if weight.GreaterThanOrEqual(tier.MinWeight) && weight.LessThanOrEqual(tier.MaxWeight) {
			return tier.Price, nil
		}
	}

	if len(tiers) == 0 {
		return decimal.Zero, nil
	}

	sorted := make([]entities.PricingTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MaxWeight.GreaterThan(sorted[j].MaxWeight)
	})

	overflow := sorted[0]
	if weight.GreaterThan(overflow.MaxWeight) {
		return overflow.Price, nil
	}

	return decimal.Zero, nil
}

func isValidTier(tier entities.PricingTier) bool {
	if tier.MinWeight.IsNegative() || tier.Price.IsNegative() {
		return false
	}
	return !tier.MaxWeight.LessThan(tier.MinWeight)
}
