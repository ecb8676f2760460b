package pricing

import (
	"trade-navigator-service/internal/entity"
)

// breakEvenAmortizationUnits is the assumed volume over which fixed costs are
// spread for the break-even price. It is a fixed simplification, independent
// of the product's actual sales volume.
const breakEvenAmortizationUnits = 100

// AdjustCosts applies one scenario's perturbations to a product's base costs.
// Material and shipping changes are percentages, the tariff increase is in
// additive percentage points, and the currency fluctuation scales every cost
// component uniformly. Absent fields have no effect.
func AdjustCosts(p *entity.Product, s *entity.Scenario) entity.AdjustedCosts {
	unitCost := p.UnitCost * (1 + pct(s.MaterialCostChange)/100)
	tariffRate := p.TariffRate + pct(s.TariffIncrease)
	tariffCost := unitCost * tariffRate / 100
	shippingCost := p.ShippingCost * (1 + pct(s.ShippingCostChange)/100)
	totalUnitCost := unitCost + tariffCost + shippingCost

	currency := 1 + pct(s.CurrencyFluctuation)/100
	return entity.AdjustedCosts{
		UnitCost:      unitCost * currency,
		TariffRate:    tariffRate,
		TariffCost:    tariffCost * currency,
		ShippingCost:  shippingCost * currency,
		TotalUnitCost: totalUnitCost * currency,
		FixedCosts:    p.FixedCosts * currency,
		VariableCosts: p.VariableCosts * currency,
	}
}

// BreakEvenPrice is the price at which projected profit is zero under the
// fixed-volume amortization of fixed costs.
func BreakEvenPrice(costs entity.AdjustedCosts) float64 {
	return costs.TotalUnitCost + costs.VariableCosts + costs.FixedCosts/breakEvenAmortizationUnits
}

// MarginAt returns the margin percentage at a price. A zero price yields a
// zero margin rather than dividing by zero; price points at zero are never
// generated in the first place.
func MarginAt(price float64, costs entity.AdjustedCosts) float64 {
	if price == 0 {
		return 0
	}
	return (price - (costs.TotalUnitCost + costs.VariableCosts)) / price * 100
}

// PriceForMargin inverts MarginAt: the price that yields the target margin
// percentage. Targets at or above 100% have no finite solution; the zero
// fallback falls outside every valid price window and is discarded there.
func PriceForMargin(costs entity.AdjustedCosts, targetMargin float64) float64 {
	if targetMargin >= 100 {
		return 0
	}
	return (costs.TotalUnitCost + costs.VariableCosts) / (1 - targetMargin/100)
}

// ProfitAt projects total profit at a price: per-unit contribution times the
// projected volume, less fixed costs.
func ProfitAt(price float64, costs entity.AdjustedCosts, volume float64) float64 {
	return (price-(costs.TotalUnitCost+costs.VariableCosts))*volume - costs.FixedCosts
}

func pct(v *float64) float64 {
	if v != nil {
		return *v
	}
	return 0
}
