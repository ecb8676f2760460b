package pricing

import "trade-navigator-service/internal/entity"

const (
	// sensitivityPoints is the number of evenly spaced prices in the sweep,
	// spanning ±30% around the current price inclusive of both ends.
	sensitivityPoints = 11
	sensitivitySpread = 0.3
)

// AnalyzeSensitivity sweeps prices around the current price and records the
// margin, volume and profit impact at each step. The sweep always uses the
// product's unadjusted base costs; scenarios and strategies play no part.
func AnalyzeSensitivity(p *entity.Product) entity.SensitivityAnalysis {
	base := AdjustCosts(p, &entity.Scenario{})
	lower := p.CurrentPrice * (1 - sensitivitySpread)
	upper := p.CurrentPrice * (1 + sensitivitySpread)
	step := (upper - lower) / float64(sensitivityPoints-1)

	sa := entity.SensitivityAnalysis{
		Prices:       make([]float64, 0, sensitivityPoints),
		MarginImpact: make([]float64, 0, sensitivityPoints),
		VolumeImpact: make([]float64, 0, sensitivityPoints),
		ProfitImpact: make([]float64, 0, sensitivityPoints),
	}
	for i := 0; i < sensitivityPoints; i++ {
		price := lower + step*float64(i)
		volume := VolumeProjection(p.SalesVolumeCurrent, p.CurrentPrice, price, p.Elasticity(), 1)
		sa.Prices = append(sa.Prices, price)
		sa.MarginImpact = append(sa.MarginImpact, MarginAt(price, base))
		sa.VolumeImpact = append(sa.VolumeImpact, volume)
		sa.ProfitImpact = append(sa.ProfitImpact, ProfitAt(price, base, volume))
	}
	return sa
}
