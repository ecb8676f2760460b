package pricing

import "math"

// VolumeProjection applies a constant-elasticity demand model: the percentage
// change in volume is the elasticity times the percentage change in price.
// The adjustment factor layers a strategy's volume expectation on top (1 for
// no adjustment). Projections never go negative.
func VolumeProjection(currentVolume, currentPrice, newPrice, elasticity, adjustmentFactor float64) float64 {
	priceChange := (newPrice - currentPrice) / currentPrice
	projected := currentVolume * (1 + elasticity*priceChange) * adjustmentFactor
	return math.Max(0, projected)
}
