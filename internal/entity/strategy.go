package entity

// Strategy is a fixed pricing posture used to seed candidate price points.
// TargetMargin and MarketShareProjectionFactor are optional; a strategy without
// a target margin bases its candidate on the product's current price.
type Strategy struct {
	Name                        string   `json:"name"`
	PriceAdjustmentFactor       float64  `json:"price_adjustment_factor"`
	TargetMargin                *float64 `json:"target_margin,omitempty"`
	VolumeProjectionFactor      float64  `json:"volume_projection_factor"`
	MarketShareProjectionFactor *float64 `json:"market_share_projection_factor,omitempty"`
}

// DefaultStrategies returns the static catalog of the ten pricing postures.
// The parameters are fixed configuration data, not tunables.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Name: "Cost Plus Pricing", PriceAdjustmentFactor: 1.0, TargetMargin: ptr(25), VolumeProjectionFactor: 1.0},
		{Name: "Value Based Pricing", PriceAdjustmentFactor: 1.15, TargetMargin: ptr(35), VolumeProjectionFactor: 0.95, MarketShareProjectionFactor: ptr(0.98)},
		{Name: "Competitive Match", PriceAdjustmentFactor: 1.0, VolumeProjectionFactor: 1.0, MarketShareProjectionFactor: ptr(1.0)},
		{Name: "Penetration Pricing", PriceAdjustmentFactor: 0.85, TargetMargin: ptr(10), VolumeProjectionFactor: 1.3, MarketShareProjectionFactor: ptr(1.25)},
		{Name: "Premium Pricing", PriceAdjustmentFactor: 1.25, TargetMargin: ptr(45), VolumeProjectionFactor: 0.8, MarketShareProjectionFactor: ptr(0.9)},
		{Name: "Price Skimming", PriceAdjustmentFactor: 1.4, TargetMargin: ptr(50), VolumeProjectionFactor: 0.7, MarketShareProjectionFactor: ptr(0.85)},
		{Name: "Economy Pricing", PriceAdjustmentFactor: 0.9, TargetMargin: ptr(12), VolumeProjectionFactor: 1.2, MarketShareProjectionFactor: ptr(1.1)},
		{Name: "Psychological Pricing", PriceAdjustmentFactor: 0.99, VolumeProjectionFactor: 1.05, MarketShareProjectionFactor: ptr(1.02)},
		{Name: "Bundle Pricing", PriceAdjustmentFactor: 0.92, TargetMargin: ptr(18), VolumeProjectionFactor: 1.15, MarketShareProjectionFactor: ptr(1.08)},
		{Name: "Dynamic Pricing", PriceAdjustmentFactor: 1.05, TargetMargin: ptr(28), VolumeProjectionFactor: 1.0, MarketShareProjectionFactor: ptr(1.0)},
	}
}

func ptr(v float64) *float64 {
	return &v
}
