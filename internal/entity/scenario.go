package entity

// Scenario is a named set of percentage perturbations applied to a product's
// base costs for one what-if analysis. Scenarios are evaluated independently,
// never combined. All adjustments are optional; an absent field has no effect.
type Scenario struct {
	Name string `json:"name"`
	// TariffIncrease is in percentage points, added to the product's tariff rate.
	TariffIncrease     *float64 `json:"tariff_increase,omitempty"`
	MaterialCostChange *float64 `json:"material_cost_change,omitempty"` // percent
	ShippingCostChange *float64 `json:"shipping_cost_change,omitempty"` // percent
	// CompetitorPriceChange is accepted but not consumed by the cost math.
	CompetitorPriceChange *float64 `json:"competitor_price_change,omitempty"`
	CurrencyFluctuation   *float64 `json:"currency_fluctuation,omitempty"` // percent
	// DemandChange and MarketingSpendChange are accepted but not consumed.
	DemandChange         *float64 `json:"demand_change,omitempty"`
	MarketingSpendChange *float64 `json:"marketing_spend_change,omitempty"`
}
