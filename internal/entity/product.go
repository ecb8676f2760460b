package entity

// DefaultPriceElasticity is assumed when a product does not report its own
// price elasticity of demand. Negative: higher price, lower volume.
const DefaultPriceElasticity = -1.5

// Product is the immutable input for one optimization run.
type Product struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	SKU                string    `json:"sku"`
	Category           string    `json:"category"`
	CurrentPrice       float64   `json:"current_price"`
	UnitCost           float64   `json:"unit_cost"`
	FixedCosts         float64   `json:"fixed_costs"`
	VariableCosts      float64   `json:"variable_costs"`
	TariffRate         float64   `json:"tariff_rate"` // percent
	ShippingCost       float64   `json:"shipping_cost"`
	MinimumViablePrice float64   `json:"minimum_viable_price"`
	CompetitorPrices   []float64 `json:"competitor_prices,omitempty"`
	PriceElasticity    *float64  `json:"price_elasticity,omitempty"`
	SalesVolumeCurrent float64   `json:"sales_volume_current"`
	MarketShareCurrent *float64  `json:"market_share_current,omitempty"` // percent, 0-100
}

// Elasticity returns the product's price elasticity, or the default when unset.
func (p *Product) Elasticity() float64 {
	if p.PriceElasticity != nil {
		return *p.PriceElasticity
	}
	return DefaultPriceElasticity
}
