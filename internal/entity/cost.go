package entity

import "fmt"

// CostInput is the landed-cost calculator form: three cost components
// summed into a total.
type CostInput struct {
	ProductCost  float64 `json:"product_cost"`
	ShippingCost float64 `json:"shipping_cost"`
	CustomsDuty  float64 `json:"customs_duty"`
}

// Validate rejects negative components.
func (c *CostInput) Validate() error {
	if c.ProductCost < 0 || c.ShippingCost < 0 || c.CustomsDuty < 0 {
		return fmt.Errorf("cost components must not be negative")
	}
	return nil
}

// CostBreakdown echoes the inputs back with their total landed cost.
type CostBreakdown struct {
	ProductCost     float64 `json:"product_cost"`
	ShippingCost    float64 `json:"shipping_cost"`
	CustomsDuty     float64 `json:"customs_duty"`
	TotalLandedCost float64 `json:"total_landed_cost"`
}

// Breakdown computes the three-field sum.
func (c *CostInput) Breakdown() CostBreakdown {
	return CostBreakdown{
		ProductCost:     c.ProductCost,
		ShippingCost:    c.ShippingCost,
		CustomsDuty:     c.CustomsDuty,
		TotalLandedCost: c.ProductCost + c.ShippingCost + c.CustomsDuty,
	}
}
