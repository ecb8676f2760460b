package entity

import (
	"fmt"
	"time"
)

// DefaultTargetMargin is applied when a request omits its target margin.
const DefaultTargetMargin = 20.0

// Risk levels for a scenario's risk assessment.
const (
	RiskLevelLow    = "low"
	RiskLevelMedium = "medium"
	RiskLevelHigh   = "high"
)

// Relative positions against the competitor average.
const (
	PositionHigher  = "higher"
	PositionLower   = "lower"
	PositionSimilar = "similar"
)

// PriceRange optionally overrides the evaluation window for price points.
// Step defaults to 1 when zero.
type PriceRange struct {
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Step float64  `json:"step,omitempty"`
}

// AdjustedCosts is a product's cost structure after applying one scenario.
// Derived per scenario, never persisted on its own.
type AdjustedCosts struct {
	UnitCost      float64 `json:"unit_cost"`
	TariffRate    float64 `json:"tariff_rate"`
	TariffCost    float64 `json:"tariff_cost"`
	ShippingCost  float64 `json:"shipping_cost"`
	TotalUnitCost float64 `json:"total_unit_cost"`
	FixedCosts    float64 `json:"fixed_costs"`
	VariableCosts float64 `json:"variable_costs"`
}

// PricePoint is one evaluated price candidate within a scenario.
type PricePoint struct {
	Price                 float64  `json:"price"`
	MarginPercentage      float64  `json:"margin_percentage"`
	Profit                float64  `json:"profit"`
	Revenue               float64  `json:"revenue"`
	VolumeProjection      float64  `json:"volume_projection"`
	MarketShareProjection *float64 `json:"market_share_projection,omitempty"`
	PriceChangePercentage float64  `json:"price_change_percentage"`
	IsRecommended         bool     `json:"is_recommended"`
}

// CompetitorComparison relates the optimal price to the competitor average.
type CompetitorComparison struct {
	AverageCompetitorPrice    float64 `json:"average_competitor_price"`
	PriceDifferencePercentage float64 `json:"price_difference_percentage"`
	RelativePosition          string  `json:"relative_position"`
}

// RiskAssessment accumulates risk factors for one scenario. The level only
// escalates (low -> medium -> high) while a scenario is evaluated.
type RiskAssessment struct {
	Level   string   `json:"level"`
	Factors []string `json:"factors"`
}

// ScenarioResult is the full evaluation of one scenario: every price point
// sorted by descending profit, plus the derived optimum and risk view.
type ScenarioResult struct {
	ScenarioName         string                `json:"scenario_name"`
	BaseCosts            AdjustedCosts         `json:"base_costs"`
	PricePoints          []PricePoint          `json:"price_points"`
	OptimalPrice         float64               `json:"optimal_price"`
	OptimalMargin        float64               `json:"optimal_margin"`
	BreakEvenPrice       float64               `json:"break_even_price"`
	CompetitorComparison *CompetitorComparison `json:"competitor_comparison,omitempty"`
	RiskAssessment       RiskAssessment        `json:"risk_assessment"`
}

// Recommendation is the cross-scenario synthesis of the optimization run.
type Recommendation struct {
	OptimalStrategy string   `json:"optimal_strategy"`
	PriceSuggestion float64  `json:"price_suggestion"`
	ExpectedMargin  float64  `json:"expected_margin"`
	ExpectedProfit  float64  `json:"expected_profit"`
	ExpectedRevenue float64  `json:"expected_revenue"`
	KeyInsights     []string `json:"key_insights"`
}

// SensitivityAnalysis holds parallel arrays over a price sweep for charting.
type SensitivityAnalysis struct {
	Prices       []float64 `json:"prices"`
	MarginImpact []float64 `json:"margin_impact"`
	VolumeImpact []float64 `json:"volume_impact"`
	ProfitImpact []float64 `json:"profit_impact"`
}

// OptimizationResult is the complete output of one optimization run. It is
// persisted as a cache entry keyed by product id and reused within 24 hours.
type OptimizationResult struct {
	ID                  string              `json:"id"`
	Product             Product             `json:"product"`
	TargetMargin        float64             `json:"target_margin"`
	Scenarios           []ScenarioResult    `json:"scenarios"`
	Recommendations     Recommendation      `json:"recommendations"`
	SensitivityAnalysis SensitivityAnalysis `json:"sensitivity_analysis"`
	CreatedAt           time.Time           `json:"created_at"`
}

// OptimizeRequest is the inbound contract for one optimization run.
type OptimizeRequest struct {
	Product      Product     `json:"product"`
	TargetMargin *float64    `json:"target_margin,omitempty"`
	Scenarios    []Scenario  `json:"scenarios"`
	PriceRange   *PriceRange `json:"price_range,omitempty"`
	Strategies   []string    `json:"strategies,omitempty"`
}

// ResolvedTargetMargin returns the requested target margin or the default.
func (r *OptimizeRequest) ResolvedTargetMargin() float64 {
	if r.TargetMargin != nil {
		return *r.TargetMargin
	}
	return DefaultTargetMargin
}

// Validate enforces the boundary contract. The engine itself assumes
// pre-validated input, so every range check lives here.
func (r *OptimizeRequest) Validate() error {
	if r.Product.ID == "" {
		return fmt.Errorf("product id is required")
	}
	if r.Product.CurrentPrice <= 0 {
		return fmt.Errorf("product current_price must be positive")
	}
	if r.Product.SalesVolumeCurrent <= 0 {
		return fmt.Errorf("product sales_volume_current must be positive")
	}
	for name, v := range map[string]float64{
		"unit_cost":            r.Product.UnitCost,
		"fixed_costs":          r.Product.FixedCosts,
		"variable_costs":       r.Product.VariableCosts,
		"tariff_rate":          r.Product.TariffRate,
		"shipping_cost":        r.Product.ShippingCost,
		"minimum_viable_price": r.Product.MinimumViablePrice,
	} {
		if v < 0 {
			return fmt.Errorf("product %s must not be negative", name)
		}
	}
	for _, cp := range r.Product.CompetitorPrices {
		if cp < 0 {
			return fmt.Errorf("competitor prices must not be negative")
		}
	}
	if r.Product.MarketShareCurrent != nil {
		if s := *r.Product.MarketShareCurrent; s < 0 || s > 100 {
			return fmt.Errorf("market_share_current must be between 0 and 100")
		}
	}
	if r.TargetMargin != nil {
		if m := *r.TargetMargin; m < 0 || m >= 100 {
			return fmt.Errorf("target_margin must be in [0, 100)")
		}
	}
	if len(r.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario is required")
	}
	seen := make(map[string]bool, len(r.Scenarios))
	for _, sc := range r.Scenarios {
		if sc.Name == "" {
			return fmt.Errorf("scenario name is required")
		}
		if seen[sc.Name] {
			return fmt.Errorf("scenario name %q is duplicated", sc.Name)
		}
		seen[sc.Name] = true
	}
	if r.PriceRange != nil {
		if r.PriceRange.Step < 0 {
			return fmt.Errorf("price_range step must be positive")
		}
		if r.PriceRange.Min != nil && *r.PriceRange.Min <= 0 {
			return fmt.Errorf("price_range min must be positive")
		}
		if r.PriceRange.Min != nil && r.PriceRange.Max != nil && *r.PriceRange.Min > *r.PriceRange.Max {
			return fmt.Errorf("price_range min must not exceed max")
		}
	}
	return nil
}
