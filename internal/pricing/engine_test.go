package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-navigator-service/internal/entity"
)

func TestEngine_Optimize(t *testing.T) {
	engine := NewEngine()
	p := testProduct()
	p.CompetitorPrices = []float64{48, 52}
	req := &entity.OptimizeRequest{
		Product: *p,
		Scenarios: []entity.Scenario{
			{Name: "baseline"},
			{Name: "tariff shock", TariffIncrease: ptr(10)},
		},
	}

	result := engine.Optimize(req)

	assert.NotEmpty(t, result.ID)
	assert.False(t, result.CreatedAt.IsZero())
	assert.InDelta(t, entity.DefaultTargetMargin, result.TargetMargin, 1e-9)

	require.Len(t, result.Scenarios, 2)
	assert.Equal(t, "baseline", result.Scenarios[0].ScenarioName)
	assert.Equal(t, "tariff shock", result.Scenarios[1].ScenarioName)

	baseline := result.Scenarios[0]
	assert.InDelta(t, 30, baseline.BreakEvenPrice, 1e-9)
	assert.InDelta(t, 56, baseline.OptimalPrice, 1e-9)

	// The extra tariff raises the contribution floor to 30, pushing the
	// break-even and the profit-optimal price upward.
	shocked := result.Scenarios[1]
	assert.InDelta(t, 32, shocked.BreakEvenPrice, 1e-9)
	assert.InDelta(t, 57, shocked.OptimalPrice, 1e-9)
	assert.Less(t, shocked.PricePoints[0].Profit, baseline.PricePoints[0].Profit)

	assert.Equal(t, "Premium Positioning", result.Recommendations.OptimalStrategy)
	assert.InDelta(t, 56, result.Recommendations.PriceSuggestion, 1e-9)
	assert.NotEmpty(t, result.Recommendations.KeyInsights)

	require.Len(t, result.SensitivityAnalysis.Prices, 11)
}

func TestEngine_Optimize_CustomTargetMargin(t *testing.T) {
	engine := NewEngine()
	req := &entity.OptimizeRequest{
		Product:      *testProduct(),
		TargetMargin: ptr(35),
		Scenarios:    []entity.Scenario{{Name: "baseline"}},
	}

	result := engine.Optimize(req)
	assert.InDelta(t, 35, result.TargetMargin, 1e-9)
}

func TestEngine_Optimize_NoScenariosFallsBackToCurrentPrice(t *testing.T) {
	engine := NewEngine()
	req := &entity.OptimizeRequest{Product: *testProduct()}

	result := engine.Optimize(req)

	assert.Empty(t, result.Scenarios)
	assert.Equal(t, "Maintain current pricing", result.Recommendations.OptimalStrategy)
	assert.InDelta(t, 50, result.Recommendations.PriceSuggestion, 1e-9)
	assert.Zero(t, result.Recommendations.ExpectedProfit)
	require.Len(t, result.SensitivityAnalysis.Prices, 11)
}

func TestEngine_Optimize_RestrictsStrategies(t *testing.T) {
	engine := NewEngine()
	req := &entity.OptimizeRequest{
		Product:    *testProduct(),
		Scenarios:  []entity.Scenario{{Name: "baseline"}},
		Strategies: []string{"competitive match"},
	}

	result := engine.Optimize(req)

	require.Len(t, result.Scenarios, 1)
	// 46 grid prices, the one at 50 replaced by the single strategy seed.
	assert.Len(t, result.Scenarios[0].PricePoints, 46)
}

func TestRestrictStrategies(t *testing.T) {
	catalog := entity.DefaultStrategies()

	t.Run("matches names case-insensitively in catalog order", func(t *testing.T) {
		selected := restrictStrategies(catalog, []string{"premium pricing", "Economy Pricing"})
		require.Len(t, selected, 2)
		assert.Equal(t, "Premium Pricing", selected[0].Name)
		assert.Equal(t, "Economy Pricing", selected[1].Name)
	})

	t.Run("ignores unknown names", func(t *testing.T) {
		assert.Empty(t, restrictStrategies(catalog, []string{"Clearance Blowout"}))
	})
}
