package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trade-navigator-service/internal/entity"
)

// testProduct is the shared fixture: total unit cost 25 (20 unit + 1 tariff +
// 4 shipping), so the contribution floor is 28 with variable costs included
// and the break-even price is 30.
func testProduct() *entity.Product {
	return &entity.Product{
		ID:                 "sku-001",
		Name:               "Widget",
		CurrentPrice:       50,
		UnitCost:           20,
		FixedCosts:         200,
		VariableCosts:      3,
		TariffRate:         5,
		ShippingCost:       4,
		MinimumViablePrice: 25,
		SalesVolumeCurrent: 100,
	}
}

func ptr(v float64) *float64 {
	return &v
}

func TestAdjustCosts_NoScenarioChanges(t *testing.T) {
	costs := AdjustCosts(testProduct(), &entity.Scenario{Name: "baseline"})

	assert.InDelta(t, 20, costs.UnitCost, 1e-9)
	assert.InDelta(t, 5, costs.TariffRate, 1e-9)
	assert.InDelta(t, 1, costs.TariffCost, 1e-9)
	assert.InDelta(t, 4, costs.ShippingCost, 1e-9)
	assert.InDelta(t, 25, costs.TotalUnitCost, 1e-9)
	assert.InDelta(t, 200, costs.FixedCosts, 1e-9)
	assert.InDelta(t, 3, costs.VariableCosts, 1e-9)
}

func TestAdjustCosts_AppliesEachAdjustment(t *testing.T) {
	sc := &entity.Scenario{
		Name:               "supply shock",
		TariffIncrease:     ptr(5),
		MaterialCostChange: ptr(10),
		ShippingCostChange: ptr(25),
	}
	costs := AdjustCosts(testProduct(), sc)

	assert.InDelta(t, 22, costs.UnitCost, 1e-9)
	assert.InDelta(t, 10, costs.TariffRate, 1e-9)
	assert.InDelta(t, 2.2, costs.TariffCost, 1e-9)
	assert.InDelta(t, 5, costs.ShippingCost, 1e-9)
	assert.InDelta(t, 29.2, costs.TotalUnitCost, 1e-9)
}

func TestAdjustCosts_CurrencyScalesUniformly(t *testing.T) {
	base := AdjustCosts(testProduct(), &entity.Scenario{Name: "baseline"})
	shocked := AdjustCosts(testProduct(), &entity.Scenario{Name: "fx", CurrencyFluctuation: ptr(2)})

	assert.InDelta(t, base.UnitCost*1.02, shocked.UnitCost, 1e-9)
	assert.InDelta(t, base.TariffCost*1.02, shocked.TariffCost, 1e-9)
	assert.InDelta(t, base.ShippingCost*1.02, shocked.ShippingCost, 1e-9)
	assert.InDelta(t, base.TotalUnitCost*1.02, shocked.TotalUnitCost, 1e-9)
	assert.InDelta(t, base.FixedCosts*1.02, shocked.FixedCosts, 1e-9)
	assert.InDelta(t, base.VariableCosts*1.02, shocked.VariableCosts, 1e-9)
	assert.InDelta(t, base.TariffRate, shocked.TariffRate, 1e-9)
}

func TestBreakEvenPrice(t *testing.T) {
	costs := AdjustCosts(testProduct(), &entity.Scenario{Name: "baseline"})
	assert.InDelta(t, 30, BreakEvenPrice(costs), 1e-9)
}

func TestAdjustCosts_ImportHeavyProduct(t *testing.T) {
	product := &entity.Product{
		ID:                 "sku-import",
		CurrentPrice:       100,
		UnitCost:           40,
		FixedCosts:         1000,
		VariableCosts:      5,
		TariffRate:         5,
		ShippingCost:       10,
		MinimumViablePrice: 50,
		SalesVolumeCurrent: 1000,
	}

	baseline := AdjustCosts(product, &entity.Scenario{Name: "baseline"})
	assert.InDelta(t, 52, baseline.TotalUnitCost, 1e-9)
	assert.InDelta(t, 67, BreakEvenPrice(baseline), 1e-9)
	assert.InDelta(t, 43, MarginAt(100, baseline), 1e-9)

	shocked := AdjustCosts(product, &entity.Scenario{Name: "trade war", TariffIncrease: ptr(10)})
	assert.InDelta(t, 15, shocked.TariffRate, 1e-9)
	assert.InDelta(t, 6, shocked.TariffCost, 1e-9)
	assert.InDelta(t, 56, shocked.TotalUnitCost, 1e-9)
	assert.Greater(t, shocked.TotalUnitCost, baseline.TotalUnitCost)
}

func TestProfitAt_ZeroAtBreakEven(t *testing.T) {
	costs := AdjustCosts(testProduct(), &entity.Scenario{Name: "baseline"})
	breakEven := BreakEvenPrice(costs)
	assert.InDelta(t, 0, ProfitAt(breakEven, costs, 100), 1e-9)
}

func TestMarginAt(t *testing.T) {
	costs := AdjustCosts(testProduct(), &entity.Scenario{Name: "baseline"})

	assert.InDelta(t, 44, MarginAt(50, costs), 1e-9)
	assert.Zero(t, MarginAt(0, costs))
}

func TestPriceForMargin_RoundTrips(t *testing.T) {
	costs := AdjustCosts(testProduct(), &entity.Scenario{Name: "baseline"})

	for _, target := range []float64{0, 10, 25, 45, 60, 99} {
		price := PriceForMargin(costs, target)
		assert.InDelta(t, target, MarginAt(price, costs), 1e-9, "target %v", target)
	}
}

func TestPriceForMargin_UnreachableTargets(t *testing.T) {
	costs := AdjustCosts(testProduct(), &entity.Scenario{Name: "baseline"})

	assert.Zero(t, PriceForMargin(costs, 100))
	assert.Zero(t, PriceForMargin(costs, 120))
}

func TestVolumeProjection(t *testing.T) {
	t.Run("unchanged price keeps current volume", func(t *testing.T) {
		assert.InDelta(t, 100, VolumeProjection(100, 50, 50, -1.5, 1), 1e-9)
	})

	t.Run("price increase shrinks volume by elasticity", func(t *testing.T) {
		assert.InDelta(t, 85, VolumeProjection(100, 50, 55, -1.5, 1), 1e-9)
	})

	t.Run("projection floors at zero", func(t *testing.T) {
		assert.Zero(t, VolumeProjection(100, 50, 100, -1.5, 1))
	})

	t.Run("adjustment factor scales the projection", func(t *testing.T) {
		assert.InDelta(t, 110.5, VolumeProjection(100, 50, 55, -1.5, 1.3), 1e-9)
	})
}
