package pricing

import (
	"math"
	"sort"

	"trade-navigator-service/internal/entity"
)

const (
	// defaultWindowCeiling caps the evaluated price window at 1.5x the
	// current price unless the caller overrides it.
	defaultWindowCeiling = 1.5
	defaultPriceStep     = 1.0
	// duplicateTolerance keeps grid prices from duplicating a
	// strategy-seeded price point.
	duplicateTolerance = 0.01
	// recommendedMarginBand marks a price point as recommended when its
	// margin lands within this many points of the target.
	recommendedMarginBand = 5.0
	// stepEpsilon absorbs float drift so the window's upper bound stays
	// inclusive.
	stepEpsilon = 1e-9
)

// evaluateScenario runs the full evaluation for one scenario: adjusted costs,
// break-even, strategy-seeded and grid price points, profit ordering,
// competitor comparison and risk assessment.
func evaluateScenario(p *entity.Product, sc *entity.Scenario, targetMargin float64, pr *entity.PriceRange, strategies []entity.Strategy) entity.ScenarioResult {
	costs := AdjustCosts(p, sc)
	breakEven := BreakEvenPrice(costs)
	minPrice, maxPrice, step := priceWindow(p, breakEven, pr)

	var points []entity.PricePoint
	var seeded []float64
	for i := range strategies {
		st := &strategies[i]
		base := p.CurrentPrice
		if st.TargetMargin != nil {
			base = PriceForMargin(costs, *st.TargetMargin)
		}
		candidate := base * st.PriceAdjustmentFactor
		if candidate <= 0 || candidate < minPrice || candidate > maxPrice {
			continue
		}
		points = append(points, buildPricePoint(p, costs, candidate, targetMargin, st))
		seeded = append(seeded, candidate)
	}

	for price := minPrice; price <= maxPrice+stepEpsilon; price += step {
		if price <= 0 || nearSeeded(seeded, price) {
			continue
		}
		points = append(points, buildPricePoint(p, costs, price, targetMargin, nil))
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Profit > points[j].Profit
	})

	optimalPrice, optimalMargin := p.CurrentPrice, 0.0
	if len(points) > 0 {
		optimalPrice = points[0].Price
		optimalMargin = points[0].MarginPercentage
	}

	comparison := compareCompetitors(p, optimalPrice)
	return entity.ScenarioResult{
		ScenarioName:         sc.Name,
		BaseCosts:            costs,
		PricePoints:          points,
		OptimalPrice:         optimalPrice,
		OptimalMargin:        optimalMargin,
		BreakEvenPrice:       breakEven,
		CompetitorComparison: comparison,
		RiskAssessment:       assessRisk(p, optimalPrice, optimalMargin, breakEven, comparison),
	}
}

// priceWindow resolves the evaluation window: never below break-even or the
// minimum viable price unless the caller explicitly overrides the bounds.
func priceWindow(p *entity.Product, breakEven float64, pr *entity.PriceRange) (minPrice, maxPrice, step float64) {
	minPrice = math.Max(breakEven, p.MinimumViablePrice)
	maxPrice = p.CurrentPrice * defaultWindowCeiling
	step = defaultPriceStep
	if pr == nil {
		return minPrice, maxPrice, step
	}
	if pr.Min != nil {
		minPrice = *pr.Min
	}
	if pr.Max != nil {
		maxPrice = *pr.Max
	}
	if pr.Step > 0 {
		step = pr.Step
	}
	return minPrice, maxPrice, step
}

// buildPricePoint evaluates every metric for one candidate price. A nil
// strategy produces a generic grid point without strategy volume or market
// share factors.
func buildPricePoint(p *entity.Product, costs entity.AdjustedCosts, price, targetMargin float64, strategy *entity.Strategy) entity.PricePoint {
	volumeFactor := 1.0
	if strategy != nil && strategy.VolumeProjectionFactor != 0 {
		volumeFactor = strategy.VolumeProjectionFactor
	}
	volume := VolumeProjection(p.SalesVolumeCurrent, p.CurrentPrice, price, p.Elasticity(), volumeFactor)
	margin := MarginAt(price, costs)

	var share *float64
	if strategy != nil && strategy.MarketShareProjectionFactor != nil && p.MarketShareCurrent != nil {
		s := math.Min(100, *p.MarketShareCurrent**strategy.MarketShareProjectionFactor)
		share = &s
	}

	return entity.PricePoint{
		Price:                 price,
		MarginPercentage:      margin,
		Profit:                ProfitAt(price, costs, volume),
		Revenue:               price * volume,
		VolumeProjection:      volume,
		MarketShareProjection: share,
		PriceChangePercentage: (price - p.CurrentPrice) / p.CurrentPrice * 100,
		IsRecommended:         math.Abs(margin-targetMargin) < recommendedMarginBand,
	}
}

func nearSeeded(seeded []float64, price float64) bool {
	for _, s := range seeded {
		if math.Abs(s-price) < duplicateTolerance {
			return true
		}
	}
	return false
}

// compareCompetitors positions the optimal price against the competitor
// average. Nil when the product lists no competitor prices.
func compareCompetitors(p *entity.Product, optimalPrice float64) *entity.CompetitorComparison {
	if len(p.CompetitorPrices) == 0 {
		return nil
	}
	var sum float64
	for _, cp := range p.CompetitorPrices {
		sum += cp
	}
	avg := sum / float64(len(p.CompetitorPrices))
	if avg <= 0 {
		return nil
	}
	diff := (optimalPrice - avg) / avg * 100
	position := entity.PositionSimilar
	switch {
	case diff > 5:
		position = entity.PositionHigher
	case diff < -5:
		position = entity.PositionLower
	}
	return &entity.CompetitorComparison{
		AverageCompetitorPrice:    avg,
		PriceDifferencePercentage: diff,
		RelativePosition:          position,
	}
}

var riskRank = map[string]int{
	entity.RiskLevelLow:    0,
	entity.RiskLevelMedium: 1,
	entity.RiskLevelHigh:   2,
}

// assessRisk accumulates risk factors for a scenario. The level only ever
// escalates; once high it stays high.
func assessRisk(p *entity.Product, optimalPrice, optimalMargin, breakEven float64, comparison *entity.CompetitorComparison) entity.RiskAssessment {
	level := entity.RiskLevelLow
	var factors []string

	if optimalPrice > p.CurrentPrice*1.2 {
		level = escalate(level, entity.RiskLevelMedium)
		factors = append(factors, "Optimal price is more than 20% above the current price, which may affect customer retention")
	}
	if optimalPrice < p.CurrentPrice*0.8 {
		level = escalate(level, entity.RiskLevelMedium)
		factors = append(factors, "Optimal price is more than 20% below the current price, which may hurt brand perception")
	}
	if optimalPrice < breakEven {
		level = escalate(level, entity.RiskLevelHigh)
		factors = append(factors, "Optimal price is below the break-even price")
	}
	if optimalMargin < 10 {
		level = escalate(level, entity.RiskLevelMedium)
		factors = append(factors, "Optimal margin is below 10%, leaving little room for cost shocks")
	}
	if comparison != nil && comparison.RelativePosition == entity.PositionHigher && comparison.PriceDifferencePercentage > 15 {
		level = escalate(level, entity.RiskLevelMedium)
		factors = append(factors, "Optimal price sits more than 15% above the competitor average, risking market share")
	}

	return entity.RiskAssessment{Level: level, Factors: factors}
}

func escalate(current, to string) string {
	if riskRank[to] > riskRank[current] {
		return to
	}
	return current
}
