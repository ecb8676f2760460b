package pricing

import (
	"fmt"
	"math"
	"strings"

	"trade-navigator-service/internal/entity"
)

// Strategy labels for the synthesized recommendation.
const (
	labelPremium     = "Premium Positioning"
	labelCompetitive = "Competitive Pricing"
	labelBalanced    = "Balanced Pricing"
	labelMaintain    = "Maintain current pricing"
)

// buildRecommendation picks the globally most profitable price point across
// all scenarios and derives a strategy label plus insight list from it. When
// no scenario produced any price point the recommendation falls back to
// keeping the current price.
func buildRecommendation(p *entity.Product, targetMargin float64, scenarios []entity.ScenarioResult) entity.Recommendation {
	var best *entity.PricePoint
	var bestScenario *entity.ScenarioResult
	for i := range scenarios {
		if len(scenarios[i].PricePoints) == 0 {
			continue
		}
		top := &scenarios[i].PricePoints[0]
		if best == nil || top.Profit > best.Profit {
			best = top
			bestScenario = &scenarios[i]
		}
	}

	if best == nil {
		return entity.Recommendation{
			OptimalStrategy: labelMaintain,
			PriceSuggestion: p.CurrentPrice,
			KeyInsights: []string{
				"No viable price points were found within the evaluated range",
				"Review the cost assumptions and price range before re-running the optimization",
			},
		}
	}

	label := labelBalanced
	switch {
	case best.Price > p.CurrentPrice*1.1:
		label = labelPremium
	case best.Price < p.CurrentPrice*0.9:
		label = labelCompetitive
	}

	return entity.Recommendation{
		OptimalStrategy: label,
		PriceSuggestion: best.Price,
		ExpectedMargin:  best.MarginPercentage,
		ExpectedProfit:  best.Profit,
		ExpectedRevenue: best.Revenue,
		KeyInsights:     buildInsights(p, targetMargin, best, bestScenario),
	}
}

// buildInsights appends one insight per signal, each gated by its threshold:
// price direction (5%), margin versus target (5 points), volume materiality
// (10%), non-low risk, and competitor positioning when available.
func buildInsights(p *entity.Product, targetMargin float64, best *entity.PricePoint, scenario *entity.ScenarioResult) []string {
	var insights []string

	change := best.PriceChangePercentage
	switch {
	case math.Abs(change) < 5:
		insights = append(insights, "Current price is within 5% of the profit-optimal price")
	case change > 0:
		insights = append(insights, fmt.Sprintf("Raising the price by %.1f%% is projected to maximize profit", change))
	default:
		insights = append(insights, fmt.Sprintf("Lowering the price by %.1f%% is projected to maximize profit", -change))
	}

	marginDiff := best.MarginPercentage - targetMargin
	switch {
	case math.Abs(marginDiff) < 5:
		insights = append(insights, fmt.Sprintf("Expected margin of %.1f%% is on target", best.MarginPercentage))
	case marginDiff > 0:
		insights = append(insights, fmt.Sprintf("Expected margin exceeds the %.0f%% target by %.1f points", targetMargin, marginDiff))
	default:
		insights = append(insights, fmt.Sprintf("Expected margin falls %.1f points short of the %.0f%% target", -marginDiff, targetMargin))
	}

	volumeChange := (best.VolumeProjection - p.SalesVolumeCurrent) / p.SalesVolumeCurrent * 100
	if volumeChange > 10 {
		insights = append(insights, fmt.Sprintf("Projected sales volume grows by %.1f%% at the suggested price", volumeChange))
	} else if volumeChange < -10 {
		insights = append(insights, fmt.Sprintf("Projected sales volume shrinks by %.1f%% at the suggested price", -volumeChange))
	}

	if risk := scenario.RiskAssessment; risk.Level != entity.RiskLevelLow {
		insights = append(insights, fmt.Sprintf("Scenario %q carries %s risk: %s", scenario.ScenarioName, risk.Level, strings.Join(risk.Factors, "; ")))
	}

	if cc := scenario.CompetitorComparison; cc != nil {
		switch cc.RelativePosition {
		case entity.PositionHigher:
			insights = append(insights, fmt.Sprintf("Suggested price sits %.1f%% above the competitor average", cc.PriceDifferencePercentage))
		case entity.PositionLower:
			insights = append(insights, fmt.Sprintf("Suggested price sits %.1f%% below the competitor average", -cc.PriceDifferencePercentage))
		default:
			insights = append(insights, "Suggested price is in line with the competitor average")
		}
	}

	return insights
}
