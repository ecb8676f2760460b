// Package pricing implements the pricing optimization engine: per-scenario
// cost adjustment, break-even and margin math, elasticity-based volume
// projection, price point evaluation, recommendation synthesis and a price
// sensitivity sweep. Computation is a pure function of its inputs; callers
// handle caching and persistence around it.
package pricing

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"trade-navigator-service/internal/entity"
)

// Engine evaluates optimization requests against the strategy catalog.
type Engine struct {
	strategies []entity.Strategy
}

// NewEngine creates an engine backed by the default strategy catalog.
func NewEngine() *Engine {
	return &Engine{strategies: entity.DefaultStrategies()}
}

// Strategies returns the engine's strategy catalog.
func (e *Engine) Strategies() []entity.Strategy {
	return e.strategies
}

// Optimize evaluates every scenario in the request independently, synthesizes
// the cross-scenario recommendation and attaches the sensitivity sweep. The
// request is assumed to be boundary-validated; arithmetic edge cases (empty
// price point lists, unreachable margins) resolve to documented fallbacks
// instead of errors.
func (e *Engine) Optimize(req *entity.OptimizeRequest) *entity.OptimizationResult {
	targetMargin := req.ResolvedTargetMargin()
	strategies := e.strategies
	if len(req.Strategies) > 0 {
		strategies = restrictStrategies(e.strategies, req.Strategies)
	}

	scenarios := make([]entity.ScenarioResult, 0, len(req.Scenarios))
	for i := range req.Scenarios {
		scenarios = append(scenarios, evaluateScenario(&req.Product, &req.Scenarios[i], targetMargin, req.PriceRange, strategies))
	}

	return &entity.OptimizationResult{
		ID:                  uuid.NewString(),
		Product:             req.Product,
		TargetMargin:        targetMargin,
		Scenarios:           scenarios,
		Recommendations:     buildRecommendation(&req.Product, targetMargin, scenarios),
		SensitivityAnalysis: AnalyzeSensitivity(&req.Product),
		CreatedAt:           time.Now().UTC(),
	}
}

// restrictStrategies filters the catalog down to the named strategies,
// ignoring unknown names. Case-insensitive to be forgiving to clients.
func restrictStrategies(catalog []entity.Strategy, names []string) []entity.Strategy {
	var selected []entity.Strategy
	for _, s := range catalog {
		for _, name := range names {
			if strings.EqualFold(s.Name, name) {
				selected = append(selected, s)
				break
			}
		}
	}
	return selected
}
