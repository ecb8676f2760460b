package api

import (
	"github.com/labstack/echo/v4"

	"trade-navigator-service/internal/entity"
	"trade-navigator-service/internal/service"
)

// OptimizerHandler handles price optimization requests.
type OptimizerHandler struct {
	optimizerService *service.OptimizerService
}

// NewOptimizerHandler creates a new OptimizerHandler instance.
func NewOptimizerHandler(optimizerService *service.OptimizerService) *OptimizerHandler {
	return &OptimizerHandler{
		optimizerService: optimizerService,
	}
}

// OptimizePricing runs a price optimization --> POST /pricing/optimize
func (h *OptimizerHandler) OptimizePricing(c echo.Context) error {
	userID := userIDFromToken(c)
	if userID == "" {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	req := entity.OptimizeRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "invalid request payload"})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(400, map[string]string{"error": err.Error()})
	}

	result, err := h.optimizerService.OptimizePricing(c.Request().Context(), userID, &req)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, result)
}

// ListStrategies returns the strategy catalog --> GET /pricing/strategies
func (h *OptimizerHandler) ListStrategies(c echo.Context) error {
	return c.JSON(200, h.optimizerService.Strategies())
}

// GetHistory returns the caller's recent optimization runs --> GET /pricing/history
func (h *OptimizerHandler) GetHistory(c echo.Context) error {
	userID := userIDFromToken(c)
	if userID == "" {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	records, err := h.optimizerService.RecentHistory(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, records)
}
