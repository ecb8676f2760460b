package api

import (
	"github.com/labstack/echo/v4"

	"trade-navigator-service/internal/entity"
)

// CostHandler handles landed cost calculations.
type CostHandler struct{}

// NewCostHandler creates a new CostHandler instance.
func NewCostHandler() *CostHandler {
	return &CostHandler{}
}

// CalculateCosts breaks an import shipment into cost components --> POST /costs/calculate
func (h *CostHandler) CalculateCosts(c echo.Context) error {
	input := entity.CostInput{}
	if err := c.Bind(&input); err != nil {
		return c.JSON(400, map[string]string{"error": "invalid request payload"})
	}
	if err := input.Validate(); err != nil {
		return c.JSON(400, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, input.Breakdown())
}
