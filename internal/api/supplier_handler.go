package api

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"trade-navigator-service/internal/entity"
	"trade-navigator-service/internal/repository"
	"trade-navigator-service/internal/service"
)

// SupplierHandler handles supplier directory requests.
type SupplierHandler struct {
	supplierService *service.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler instance.
func NewSupplierHandler(supplierService *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		supplierService: supplierService,
	}
}

// CreateSupplier adds a supplier to the caller's directory --> POST /suppliers
func (h *SupplierHandler) CreateSupplier(c echo.Context) error {
	userID := userIDFromToken(c)
	if userID == "" {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	supplier := entity.Supplier{}
	if err := c.Bind(&supplier); err != nil {
		return c.JSON(400, map[string]string{"error": "invalid request payload"})
	}
	supplier.UserID = userID
	if err := supplier.Validate(); err != nil {
		return c.JSON(400, map[string]string{"error": err.Error()})
	}

	created, err := h.supplierService.CreateSupplier(c.Request().Context(), &supplier)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, created)
}

// GetSupplier retrieves one supplier --> GET /suppliers/:id
func (h *SupplierHandler) GetSupplier(c echo.Context) error {
	userID := userIDFromToken(c)
	if userID == "" {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	supplier, err := h.supplierService.GetSupplier(c.Request().Context(), userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(404, map[string]string{"error": "supplier not found"})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, supplier)
}

// ListSuppliers returns the caller's suppliers --> GET /suppliers
func (h *SupplierHandler) ListSuppliers(c echo.Context) error {
	userID := userIDFromToken(c)
	if userID == "" {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	suppliers, err := h.supplierService.ListSuppliers(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, suppliers)
}

// UpdateSupplier rewrites one supplier --> PUT /suppliers/:id
func (h *SupplierHandler) UpdateSupplier(c echo.Context) error {
	userID := userIDFromToken(c)
	if userID == "" {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	supplier := entity.Supplier{}
	if err := c.Bind(&supplier); err != nil {
		return c.JSON(400, map[string]string{"error": "invalid request payload"})
	}
	supplier.ID = id
	supplier.UserID = userID
	if err := supplier.Validate(); err != nil {
		return c.JSON(400, map[string]string{"error": err.Error()})
	}

	updated, err := h.supplierService.UpdateSupplier(c.Request().Context(), &supplier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(404, map[string]string{"error": "supplier not found"})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, updated)
}

// DeleteSupplier removes one supplier --> DELETE /suppliers/:id
func (h *SupplierHandler) DeleteSupplier(c echo.Context) error {
	userID := userIDFromToken(c)
	if userID == "" {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.supplierService.DeleteSupplier(c.Request().Context(), userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(404, map[string]string{"error": "supplier not found"})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, map[string]string{"message": "Supplier deleted"})
}
