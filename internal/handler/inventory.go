package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/banquetpro/banquetpro-api/internal/model"
	"github.com/banquetpro/banquetpro-api/internal/repository"
)

// CreateInventoryItem handles POST /api/v1/inventory.
func (h *Handler) CreateInventoryItem(c echo.Context) error {
	var body struct {
		Name          string `json:"name" validate:"required"`
		Category      string `json:"category" validate:"required"`
		CurrentStock  int    `json:"current_stock" validate:"gte=0"`
		MinimumStock  int    `json:"minimum_stock" validate:"gte=0"`
		MaximumStock  int    `json:"maximum_stock" validate:"gte=0"`
		UnitCostCents int64  `json:"unit_cost_cents" validate:"gte=0"`
		Location      string `json:"location"`
		Supplier      string `json:"supplier"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if body.MaximumStock < body.MinimumStock {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "maximum_stock must not be below minimum_stock"})
	}

	it := &model.InventoryItem{
		Name:          strings.TrimSpace(body.Name),
		Category:      strings.TrimSpace(body.Category),
		CurrentStock:  body.CurrentStock,
		MinimumStock:  body.MinimumStock,
		MaximumStock:  body.MaximumStock,
		UnitCostCents: body.UnitCostCents,
		Location:      strings.TrimSpace(body.Location),
		Supplier:      strings.TrimSpace(body.Supplier),
	}
	if err := h.Inventory.Create(c.Request().Context(), it); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create item"})
	}
	return c.JSON(http.StatusCreated, it)
}

// ListInventory handles GET /api/v1/inventory with optional ?category= and
// ?low_stock=true filters.
func (h *Handler) ListInventory(c echo.Context) error {
	lowStock := strings.EqualFold(c.QueryParam("low_stock"), "true")
	items, err := h.Inventory.List(c.Request().Context(), strings.TrimSpace(c.QueryParam("category")), lowStock)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load inventory"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// GetInventoryItem handles GET /api/v1/inventory/:id.
func (h *Handler) GetInventoryItem(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	it, err := h.Inventory.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "inventory item not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load item"})
	}
	return c.JSON(http.StatusOK, it)
}

// UpdateInventoryItem handles PUT /api/v1/inventory/:id. Raising
// current_stock counts as a restock and advances last_restocked.
func (h *Handler) UpdateInventoryItem(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	cur, err := h.Inventory.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "inventory item not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load item"})
	}

	var body struct {
		Name          *string `json:"name"`
		Category      *string `json:"category"`
		CurrentStock  *int    `json:"current_stock"`
		MinimumStock  *int    `json:"minimum_stock"`
		MaximumStock  *int    `json:"maximum_stock"`
		UnitCostCents *int64  `json:"unit_cost_cents"`
		Location      *string `json:"location"`
		Supplier      *string `json:"supplier"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	upd := *cur
	restocked := false
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		upd.Name = strings.TrimSpace(*body.Name)
	}
	if body.Category != nil && strings.TrimSpace(*body.Category) != "" {
		upd.Category = strings.TrimSpace(*body.Category)
	}
	if body.CurrentStock != nil {
		if *body.CurrentStock < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "current_stock must not be negative"})
		}
		restocked = *body.CurrentStock > cur.CurrentStock
		upd.CurrentStock = *body.CurrentStock
	}
	if body.MinimumStock != nil {
		if *body.MinimumStock < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "minimum_stock must not be negative"})
		}
		upd.MinimumStock = *body.MinimumStock
	}
	if body.MaximumStock != nil {
		if *body.MaximumStock < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "maximum_stock must not be negative"})
		}
		upd.MaximumStock = *body.MaximumStock
	}
	if upd.MaximumStock < upd.MinimumStock {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "maximum_stock must not be below minimum_stock"})
	}
	if body.UnitCostCents != nil {
		if *body.UnitCostCents < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "unit_cost_cents must not be negative"})
		}
		upd.UnitCostCents = *body.UnitCostCents
	}
	if body.Location != nil {
		upd.Location = strings.TrimSpace(*body.Location)
	}
	if body.Supplier != nil {
		upd.Supplier = strings.TrimSpace(*body.Supplier)
	}

	if err := h.Inventory.Update(c.Request().Context(), &upd, restocked); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "inventory item not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, &upd)
}

// DeleteInventoryItem handles DELETE /api/v1/inventory/:id.
func (h *Handler) DeleteInventoryItem(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.Inventory.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "inventory item not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
