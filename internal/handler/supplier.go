package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/banquetpro/banquetpro-api/internal/model"
	"github.com/banquetpro/banquetpro-api/internal/repository"
)

// CreateSupplier handles POST /api/v1/suppliers.
func (h *Handler) CreateSupplier(c echo.Context) error {
	var body struct {
		Name          string `json:"name" validate:"required"`
		ContactPerson string `json:"contact_person"`
		Email         string `json:"email" validate:"omitempty,email"`
		Phone         string `json:"phone"`
		Address       string `json:"address"`
		Category      string `json:"category"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	s := &model.Supplier{
		Name:          strings.TrimSpace(body.Name),
		ContactPerson: strings.TrimSpace(body.ContactPerson),
		Email:         strings.TrimSpace(body.Email),
		Phone:         strings.TrimSpace(body.Phone),
		Address:       body.Address,
		Category:      strings.TrimSpace(body.Category),
		IsActive:      true,
	}
	if err := h.Suppliers.Create(c.Request().Context(), s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create supplier"})
	}
	return c.JSON(http.StatusCreated, s)
}

// ListSuppliers handles GET /api/v1/suppliers with optional ?category= and
// ?active=true filters.
func (h *Handler) ListSuppliers(c echo.Context) error {
	activeOnly := strings.EqualFold(c.QueryParam("active"), "true")
	suppliers, err := h.Suppliers.List(c.Request().Context(), strings.TrimSpace(c.QueryParam("category")), activeOnly)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load suppliers"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": suppliers})
}

// GetSupplier handles GET /api/v1/suppliers/:id.
func (h *Handler) GetSupplier(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	s, err := h.Suppliers.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "supplier not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load supplier"})
	}
	return c.JSON(http.StatusOK, s)
}

// UpdateSupplier handles PUT /api/v1/suppliers/:id with optional fields.
func (h *Handler) UpdateSupplier(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	cur, err := h.Suppliers.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "supplier not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load supplier"})
	}

	var body struct {
		Name          *string  `json:"name"`
		ContactPerson *string  `json:"contact_person"`
		Email         *string  `json:"email"`
		Phone         *string  `json:"phone"`
		Address       *string  `json:"address"`
		Category      *string  `json:"category"`
		Rating        *float64 `json:"rating"`
		IsActive      *bool    `json:"is_active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	upd := *cur
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		upd.Name = strings.TrimSpace(*body.Name)
	}
	if body.ContactPerson != nil {
		upd.ContactPerson = strings.TrimSpace(*body.ContactPerson)
	}
	if body.Email != nil {
		upd.Email = strings.TrimSpace(*body.Email)
	}
	if body.Phone != nil {
		upd.Phone = strings.TrimSpace(*body.Phone)
	}
	if body.Address != nil {
		upd.Address = *body.Address
	}
	if body.Category != nil {
		upd.Category = strings.TrimSpace(*body.Category)
	}
	if body.Rating != nil {
		if *body.Rating < 0 || *body.Rating > 5 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "rating must be between 0 and 5"})
		}
		upd.Rating = *body.Rating
	}
	if body.IsActive != nil {
		upd.IsActive = *body.IsActive
	}

	if err := h.Suppliers.Update(c.Request().Context(), &upd); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "supplier not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, &upd)
}

// DeleteSupplier handles DELETE /api/v1/suppliers/:id.
func (h *Handler) DeleteSupplier(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.Suppliers.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "supplier not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
