package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/banquetpro/banquetpro-api/internal/model"
	"github.com/banquetpro/banquetpro-api/internal/repository"
)

// CreateStaff handles POST /api/v1/staff.
func (h *Handler) CreateStaff(c echo.Context) error {
	var body struct {
		Name            string `json:"name" validate:"required"`
		Email           string `json:"email" validate:"required,email"`
		Phone           string `json:"phone"`
		Role            string `json:"role" validate:"required"`
		Specialty       string `json:"specialty"`
		HourlyRateCents int64  `json:"hourly_rate_cents" validate:"gte=0"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	s := &model.Staff{
		Name:            strings.TrimSpace(body.Name),
		Email:           strings.TrimSpace(body.Email),
		Phone:           strings.TrimSpace(body.Phone),
		Role:            strings.TrimSpace(body.Role),
		Specialty:       strings.TrimSpace(body.Specialty),
		HourlyRateCents: body.HourlyRateCents,
	}
	if err := h.Staff.Create(c.Request().Context(), s); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "email already in use"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create staff"})
	}
	return c.JSON(http.StatusCreated, s)
}

// ListStaff handles GET /api/v1/staff with an optional ?status= filter.
func (h *Handler) ListStaff(c echo.Context) error {
	status := strings.TrimSpace(c.QueryParam("status"))
	if status != "" && !model.ValidStaffStatus(status) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid status filter"})
	}
	staff, err := h.Staff.List(c.Request().Context(), status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load staff"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": staff})
}

// GetStaff handles GET /api/v1/staff/:id.
func (h *Handler) GetStaff(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	s, err := h.Staff.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "staff not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load staff"})
	}
	return c.JSON(http.StatusOK, s)
}

// UpdateStaff handles PUT /api/v1/staff/:id with optional fields.
func (h *Handler) UpdateStaff(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	cur, err := h.Staff.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "staff not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load staff"})
	}

	var body struct {
		Name            *string  `json:"name"`
		Email           *string  `json:"email"`
		Phone           *string  `json:"phone"`
		Role            *string  `json:"role"`
		Specialty       *string  `json:"specialty"`
		HourlyRateCents *int64   `json:"hourly_rate_cents"`
		Status          *string  `json:"status"`
		Rating          *float64 `json:"rating"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	upd := *cur
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		upd.Name = strings.TrimSpace(*body.Name)
	}
	if body.Email != nil && strings.TrimSpace(*body.Email) != "" {
		upd.Email = strings.TrimSpace(*body.Email)
	}
	if body.Phone != nil {
		upd.Phone = strings.TrimSpace(*body.Phone)
	}
	if body.Role != nil && strings.TrimSpace(*body.Role) != "" {
		upd.Role = strings.TrimSpace(*body.Role)
	}
	if body.Specialty != nil {
		upd.Specialty = strings.TrimSpace(*body.Specialty)
	}
	if body.HourlyRateCents != nil {
		if *body.HourlyRateCents < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "hourly_rate_cents must not be negative"})
		}
		upd.HourlyRateCents = *body.HourlyRateCents
	}
	if body.Status != nil {
		s := strings.ToLower(strings.TrimSpace(*body.Status))
		if !model.ValidStaffStatus(s) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid status"})
		}
		upd.Status = s
	}
	if body.Rating != nil {
		if *body.Rating < 0 || *body.Rating > 5 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "rating must be between 0 and 5"})
		}
		upd.Rating = *body.Rating
	}

	if err := h.Staff.Update(c.Request().Context(), &upd); err != nil {
		switch {
		case errors.Is(err, repository.ErrStaffNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "staff not found"})
		case errors.Is(err, repository.ErrDuplicateEmail):
			return c.JSON(http.StatusConflict, map[string]string{"error": "email already in use"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, &upd)
}

// DeleteStaff handles DELETE /api/v1/staff/:id. Assignments of the staff
// member are removed in the same transaction.
func (h *Handler) DeleteStaff(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.Staff.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "staff not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
