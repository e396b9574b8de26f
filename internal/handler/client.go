package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/banquetpro/banquetpro-api/internal/model"
	"github.com/banquetpro/banquetpro-api/internal/repository"
)

// CreateClient handles POST /api/v1/clients.
func (h *Handler) CreateClient(c echo.Context) error {
	var body struct {
		Name        string `json:"name" validate:"required"`
		Email       string `json:"email" validate:"required,email"`
		Phone       string `json:"phone"`
		Address     string `json:"address"`
		Company     string `json:"company"`
		IsCorporate bool   `json:"is_corporate"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	client := &model.Client{
		Name:        strings.TrimSpace(body.Name),
		Email:       strings.TrimSpace(body.Email),
		Phone:       strings.TrimSpace(body.Phone),
		Address:     body.Address,
		Company:     strings.TrimSpace(body.Company),
		IsCorporate: body.IsCorporate,
	}
	if err := h.Clients.Create(c.Request().Context(), client); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "email already in use"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create client"})
	}
	return c.JSON(http.StatusCreated, client)
}

// ListClients handles GET /api/v1/clients.
func (h *Handler) ListClients(c echo.Context) error {
	clients, err := h.Clients.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load clients"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": clients})
}

// GetClient handles GET /api/v1/clients/:id.
func (h *Handler) GetClient(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	client, err := h.Clients.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "client not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load client"})
	}
	return c.JSON(http.StatusOK, client)
}

// UpdateClient handles PUT /api/v1/clients/:id with optional fields.
func (h *Handler) UpdateClient(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	cur, err := h.Clients.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "client not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load client"})
	}

	var body struct {
		Name        *string `json:"name"`
		Email       *string `json:"email"`
		Phone       *string `json:"phone"`
		Address     *string `json:"address"`
		Company     *string `json:"company"`
		IsCorporate *bool   `json:"is_corporate"`
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
	if body.Address != nil {
		upd.Address = *body.Address
	}
	if body.Company != nil {
		upd.Company = strings.TrimSpace(*body.Company)
	}
	if body.IsCorporate != nil {
		upd.IsCorporate = *body.IsCorporate
	}

	if err := h.Clients.Update(c.Request().Context(), &upd); err != nil {
		switch {
		case errors.Is(err, repository.ErrClientNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "client not found"})
		case errors.Is(err, repository.ErrDuplicateEmail):
			return c.JSON(http.StatusConflict, map[string]string{"error": "email already in use"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, &upd)
}

// DeleteClient handles DELETE /api/v1/clients/:id. Deletion is refused with
// 409 while events still reference the client.
func (h *Handler) DeleteClient(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.Clients.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrClientNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "client not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, map[string]string{"error": "client has associated events"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
