package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/banquetpro/banquetpro-api/internal/model"
	"github.com/banquetpro/banquetpro-api/internal/repository"
)

// CreateAssignment handles POST /api/v1/events/:id/assignments, assigning a
// staff member to the event.
func (h *Handler) CreateAssignment(c echo.Context) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body struct {
		StaffID uint64 `json:"staff_id" validate:"required"`
		Notes   string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	a := &model.StaffAssignment{EventID: eventID, StaffID: body.StaffID, Notes: body.Notes}
	if err := h.Assignments.Create(c.Request().Context(), a); err != nil {
		switch {
		case errors.Is(err, repository.ErrEventNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "event not found"})
		case errors.Is(err, repository.ErrStaffNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "staff not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create assignment"})
	}
	return c.JSON(http.StatusCreated, a)
}

// ListAssignments handles GET /api/v1/events/:id/assignments.
func (h *Handler) ListAssignments(c echo.Context) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if _, err := h.Events.GetByID(c.Request().Context(), eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load event"})
	}
	assignments, err := h.Assignments.ListByEvent(c.Request().Context(), eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load assignments"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": assignments})
}

// DeleteAssignment handles DELETE /api/v1/assignments/:id.
func (h *Handler) DeleteAssignment(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.Assignments.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "assignment not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
