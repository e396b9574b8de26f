package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/banquetpro/banquetpro-api/internal/metrics"
	"github.com/banquetpro/banquetpro-api/internal/model"
	"github.com/banquetpro/banquetpro-api/internal/queue"
	"github.com/banquetpro/banquetpro-api/internal/repository"
)

// parseDate validates a calendar date in "2006-01-02" form.
func parseDate(s string) (string, error) {
	t, err := time.Parse(model.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return t.Format(model.DateLayout), nil
}

// parseTimestamp accepts RFC3339 or DB-format timestamps and normalizes them
// to model.TimeLayout in UTC.
func parseTimestamp(s string) (string, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Format(model.TimeLayout), nil
	}
	t, err := time.Parse(model.TimeLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(model.TimeLayout), nil
}

// CreateEvent handles POST /api/v1/events. The venue availability check and
// the insert run in one repository transaction, so a conflicting concurrent
// create cannot slip between check and commit.
func (h *Handler) CreateEvent(c echo.Context) error {
	var body struct {
		Name        string `json:"name" validate:"required"`
		ClientID    uint64 `json:"client_id" validate:"required"`
		EventType   string `json:"event_type" validate:"required"`
		Date        string `json:"date" validate:"required"`
		StartTime   string `json:"start_time" validate:"required"`
		EndTime     string `json:"end_time" validate:"required"`
		Venue       string `json:"venue" validate:"required"`
		GuestsCount int    `json:"guests_count" validate:"gte=0"`
		BudgetCents int64  `json:"budget_cents" validate:"gte=0"`
		Notes       string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	date, err := parseDate(body.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid date format, want YYYY-MM-DD"})
	}
	start, err := parseTimestamp(body.StartTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid start_time format"})
	}
	end, err := parseTimestamp(body.EndTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid end_time format"})
	}
	if end <= start { // DB-format timestamps order lexicographically
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "end_time must be after start_time"})
	}

	event := &model.Event{
		Name:        strings.TrimSpace(body.Name),
		ClientID:    body.ClientID,
		EventType:   strings.TrimSpace(body.EventType),
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		Venue:       strings.TrimSpace(body.Venue),
		GuestsCount: body.GuestsCount,
		BudgetCents: body.BudgetCents,
		Notes:       body.Notes,
	}
	if err := h.Events.Create(c.Request().Context(), event); err != nil {
		switch {
		case errors.Is(err, repository.ErrClientNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "client not found"})
		case errors.Is(err, repository.ErrVenueUnavailable):
			return c.JSON(http.StatusConflict, map[string]string{"error": "venue not available on this date"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create event"})
	}
	metrics.EventOperationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, event)
}

// ListEvents handles GET /api/v1/events with optional ?status= and
// ?event_type= filters.
func (h *Handler) ListEvents(c echo.Context) error {
	status := strings.TrimSpace(c.QueryParam("status"))
	if status != "" && !model.ValidEventStatus(status) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid status filter"})
	}
	events, err := h.Events.List(c.Request().Context(), status, strings.TrimSpace(c.QueryParam("event_type")))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load events"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": events})
}

// GetEvent handles GET /api/v1/events/:id.
func (h *Handler) GetEvent(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	event, err := h.Events.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load event"})
	}
	return c.JSON(http.StatusOK, event)
}

// UpdateEvent handles PUT /api/v1/events/:id. Fields are optional; omitted
// ones keep their current values. Status may move from any value to any
// other (there is no transition graph), but leaving cancelled or moving to a
// new venue/date re-runs the availability check excluding the event itself.
func (h *Handler) UpdateEvent(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	cur, err := h.Events.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load event"})
	}

	var body struct {
		Name        *string `json:"name"`
		EventType   *string `json:"event_type"`
		Date        *string `json:"date"`
		StartTime   *string `json:"start_time"`
		EndTime     *string `json:"end_time"`
		Venue       *string `json:"venue"`
		GuestsCount *int    `json:"guests_count"`
		BudgetCents *int64  `json:"budget_cents"`
		Status      *string `json:"status"`
		Notes       *string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	upd := *cur
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		upd.Name = strings.TrimSpace(*body.Name)
	}
	if body.EventType != nil && strings.TrimSpace(*body.EventType) != "" {
		upd.EventType = strings.TrimSpace(*body.EventType)
	}
	if body.Date != nil {
		d, err := parseDate(*body.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid date format, want YYYY-MM-DD"})
		}
		upd.Date = d
	}
	if body.StartTime != nil {
		s, err := parseTimestamp(*body.StartTime)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid start_time format"})
		}
		upd.StartTime = s
	}
	if body.EndTime != nil {
		e, err := parseTimestamp(*body.EndTime)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid end_time format"})
		}
		upd.EndTime = e
	}
	if upd.EndTime <= upd.StartTime {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "end_time must be after start_time"})
	}
	if body.Venue != nil && strings.TrimSpace(*body.Venue) != "" {
		upd.Venue = strings.TrimSpace(*body.Venue)
	}
	if body.GuestsCount != nil {
		if *body.GuestsCount < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "guests_count must not be negative"})
		}
		upd.GuestsCount = *body.GuestsCount
	}
	if body.BudgetCents != nil {
		if *body.BudgetCents < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "budget_cents must not be negative"})
		}
		upd.BudgetCents = *body.BudgetCents
	}
	if body.Status != nil {
		s := strings.ToLower(strings.TrimSpace(*body.Status))
		if !model.ValidEventStatus(s) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid status"})
		}
		upd.Status = s
	}
	if body.Notes != nil {
		upd.Notes = *body.Notes
	}

	// Pre-check for a friendlier error before entering the write transaction;
	// the repository re-checks under lock regardless.
	if upd.Status != model.StatusCancelled {
		free, err := h.Guard.CheckVenueAvailable(c.Request().Context(), upd.Venue, upd.Date, upd.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to check availability"})
		}
		if !free {
			return c.JSON(http.StatusConflict, map[string]string{"error": "venue not available on this date"})
		}
	}

	oldStatus := cur.Status
	if err := h.Events.Update(c.Request().Context(), &upd); err != nil {
		switch {
		case errors.Is(err, repository.ErrEventNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "event not found"})
		case errors.Is(err, repository.ErrVenueUnavailable):
			return c.JSON(http.StatusConflict, map[string]string{"error": "venue not available on this date"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "update failed"})
	}
	metrics.EventOperationsTotal.WithLabelValues("update").Inc()

	if upd.Status != oldStatus && (upd.Status == model.StatusConfirmed || upd.Status == model.StatusCompleted) {
		// Best effort; a broker outage must not fail the update.
		_ = queue.PublishStatusChanged(c.Request().Context(), queue.StatusChangedMessage{
			EventID:     upd.ID,
			Name:        upd.Name,
			ClientID:    upd.ClientID,
			EventType:   upd.EventType,
			Venue:       upd.Venue,
			Date:        upd.Date,
			OldStatus:   oldStatus,
			NewStatus:   upd.Status,
			BudgetCents: upd.BudgetCents,
			ChangedAt:   time.Now().UTC().Format(model.TimeLayout),
		})
	}
	return c.JSON(http.StatusOK, &upd)
}

// DeleteEvent handles DELETE /api/v1/events/:id.
func (h *Handler) DeleteEvent(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.Events.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "delete failed"})
	}
	metrics.EventOperationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// CheckAvailability handles GET /api/v1/events/availability. It exposes the
// scheduling guard as a read: ?venue=&date=&exclude_event_id= (optional).
func (h *Handler) CheckAvailability(c echo.Context) error {
	venue := strings.TrimSpace(c.QueryParam("venue"))
	if venue == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "venue is required"})
	}
	date, err := parseDate(c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid date format, want YYYY-MM-DD"})
	}
	var excludeID uint64
	if raw := c.QueryParam("exclude_event_id"); raw != "" {
		excludeID, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid exclude_event_id"})
		}
	}
	free, err := h.Guard.CheckVenueAvailable(c.Request().Context(), venue, date, excludeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to check availability"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"venue":     venue,
		"date":      date,
		"available": free,
	})
}
