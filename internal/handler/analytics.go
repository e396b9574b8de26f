package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/banquetpro/banquetpro-api/internal/service"
)

// Summary handles GET /api/v1/analytics/summary with optional ?start_date=
// and ?end_date= bounds (YYYY-MM-DD). Defaults are the current date and 365
// days before it.
func (h *Handler) Summary(c echo.Context) error {
	start := strings.TrimSpace(c.QueryParam("start_date"))
	end := strings.TrimSpace(c.QueryParam("end_date"))

	summary, err := h.Analytics.Summarize(c.Request().Context(), start, end)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute summary"})
	}
	return c.JSON(http.StatusOK, summary)
}
