package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/banquetpro/banquetpro-api/internal/logger"
)

// RequestID attaches a unique request ID to each request, reusing the
// caller's X-Request-ID header when present. The ID is echoed back in the
// response headers and stored on the context for log correlation.
func RequestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(logger.RequestIDKey)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Request().Header.Set(logger.RequestIDKey, requestID)
		c.Response().Header().Set(logger.RequestIDKey, requestID)
		c.Set(logger.RequestIDKey, requestID)
		return next(c)
	}
}
