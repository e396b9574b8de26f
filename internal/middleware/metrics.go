package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/banquetpro/banquetpro-api/internal/metrics"
)

// Metrics records a Prometheus counter and latency histogram for every
// handled request, labelled by method, registered route and status code.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		duration := time.Since(start).Seconds()
		method := c.Request().Method
		path := c.Path()
		status := strconv.Itoa(c.Response().Status)

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration)
		return err
	}
}
