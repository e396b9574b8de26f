// Package metrics registers the Prometheus collectors exported at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const prefix = "banquetpro"

var (
	// HTTPRequestsTotal counts handled HTTP requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method, route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// DBOperationDuration observes database round-trip time per operation type.
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// VenueConflictsTotal counts event create/update attempts rejected because
	// the venue was already booked for the requested date.
	VenueConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_venue_conflicts_total",
			Help: "Total number of venue availability conflicts",
		},
	)

	// EventOperationsTotal counts event CRUD operations by kind.
	EventOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_event_operations_total",
			Help: "Total number of event operations",
		},
		[]string{"operation"},
	)
)

// TrackDBOperation returns a function that records the duration of a database
// operation when invoked: defer metrics.TrackDBOperation("insert")(time.Now()).
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		DBOperationDuration.WithLabelValues(operationType).Observe(time.Since(startTime).Seconds())
	}
}
