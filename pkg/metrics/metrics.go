package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
		[]string{"service"},
	)

	// Upstream rental API metrics
	RentalAPICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rental_api_calls_total",
			Help: "Total number of calls issued to the rental REST API",
		},
		[]string{"service", "operation", "status"},
	)

	RentalAPICallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rental_api_call_duration_seconds",
			Help:    "Rental REST API call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "operation"},
	)

	// Business metrics
	ReservationsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reservations_submitted_total",
			Help: "Total number of reservation submissions",
		},
		[]string{"service", "outcome"},
	)

	ReviewsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviews_submitted_total",
			Help: "Total number of review submissions",
		},
		[]string{"service", "outcome"},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total number of login attempts",
		},
		[]string{"service", "outcome"},
	)
)

// RecordHTTPMetrics records HTTP request metrics
func RecordHTTPMetrics(service, method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	HttpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(service, method, path, status).Observe(duration.Seconds())
}

// RecordRentalAPICall records one upstream rental API call
func RecordRentalAPICall(service, operation string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	RentalAPICallsTotal.WithLabelValues(service, operation, status).Inc()
	RentalAPICallDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}
