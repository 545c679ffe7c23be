package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "book_manager_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "book_manager_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	checkoutOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "book_manager_checkout_operations_total",
		Help: "Count of checkout and return attempts by result",
	}, []string{"operation", "result"})

	checkoutConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "book_manager_checkout_conflicts_total",
		Help: "Count of serialization conflicts on checkout transactions",
	})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveCheckout increments the circulation counter for the given operation
// ("checkout" or "return") and result ("ok", "rejected", "conflict", "error").
func ObserveCheckout(operation, result string) {
	checkoutOperations.WithLabelValues(operation, result).Inc()
	if result == "conflict" {
		checkoutConflicts.Inc()
	}
}
