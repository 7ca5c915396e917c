package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payment",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "payment",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	// Money movement counters, labeled by operation outcome
	TopupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payment",
			Subsystem: "gateway",
			Name:      "topups_total",
			Help:      "Total top-up operations",
		},
		[]string{"status"},
	)

	TransactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payment",
			Subsystem: "gateway",
			Name:      "transactions_total",
			Help:      "Total payment transactions",
		},
		[]string{"status"},
	)

	TransfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payment",
			Subsystem: "gateway",
			Name:      "transfers_total",
			Help:      "Total card-to-card transfers",
		},
		[]string{"status"},
	)

	WithdrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payment",
			Subsystem: "gateway",
			Name:      "withdraws_total",
			Help:      "Total withdrawal operations",
		},
		[]string{"status"},
	)

	// Auth outcomes
	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payment",
			Subsystem: "gateway",
			Name:      "logins_total",
			Help:      "Total login attempts",
		},
		[]string{"status"},
	)

	APIKeyRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "payment",
			Subsystem: "gateway",
			Name:      "api_key_rejections_total",
			Help:      "Requests rejected for a missing or unknown API key",
		},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}
