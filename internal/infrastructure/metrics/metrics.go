package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Key-value store metrics
var (
	// StoreOpsTotal tracks store operations by driver, operation and status
	StoreOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kv_store_operations_total",
			Help: "Total key-value store operations by driver, operation and status",
		},
		[]string{"driver", "operation", "status"},
	)

	// StoreOpDuration tracks store operation latency in seconds
	StoreOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kv_store_operation_duration_seconds",
			Help:    "Key-value store operation duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"driver", "operation"},
	)

	// StoreBreakerState tracks the store circuit breaker (0=closed, 1=half-open, 2=open)
	StoreBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kv_store_circuit_breaker_state",
			Help: "Current store circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"driver"},
	)

	// StoreConnectionErrors tracks failed connection attempts to the store
	StoreConnectionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kv_store_connection_errors_total",
			Help: "Total key-value store connection errors",
		},
		[]string{"driver"},
	)
)

// Engagement metrics
var (
	// EngagementSoftFailures counts actions that returned a default instead of a value
	EngagementSoftFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engagement_soft_failures_total",
			Help: "Engagement actions answered with a default value, by action and failure kind",
		},
		[]string{"action", "kind"},
	)

	// EngagementMutations counts successful likes, unlikes and comments
	EngagementMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engagement_mutations_total",
			Help: "Successful engagement mutations by action",
		},
		[]string{"action"},
	)
)

// Page cache metrics
var (
	// PageCacheRequests counts cached page lookups by result (hit/miss/error)
	PageCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_cache_requests_total",
			Help: "Page cache lookups by result",
		},
		[]string{"result"},
	)

	// Revalidations counts page invalidation signals by outcome (ok/error/dropped)
	Revalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_revalidations_total",
			Help: "Page invalidation signals by outcome",
		},
		[]string{"outcome"},
	)
)

// ObserveStoreOp records the outcome and latency of one store operation.
func ObserveStoreOp(driver, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	StoreOpsTotal.WithLabelValues(driver, operation, status).Inc()
	StoreOpDuration.WithLabelValues(driver, operation).Observe(time.Since(start).Seconds())
}
