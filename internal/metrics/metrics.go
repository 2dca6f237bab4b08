// Package metrics exposes Prometheus instrumentation for the proxy.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeRejected = "rejected"
)

var (
	// UpstreamRequests counts Fetch calls by resource and final outcome.
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepeaks_upstream_requests_total",
			Help: "Upstream fetches by resource and outcome",
		},
		[]string{"resource", "outcome"},
	)

	// UpstreamAttempts counts individual network attempts, retries included.
	UpstreamAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepeaks_upstream_attempts_total",
			Help: "Upstream network attempts by host",
		},
		[]string{"host"},
	)

	// CacheLookups counts response cache lookups by result (hit, miss, error).
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepeaks_cache_lookups_total",
			Help: "Response cache lookups by result",
		},
		[]string{"result"},
	)

	// PeakWrites counts peak records written back to the store.
	PeakWrites = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gamepeaks_peak_writes_total",
			Help: "Peak values written to the peak store",
		},
	)

	// RequestDuration observes inbound request latency by endpoint and status.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamepeaks_request_duration_seconds",
			Help:    "Inbound request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "status"},
	)

	// BreakerState reports the upstream circuit state (0 closed, 1 half-open, 2 open).
	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gamepeaks_upstream_breaker_state",
			Help: "Upstream circuit breaker state",
		},
		[]string{"name"},
	)
)
