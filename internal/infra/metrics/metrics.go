// Package metrics declares the gateway's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mycloudmen_gateway"

// Company status lookup sources.
const (
	SourceEmbedded  = "embedded"
	SourceMemory    = "memory"
	SourcePersisted = "persisted"
	SourceNetwork   = "network"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served by the gateway.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of gateway HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ReconciliationVerdicts counts critical redirect verdicts by destination; "none" means no redirect.
	ReconciliationVerdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciliation_verdicts_total",
			Help:      "Critical redirect verdicts by destination.",
		},
		[]string{"destination"},
	)

	ReconciliationSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reconciliation_skipped_total",
		Help:      "Reconciliation passes skipped because another pass was in flight.",
	})

	CompanyStatusLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "company_status_lookups_total",
			Help:      "Company status resolutions by the source that answered.",
		},
		[]string{"source"},
	)

	BackendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Backend REST calls by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	BackendRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_retries_total",
			Help:      "Retried backend calls by operation.",
		},
		[]string{"operation"},
	)

	TokenRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_refreshes_total",
			Help:      "Access token refreshes by outcome.",
		},
		[]string{"outcome"},
	)

	PollerTicks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_poller_ticks_total",
		Help:      "Status poller ticks.",
	})

	PollerSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "status_poller_sessions",
		Help:      "Sessions tracked by the status poller.",
	})
)
