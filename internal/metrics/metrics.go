package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolver layer outcomes.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var (
	ResolverLayerOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acs_faq_resolver_layer_outcomes_total",
			Help: "Results produced by each fallback layer, by acceptability",
		},
		[]string{"layer", "outcome"},
	)

	ResolverLayerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "acs_faq_resolver_layer_duration_seconds",
			Help:    "Time spent in each fallback layer",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15, 30},
		},
		[]string{"layer"},
	)

	ResolverRecoveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "acs_faq_resolver_recoveries_total",
			Help: "Panics inside the fallback chain that were answered by the terminal layer",
		},
	)

	FAQMatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acs_faq_matcher_results_total",
			Help: "FAQ matcher results: matched, no_match or error",
		},
		[]string{"result"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acs_faq_http_requests_total",
			Help: "HTTP requests served, by route and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "acs_faq_http_request_duration_seconds",
			Help: "HTTP request latency",
		},
		[]string{"route", "method"},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "acs_faq_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)

	DependencyUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "acs_faq_dependency_up",
			Help: "1 when the last health check of a configured dependency succeeded",
		},
		[]string{"service"},
	)
)
