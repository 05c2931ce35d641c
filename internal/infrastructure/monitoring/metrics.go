// Package monitoring provides Prometheus metrics for the generation pipeline
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Generation outcomes recorded per completed pipeline run
const (
	OutcomeSuccess          = "success"
	OutcomeValidationFailed = "validation_failed"
	OutcomeProviderError    = "provider_error"
)

// Metrics aggregates the pipeline's Prometheus collectors
type Metrics struct {
	GenerationTotal   *prometheus.CounterVec
	GenerationSeconds *prometheus.HistogramVec
	ValidationIssues  *prometheus.CounterVec
	CacheRequests     *prometheus.CounterVec
	CoalescedRequests prometheus.Counter
}

// NewMetrics creates and registers the pipeline collectors
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GenerationTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nutriforge",
			Name:      "generation_total",
			Help:      "Completed plan generation requests by domain and outcome",
		}, []string{"domain", "outcome"}),
		GenerationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nutriforge",
			Name:      "generation_duration_seconds",
			Help:      "End-to-end plan generation latency by domain",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30, 60},
		}, []string{"domain"}),
		ValidationIssues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nutriforge",
			Name:      "validation_issues_total",
			Help:      "Validation issues raised against provider output by code and severity",
		}, []string{"code", "severity"}),
		CacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nutriforge",
			Name:      "generation_cache_requests_total",
			Help:      "Generation cache lookups by result source",
		}, []string{"source"}),
		CoalescedRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nutriforge",
			Name:      "generation_coalesced_requests_total",
			Help:      "Requests that attached to an in-flight identical generation",
		}),
	}

	reg.MustRegister(
		m.GenerationTotal,
		m.GenerationSeconds,
		m.ValidationIssues,
		m.CacheRequests,
		m.CoalescedRequests,
	)
	return m
}
