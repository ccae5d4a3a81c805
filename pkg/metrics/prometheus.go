package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	resolutions      *prometheus.CounterVec
	providerFailures *prometheus.CounterVec
	providerLatency  *prometheus.HistogramVec
	cacheHits        *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		resolutions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finquote_resolutions_total",
				Help: "Completed resolutions by query type and answering source",
			},
			[]string{"query", "source"},
		),
		providerFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finquote_provider_failures_total",
				Help: "Provider attempts that fell through to the next provider",
			},
			[]string{"provider", "reason"},
		),
		providerLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finquote_provider_duration_seconds",
				Help:    "Duration of individual provider attempts in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		cacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finquote_cache_hits_total",
				Help: "Resolutions served from the response cache",
			},
			[]string{"query"},
		),
	}
}

// RecordResolution records a completed resolution and its provenance.
func (r *Recorder) RecordResolution(query, source string) {
	r.resolutions.WithLabelValues(query, source).Inc()
}

// RecordProviderFailure records a fallback transition.
func (r *Recorder) RecordProviderFailure(provider, reason string) {
	r.providerFailures.WithLabelValues(provider, reason).Inc()
}

// RecordProviderLatency records one provider attempt's duration.
func (r *Recorder) RecordProviderLatency(provider string, seconds float64) {
	r.providerLatency.WithLabelValues(provider).Observe(seconds)
}

// RecordCacheHit records a resolution served from cache.
func (r *Recorder) RecordCacheHit(query string) {
	r.cacheHits.WithLabelValues(query).Inc()
}
