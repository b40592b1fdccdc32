package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search outcomes
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Snapshot cache lookup results
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Metrics provides observability for the doctor directory. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Search requests by outcome
	SearchOutcome *prometheus.CounterVec

	// Search latency including the collection load
	SearchLatency prometheus.Histogram

	// Matches per search before pagination
	SearchMatches prometheus.Histogram

	// Snapshot cache lookups by result
	CacheLookups *prometheus.CounterVec
}

// New creates a Metrics instance on its own registry, together with the
// Go runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		SearchOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "doctor_directory_searches_total",
			Help: "Total doctor searches by outcome",
		}, []string{"outcome"}), // outcome: "ok", "invalid", "error"

		SearchLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "doctor_directory_search_duration_seconds",
			Help:    "Duration of doctor searches including loading the collection",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),

		SearchMatches: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "doctor_directory_search_matches",
			Help:    "Number of doctors matching a search before pagination",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
		}),

		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "doctor_directory_snapshot_cache_lookups_total",
			Help: "Doctor snapshot cache lookups by result",
		}, []string{"result"}), // result: "hit", "miss", "error"
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveSearch records one search with its outcome and duration.
func (m *Metrics) ObserveSearch(outcome string, d time.Duration) {
	if m != nil {
		m.SearchOutcome.WithLabelValues(outcome).Inc()
		m.SearchLatency.Observe(d.Seconds())
	}
}

// ObserveMatches records how many doctors matched a search.
func (m *Metrics) ObserveMatches(n int) {
	if m != nil {
		m.SearchMatches.Observe(float64(n))
	}
}

// IncrementCacheLookup records a snapshot cache lookup result.
func (m *Metrics) IncrementCacheLookup(result string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(result).Inc()
	}
}
