// Package metrics provides Prometheus metrics for the streampack coverage
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the streampack service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Solver metrics
	solveDuration         prometheus.Histogram
	solveOutcomes         *prometheus.CounterVec
	alternativesGenerated prometheus.Histogram
	combinationsReturned  prometheus.Histogram

	// Catalog gauges
	catalogGames    prometheus.Gauge
	catalogOffers   prometheus.Gauge
	catalogPackages prometheus.Gauge
	catalogTeams    prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error tracking
	errorsByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "streampack",
		subsystem:        "coverage",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.solveDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "solve_duration_milliseconds",
		Help:      "End-to-end coverage computation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.solveOutcomes = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "solve_outcomes_total",
			Help:      "Coverage computations by outcome (full or partial)",
		},
		[]string{"outcome"},
	)

	m.alternativesGenerated = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "alternatives_generated",
		Help:      "Partial-coverage combinations produced per request before dedup",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 500},
	})

	m.combinationsReturned = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "combinations_returned",
		Help:      "Combinations surviving dedup, ranking and price filtering",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 500},
	})

	m.catalogGames = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_games",
		Help:      "Games loaded in the catalog",
	})
	m.catalogOffers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_offers",
		Help:      "Offers loaded in the catalog",
	})
	m.catalogPackages = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_packages",
		Help:      "Streaming packages loaded in the catalog",
	})
	m.catalogTeams = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_teams",
		Help:      "Distinct teams in the catalog",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Errors by component and kind",
		},
		[]string{"component", "kind"},
	)
}

// Package-level helpers against the global manager.

// RecordSolveDuration records one coverage computation latency.
func RecordSolveDuration(latencyMs float64) {
	globalManager.solveDuration.Observe(latencyMs)
}

// RecordSolveOutcome counts a full or partial solve outcome.
func RecordSolveOutcome(outcome string) {
	globalManager.solveOutcomes.WithLabelValues(outcome).Inc()
}

// RecordAlternativesGenerated records the partial-pass yield of a request.
func RecordAlternativesGenerated(n int) {
	globalManager.alternativesGenerated.Observe(float64(n))
}

// RecordCombinationsReturned records the final response size of a request.
func RecordCombinationsReturned(n int) {
	globalManager.combinationsReturned.Observe(float64(n))
}

// UpdateCatalogCounts sets the catalog size gauges.
func UpdateCatalogCounts(games, offers, packages, teams int) {
	globalManager.catalogGames.Set(float64(games))
	globalManager.catalogOffers.Set(float64(offers))
	globalManager.catalogPackages.Set(float64(packages))
	globalManager.catalogTeams.Set(float64(teams))
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records one HTTP request latency.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, latencyMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(latencyMs)
}

// RecordErrorByComponent counts an error for a component.
func RecordErrorByComponent(component, kind string) {
	globalManager.errorsByComponent.WithLabelValues(component, kind).Inc()
}

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
