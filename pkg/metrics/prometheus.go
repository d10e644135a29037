// Package metrics provides Prometheus metrics for the scouting radar service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Dataset metrics
	datasetLoads      *prometheus.CounterVec
	datasetLoadErrors *prometheus.CounterVec
	playersLoaded     prometheus.Gauge
	datasetLoadedUnix prometheus.Gauge

	// Ranking metrics
	rankingsComputed  *prometheus.CounterVec
	rankingLatency    prometheus.Histogram
	populationSize    prometheus.Histogram
	emptyPopulations  *prometheus.CounterVec
	duplicatesDropped prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec

	// Remote fetch circuit breaker
	breakerState *prometheus.GaugeVec
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
		namespace:        "scout",
		subsystem:        "radar",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help,
		Buckets: buckets,
	}
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.datasetLoads = auto.NewCounterVec(
		m.counterOpts("dataset_loads_total", "Total number of datasets loaded by source"),
		[]string{"source"},
	)
	m.datasetLoadErrors = auto.NewCounterVec(
		m.counterOpts("dataset_load_errors_total", "Total number of failed dataset loads by source"),
		[]string{"source"},
	)
	m.playersLoaded = auto.NewGauge(m.gaugeOpts("players_loaded", "Number of player records in the current dataset"))
	m.datasetLoadedUnix = auto.NewGauge(m.gaugeOpts("dataset_loaded_unixtime", "Unix time of the last dataset swap"))

	m.rankingsComputed = auto.NewCounterVec(
		m.counterOpts("rankings_computed_total", "Total number of percentile tables computed"),
		[]string{"role", "scope"},
	)
	m.rankingLatency = auto.NewHistogram(
		m.histogramOpts("ranking_latency_milliseconds", "Time to score, rank and select a role table", m.histogramBuckets),
	)
	m.populationSize = auto.NewHistogram(
		m.histogramOpts("population_size", "Number of players ranked per computation",
			[]float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000}),
	)
	m.emptyPopulations = auto.NewCounterVec(
		m.counterOpts("empty_populations_total", "Computations whose population was empty"),
		[]string{"role", "scope"},
	)
	m.duplicatesDropped = auto.NewCounter(
		m.counterOpts("duplicates_dropped_total", "Records dropped because their identity was already seen"),
	)

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByType = auto.NewCounterVec(
		m.counterOpts("errors_by_type_total", "Total number of errors by type"),
		[]string{"error_type", "severity"},
	)
	m.errorRateByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "Total number of errors by endpoint"),
		[]string{"endpoint", "method", "error_type"},
	)

	m.breakerState = auto.NewGaugeVec(
		m.gaugeOpts("breaker_state", "Circuit breaker state: 0 closed, 1 half-open, 2 open"),
		[]string{"name"},
	)
}

// RecordDatasetLoaded counts a successful load and publishes the player count.
func RecordDatasetLoaded(source string, players int, unix int64) {
	if !globalManager.enabled {
		return
	}
	globalManager.datasetLoads.WithLabelValues(source).Inc()
	globalManager.playersLoaded.Set(float64(players))
	globalManager.datasetLoadedUnix.Set(float64(unix))
}

// RecordDatasetLoadError counts a failed load.
func RecordDatasetLoadError(source string) {
	if !globalManager.enabled {
		return
	}
	globalManager.datasetLoadErrors.WithLabelValues(source).Inc()
}

// UpdatePlayersLoaded sets the current dataset size.
func UpdatePlayersLoaded(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.playersLoaded.Set(float64(count))
}

// RecordRankingComputed counts one computed table.
func RecordRankingComputed(role, scope string) {
	if !globalManager.enabled {
		return
	}
	globalManager.rankingsComputed.WithLabelValues(role, scope).Inc()
}

// RecordRankingLatency records end-to-end ranking latency in milliseconds.
func RecordRankingLatency(latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.rankingLatency.Observe(latencyMs)
}

// RecordPopulationSize observes how many players were ranked together.
func RecordPopulationSize(n int) {
	if !globalManager.enabled {
		return
	}
	globalManager.populationSize.Observe(float64(n))
}

// RecordEmptyPopulation counts a computation over no players.
func RecordEmptyPopulation(role, scope string) {
	if !globalManager.enabled {
		return
	}
	globalManager.emptyPopulations.WithLabelValues(role, scope).Inc()
}

// RecordDuplicatesDropped adds n dropped duplicate records.
func RecordDuplicatesDropped(n int) {
	if !globalManager.enabled || n <= 0 {
		return
	}
	globalManager.duplicatesDropped.Add(float64(n))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateBreakerState publishes a circuit breaker state (0 closed, 1 half-open, 2 open).
func UpdateBreakerState(name string, state int) {
	if !globalManager.enabled {
		return
	}
	globalManager.breakerState.WithLabelValues(name).Set(float64(state))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
