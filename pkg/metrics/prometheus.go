// Package metrics provides Prometheus metrics for the squads service.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Balance outcomes used as the "outcome" label.
const (
	OutcomeOK           = "ok"
	OutcomeInvalidCount = "invalid_count"
	OutcomeError        = "error"
)

// Manager manages all Prometheus metrics for the squads service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Balancing
	balanceRuns     *prometheus.CounterVec
	balanceLatency  *prometheus.HistogramVec
	playersAssigned prometheus.Counter
	playersLeftover prometheus.Counter
	squadSpread     *prometheus.GaugeVec
	waitingListSize prometheus.Gauge
	rosterLoads     *prometheus.CounterVec
	playersRejected prometheus.Counter

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
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
		namespace:        "squads",
		subsystem:        "balancer",
		histogramBuckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, Buckets: buckets, ConstLabels: m.constLabels}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.balanceRuns = auto.NewCounterVec(
		m.counterOpts("runs_total", "Balancing runs by strategy and outcome"),
		[]string{"strategy", "outcome"},
	)
	m.balanceLatency = auto.NewHistogramVec(
		m.histogramOpts("run_duration_milliseconds", "Balancing run duration in milliseconds", m.histogramBuckets),
		[]string{"strategy"},
	)
	m.playersAssigned = auto.NewCounter(m.counterOpts("players_assigned_total", "Players placed into squads"))
	m.playersLeftover = auto.NewCounter(m.counterOpts("players_leftover_total", "Players left on the waiting list by the size remainder"))
	m.squadSpread = auto.NewGaugeVec(
		m.gaugeOpts("squad_spread", "Gap between the strongest and weakest squad total in the latest run"),
		[]string{"skill"},
	)
	m.waitingListSize = auto.NewGauge(m.gaugeOpts("waiting_list_size", "Players currently on the waiting list"))
	m.rosterLoads = auto.NewCounterVec(
		m.counterOpts("roster_loads_total", "Roster documents loaded by source and outcome"),
		[]string{"source", "outcome"},
	)
	m.playersRejected = auto.NewCounter(m.counterOpts("players_rejected_total", "Players rejected while loading rosters"))

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)
	m.errorRateByType = auto.NewCounterVec(
		m.counterOpts("errors_by_type_total", "Errors by type and severity"),
		[]string{"error_type", "severity"},
	)
	m.errorRateByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "Errors by endpoint and method"),
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(m.histogramOpts(
		"system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
		[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	))
}

// RecordBalance records one balancing run.
func (m *Manager) RecordBalance(strategy, outcome string, durationMs float64) error {
	switch outcome {
	case OutcomeOK, OutcomeInvalidCount, OutcomeError:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutcome, outcome)
	}
	m.balanceRuns.WithLabelValues(strategy, outcome).Inc()
	m.balanceLatency.WithLabelValues(strategy).Observe(durationMs)
	return nil
}

// RecordBalance records a balancing run on the global manager.
func RecordBalance(strategy, outcome string, durationMs float64) error {
	return globalManager.RecordBalance(strategy, outcome, durationMs)
}

// RecordAssignment adds the assigned and leftover player counts of a run.
func RecordAssignment(assigned, leftover int) {
	globalManager.playersAssigned.Add(float64(assigned))
	globalManager.playersLeftover.Add(float64(leftover))
}

// UpdateSquadSpread sets the latest per-skill spread.
func UpdateSquadSpread(skill string, spread int) {
	globalManager.squadSpread.WithLabelValues(skill).Set(float64(spread))
}

// UpdateWaitingListSize sets the waiting list gauge.
func UpdateWaitingListSize(size int) {
	globalManager.waitingListSize.Set(float64(size))
}

// RecordRosterLoad counts a roster load and the players it rejected.
func RecordRosterLoad(source, outcome string, rejected int) {
	globalManager.rosterLoads.WithLabelValues(source, outcome).Inc()
	if rejected > 0 {
		globalManager.playersRejected.Add(float64(rejected))
	}
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByType records an error by type and severity.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error by endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage updates system memory usage.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount updates goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
