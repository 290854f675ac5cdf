package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// HTTP Metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Analysis Metrics
	AnalysesTotal        *prometheus.CounterVec
	AnalysisDuration     *prometheus.HistogramVec
	ImpactedComponents   *prometheus.HistogramVec
	AffectedWorkflows    prometheus.Histogram
	OfflineRootsAnalyzed prometheus.Histogram

	// Snapshot Metrics
	SnapshotComponents   prometheus.Gauge
	SnapshotDependencies prometheus.Gauge
	SnapshotWorkflows    prometheus.Gauge
	SnapshotLoadsTotal   *prometheus.CounterVec

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initHTTPMetrics()
	r.initAnalysisMetrics()
	r.initSnapshotMetrics()

	return r
}

// PrometheusRegistry returns the underlying Prometheus registry, for
// exposition via promhttp.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}
