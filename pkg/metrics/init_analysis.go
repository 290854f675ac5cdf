package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "impactnav_analyses_total",
			Help: "Total number of impact analyses executed",
		},
		[]string{"analysis_type", "status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "impactnav_analysis_duration_seconds",
			Help:    "Impact analysis duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"analysis_type"},
	)

	r.ImpactedComponents = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "impactnav_impacted_components",
			Help:    "Number of impacted components per analysis",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
		[]string{"analysis_type"},
	)

	r.AffectedWorkflows = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "impactnav_affected_workflows",
			Help:    "Number of affected workflows per analysis",
			Buckets: []float64{1, 2, 5, 10, 25, 50},
		},
	)

	r.OfflineRootsAnalyzed = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "impactnav_offline_roots",
			Help:    "Number of offline root components per analysis",
			Buckets: []float64{1, 2, 5, 10, 25, 50},
		},
	)
}
