package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSnapshotMetrics() {
	r.SnapshotComponents = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "impactnav_snapshot_components",
			Help: "Number of components in the last snapshot read",
		},
	)

	r.SnapshotDependencies = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "impactnav_snapshot_dependencies",
			Help: "Number of dependencies in the last snapshot read",
		},
	)

	r.SnapshotWorkflows = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "impactnav_snapshot_workflows",
			Help: "Number of workflows in the last snapshot read",
		},
	)

	r.SnapshotLoadsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "impactnav_snapshot_loads_total",
			Help: "Total number of snapshot reads by source and status",
		},
		[]string{"source", "status"},
	)
}
