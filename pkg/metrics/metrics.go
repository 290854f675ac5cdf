package metrics

import (
	"time"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
)

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordAnalysis records one impact analysis run. analysisType distinguishes
// the downstream-impact computation from the per-component what-if analysis.
func (r *Registry) RecordAnalysis(analysisType, status string, duration time.Duration, impactedCount int) {
	r.AnalysesTotal.WithLabelValues(analysisType, status).Inc()
	r.AnalysisDuration.WithLabelValues(analysisType).Observe(duration.Seconds())
	r.ImpactedComponents.WithLabelValues(analysisType).Observe(float64(impactedCount))
}

// RecordWorkflowImpact records the breadth of workflow impact for one run.
func (r *Registry) RecordWorkflowImpact(affectedWorkflows, offlineRoots int) {
	r.AffectedWorkflows.Observe(float64(affectedWorkflows))
	r.OfflineRootsAnalyzed.Observe(float64(offlineRoots))
}

// RecordSnapshot updates the snapshot gauges after a successful read.
func (r *Registry) RecordSnapshot(source string, snap model.Snapshot) {
	r.SnapshotComponents.Set(float64(len(snap.Components)))
	r.SnapshotDependencies.Set(float64(len(snap.Dependencies)))
	r.SnapshotWorkflows.Set(float64(len(snap.Workflows)))
	r.SnapshotLoadsTotal.WithLabelValues(source, "ok").Inc()
}

// RecordSnapshotError counts a failed snapshot read.
func (r *Registry) RecordSnapshotError(source string) {
	r.SnapshotLoadsTotal.WithLabelValues(source, "error").Inc()
}
