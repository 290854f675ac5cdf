package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if r.HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal not initialized")
	}
	if r.AnalysesTotal == nil {
		t.Error("AnalysesTotal not initialized")
	}
	if r.SnapshotComponents == nil {
		t.Error("SnapshotComponents not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	r1 := DefaultRegistry()
	r2 := DefaultRegistry()

	if r1 != r2 {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordAnalysis(t *testing.T) {
	r := NewRegistry()

	r.RecordAnalysis("downstream", "ok", 2*time.Millisecond, 12)
	r.RecordAnalysis("downstream", "ok", 5*time.Millisecond, 3)
	r.RecordAnalysis("what-if", "error", time.Millisecond, 0)

	counter, err := r.AnalysesTotal.GetMetricWithLabelValues("downstream", "ok")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}

	if metric.Counter.GetValue() != 2 {
		t.Errorf("Counter value = %v, want 2", metric.Counter.GetValue())
	}
}

func TestRecordSnapshot(t *testing.T) {
	r := NewRegistry()

	snap := model.Snapshot{
		Components:   make([]model.Component, 4),
		Dependencies: make([]model.Dependency, 7),
		Workflows:    make([]model.BusinessWorkflow, 2),
	}
	r.RecordSnapshot("memory", snap)

	var metric dto.Metric
	if err := r.SnapshotDependencies.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() != 7 {
		t.Errorf("SnapshotDependencies = %v, want 7", metric.Gauge.GetValue())
	}

	loads, err := r.SnapshotLoadsTotal.GetMetricWithLabelValues("memory", "ok")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if err := loads.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 1 {
		t.Errorf("SnapshotLoadsTotal = %v, want 1", metric.Counter.GetValue())
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	r := NewRegistry()

	r.RecordHTTPRequest("GET", "/components", "200", 10*time.Millisecond)

	counter, err := r.HTTPRequestsTotal.GetMetricWithLabelValues("GET", "/components", "200")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 1 {
		t.Errorf("Counter value = %v, want 1", metric.Counter.GetValue())
	}
}
