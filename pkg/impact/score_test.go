package impact

import (
	"testing"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
)

func affectedFixture(crits ...model.Criticality) []WorkflowImpact {
	out := make([]WorkflowImpact, len(crits))
	for i, c := range crits {
		out[i] = WorkflowImpact{Workflow: model.BusinessWorkflow{ID: "w", Criticality: c}}
	}
	return out
}

func TestScore_Deterministic(t *testing.T) {
	c := comp("a", model.StatusOnline)
	affected := affectedFixture(model.CriticalityHigh)

	first := Score(c, 3, 7, affected)
	for i := 0; i < 5; i++ {
		if got := Score(c, 3, 7, affected); got != first {
			t.Fatalf("score changed between invocations: %v vs %v", got, first)
		}
	}
}

func TestScore_MonotonicInEachInput(t *testing.T) {
	base := comp("a", model.StatusOnline)
	base.Criticality = model.CriticalityLow
	affected := affectedFixture(model.CriticalityMedium)
	baseline := Score(base, 2, 4, affected)

	if got := Score(base, 3, 4, affected); got < baseline {
		t.Errorf("more direct impacts lowered the score: %v < %v", got, baseline)
	}
	if got := Score(base, 2, 5, affected); got < baseline {
		t.Errorf("more indirect impacts lowered the score: %v < %v", got, baseline)
	}
	if got := Score(base, 2, 4, affectedFixture(model.CriticalityMedium, model.CriticalityLow)); got < baseline {
		t.Errorf("an additional affected workflow lowered the score: %v < %v", got, baseline)
	}
	if got := Score(base, 2, 4, affectedFixture(model.CriticalityCritical)); got < baseline {
		t.Errorf("a more critical workflow lowered the score: %v < %v", got, baseline)
	}

	higher := base
	higher.Criticality = model.CriticalityCritical
	if got := Score(higher, 2, 4, affected); got < baseline {
		t.Errorf("higher own criticality lowered the score: %v < %v", got, baseline)
	}
}

func TestRiskLevelFor_Thresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  RiskLevel
	}{
		{0, RiskLow},
		{riskMediumThreshold - 0.1, RiskLow},
		{riskMediumThreshold, RiskMedium},
		{riskHighThreshold - 0.1, RiskMedium},
		{riskHighThreshold, RiskHigh},
		{riskCriticalThreshold - 0.1, RiskHigh},
		{riskCriticalThreshold, RiskCritical},
		{riskCriticalThreshold * 10, RiskCritical},
	}

	for _, tt := range tests {
		if got := RiskLevelFor(tt.score); got != tt.want {
			t.Errorf("RiskLevelFor(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestScore_IsolatedComponent(t *testing.T) {
	c := comp("lonely", model.StatusOnline)
	c.Criticality = model.CriticalityLow

	score := Score(c, 0, 0, nil)
	if score != ownCriticalityWeight {
		t.Errorf("isolated low-criticality component score = %v, want %v", score, ownCriticalityWeight)
	}
	if RiskLevelFor(score) != RiskLow {
		t.Errorf("isolated component risk = %s, want low", RiskLevelFor(score))
	}
}
