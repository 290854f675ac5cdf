package impact

import (
	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
)

// RiskLevel is the discrete severity label derived from a business-impact
// score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Scoring weights. The score is monotonically non-decreasing in each input:
// direct impact count, indirect impact count, affected workflows (weighted by
// workflow criticality), and the analyzed component's own criticality.
const (
	directImpactWeight   = 10.0
	indirectImpactWeight = 4.0
	workflowBaseWeight   = 8.0 // multiplied by the workflow's criticality rank
	ownCriticalityWeight = 5.0 // multiplied by the component's criticality rank
)

// Risk-level thresholds over the score. Boundary values belong to the higher
// level: score >= riskCriticalThreshold is critical, and so on down.
const (
	riskMediumThreshold   = 25.0
	riskHighThreshold     = 60.0
	riskCriticalThreshold = 120.0
)

// Score computes the deterministic business-impact score for one analyzed
// component.
func Score(component model.Component, directCount, indirectCount int, affected []WorkflowImpact) float64 {
	score := directImpactWeight*float64(directCount) +
		indirectImpactWeight*float64(indirectCount) +
		ownCriticalityWeight*float64(component.Criticality.Rank())
	for _, wi := range affected {
		score += workflowBaseWeight * float64(wi.Workflow.Criticality.Rank())
	}
	return score
}

// RiskLevelFor maps a score to its discrete risk level.
func RiskLevelFor(score float64) RiskLevel {
	switch {
	case score >= riskCriticalThreshold:
		return RiskCritical
	case score >= riskHighThreshold:
		return RiskHigh
	case score >= riskMediumThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}
