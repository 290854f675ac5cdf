package impact

import (
	"sort"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
)

// AnalysisResult is the per-component outcome of a what-if analysis: what
// goes down if this component goes offline, and how bad that is. It is fully
// recomputed on every invocation and never persisted.
type AnalysisResult struct {
	ComponentID         string    `json:"componentId"`
	ComponentName       string    `json:"componentName"`
	DirectImpacts       []string  `json:"directImpacts"`
	IndirectImpacts     []string  `json:"indirectImpacts"`
	AffectedWorkflowIDs []string  `json:"affectedWorkflowIds"`
	Score               float64   `json:"score"`
	RiskLevel           RiskLevel `json:"riskLevel"`
}

// Scope selects which components an analysis covers. An empty ComponentID
// means all components.
type Scope struct {
	ComponentID string
}

// ScopeAll covers every component in the snapshot.
var ScopeAll = Scope{}

// ComputeAnalysisResults runs the full what-if pipeline for each in-scope
// component: adjacency build, downstream propagation rooted at the analyzed
// component, workflow impact mapping, and scoring. Results for the
// all-components scope are ordered most severe first (score descending, id
// ascending on ties).
func ComputeAnalysisResults(components []model.Component, deps []model.Dependency, workflows []model.BusinessWorkflow, scope Scope) []AnalysisResult {
	adjacency := BuildForwardAdjacency(deps, nil)

	var results []AnalysisResult
	for _, c := range components {
		if scope.ComponentID != "" && c.ID != scope.ComponentID {
			continue
		}
		results = append(results, analyzeComponent(c, adjacency, workflows))
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ComponentID < results[j].ComponentID
	})

	return results
}

func analyzeComponent(c model.Component, adjacency map[string][]string, workflows []model.BusinessWorkflow) AnalysisResult {
	// Direct impacts are the deduplicated one-hop successors. Self-loops are
	// inert: a component is never its own impact.
	seen := map[string]bool{c.ID: true}
	var direct []string
	for _, next := range adjacency[c.ID] {
		if seen[next] {
			continue
		}
		seen[next] = true
		direct = append(direct, next)
	}

	stop := map[string]bool{c.ID: true}
	reachable := Propagate([]string{c.ID}, adjacency, stop)

	directSet := make(map[string]bool, len(direct))
	for _, id := range direct {
		directSet[id] = true
	}
	var indirect []string
	for id := range reachable {
		if !directSet[id] {
			indirect = append(indirect, id)
		}
	}
	sort.Strings(indirect)

	// Workflow membership checks against "impacted or offline": the analyzed
	// component counts as the offline cause here.
	unavailable := make(map[string]bool, len(reachable)+1)
	for id := range reachable {
		unavailable[id] = true
	}
	unavailable[c.ID] = true

	affected := AffectedWorkflows(workflows, unavailable)
	workflowIDs := make([]string, len(affected))
	for i, wi := range affected {
		workflowIDs[i] = wi.Workflow.ID
	}

	score := Score(c, len(direct), len(indirect), affected)

	return AnalysisResult{
		ComponentID:         c.ID,
		ComponentName:       c.Name,
		DirectImpacts:       direct,
		IndirectImpacts:     indirect,
		AffectedWorkflowIDs: workflowIDs,
		Score:               score,
		RiskLevel:           RiskLevelFor(score),
	}
}
