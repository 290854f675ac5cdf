package impact

import (
	"sort"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
)

// WorkflowImpact describes one affected business workflow: the workflow
// itself plus its impacted steps in order.
type WorkflowImpact struct {
	Workflow        model.BusinessWorkflow `json:"workflow"`
	ImpactedSteps   []model.WorkflowStep   `json:"impactedSteps"`
	ImpactedStepIDs []string               `json:"impactedStepIds"`
}

// StepImpacted reports whether a step references any component in the
// unavailable set. The set callers pass must be "impacted or offline": the
// propagator excludes roots from the impacted set proper, but a step that
// references an offline root directly is still down.
func StepImpacted(step model.WorkflowStep, unavailable map[string]bool) bool {
	for _, ref := range step.ComponentRefs() {
		if unavailable[ref] {
			return true
		}
	}
	return false
}

// ImpactedSteps returns the workflow's impacted steps sorted by Order.
func ImpactedSteps(w model.BusinessWorkflow, unavailable map[string]bool) []model.WorkflowStep {
	var impacted []model.WorkflowStep
	for _, step := range w.StepsByOrder() {
		if StepImpacted(step, unavailable) {
			impacted = append(impacted, step)
		}
	}
	return impacted
}

// AffectedWorkflows returns every workflow with at least one impacted step,
// ordered most severe first: by workflow criticality descending, then by
// impacted-step count descending.
func AffectedWorkflows(workflows []model.BusinessWorkflow, unavailable map[string]bool) []WorkflowImpact {
	var affected []WorkflowImpact
	for _, w := range workflows {
		steps := ImpactedSteps(w, unavailable)
		if len(steps) == 0 {
			continue
		}
		ids := make([]string, len(steps))
		for i, s := range steps {
			ids[i] = s.ID
		}
		affected = append(affected, WorkflowImpact{
			Workflow:        w,
			ImpactedSteps:   steps,
			ImpactedStepIDs: ids,
		})
	}

	sort.SliceStable(affected, func(i, j int) bool {
		ri, rj := affected[i].Workflow.Criticality.Rank(), affected[j].Workflow.Criticality.Rank()
		if ri != rj {
			return ri > rj
		}
		return len(affected[i].ImpactedSteps) > len(affected[j].ImpactedSteps)
	})

	return affected
}

// CondensedSteps is the reduced display view of a workflow under impact: each
// impacted step plus its immediate predecessor and successor in step order.
// The reduction never drops an impacted step. Steps are returned in order,
// each at most once.
func CondensedSteps(w model.BusinessWorkflow, unavailable map[string]bool) []model.WorkflowStep {
	steps := w.StepsByOrder()

	keep := make([]bool, len(steps))
	for i, step := range steps {
		if !StepImpacted(step, unavailable) {
			continue
		}
		keep[i] = true
		if i > 0 {
			keep[i-1] = true
		}
		if i+1 < len(steps) {
			keep[i+1] = true
		}
	}

	var condensed []model.WorkflowStep
	for i, step := range steps {
		if keep[i] {
			condensed = append(condensed, step)
		}
	}
	return condensed
}
