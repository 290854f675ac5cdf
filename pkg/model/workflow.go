package model

import (
	"sort"
	"time"
)

// WorkflowStep is one ordered step inside a business workflow.
//
// ComponentID is the legacy single-component reference; ComponentIDs is the
// newer multi-component list. Consumers must honour both: the effective
// reference set is the deduplicated union of the two fields.
type WorkflowStep struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	Order              int      `json:"order"`
	ComponentID        string   `json:"componentId,omitempty"`
	ComponentIDs       []string `json:"componentIds,omitempty"`
	FallbackWorkflowID string   `json:"fallbackWorkflowId,omitempty"`
}

// ComponentRefs returns the deduplicated union of the legacy single-component
// reference and the multi-component list, in first-seen order.
func (s WorkflowStep) ComponentRefs() []string {
	seen := make(map[string]bool, len(s.ComponentIDs)+1)
	refs := make([]string, 0, len(s.ComponentIDs)+1)
	if s.ComponentID != "" {
		seen[s.ComponentID] = true
		refs = append(refs, s.ComponentID)
	}
	for _, id := range s.ComponentIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, id)
	}
	return refs
}

// BusinessWorkflow is an ordered business process built from steps that
// reference infrastructure components.
type BusinessWorkflow struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description,omitempty"`
	BusinessProcess string         `json:"businessProcess,omitempty"`
	Criticality     Criticality    `json:"criticality"`
	Owner           string         `json:"owner,omitempty"`
	LastUpdated     time.Time      `json:"lastUpdated"`
	Steps           []WorkflowStep `json:"steps"`
}

// StepsByOrder returns the workflow's steps sorted ascending by Order.
// Order values need not be contiguous. The receiver is not mutated.
func (w BusinessWorkflow) StepsByOrder() []WorkflowStep {
	steps := make([]WorkflowStep, len(w.Steps))
	copy(steps, w.Steps)
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Order < steps[j].Order
	})
	return steps
}

// Snapshot is a consistent read of everything the analysis core consumes.
type Snapshot struct {
	Components   []Component        `json:"components"`
	Dependencies []Dependency       `json:"dependencies"`
	Workflows    []BusinessWorkflow `json:"workflows"`
}
