package impact

import (
	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
)

// BuildForwardAdjacency turns a flat list of dependency edges into a forward
// adjacency map: component id -> ordered list of direct successor ids.
//
// When allowed is non-nil, edges with either endpoint outside the allow-set
// are skipped entirely. This is a visibility filter, not an error: callers use
// it to restrict analysis to the subset of the graph a user may see.
//
// No edge deduplication is performed; parallel edges appear twice in the
// successor list. Callers that need set semantics deduplicate downstream.
func BuildForwardAdjacency(deps []model.Dependency, allowed map[string]bool) map[string][]string {
	adjacency := make(map[string][]string, len(deps))
	for _, d := range deps {
		if allowed != nil && (!allowed[d.SourceID] || !allowed[d.TargetID]) {
			continue
		}
		adjacency[d.SourceID] = append(adjacency[d.SourceID], d.TargetID)
	}
	return adjacency
}

// OfflineRoots returns the ids of all components currently offline, in
// component-list order. That order is load-bearing: cause attribution breaks
// equal-distance ties in favour of the first-processed root.
func OfflineRoots(components []model.Component) []string {
	var roots []string
	for _, c := range components {
		if c.Status == model.StatusOffline {
			roots = append(roots, c.ID)
		}
	}
	return roots
}
