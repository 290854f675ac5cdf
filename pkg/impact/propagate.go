package impact

import (
	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
)

// Propagate performs a multi-source breadth-first traversal from roots across
// the forward adjacency map and returns the set of downstream-impacted ids.
//
// The visited set is seeded with the roots, so a root is never re-emitted as
// impacted by another root. Members of stop (conventionally the root set
// itself) are marked visited but neither added to the result nor enqueued:
// the traversal does not continue past them. Each node is visited at most
// once, which bounds the work at O(V+E) and guarantees termination on cyclic
// graphs. An empty root slice yields an empty set.
func Propagate(roots []string, adjacency map[string][]string, stop map[string]bool) map[string]bool {
	impacted := make(map[string]bool)
	if len(roots) == 0 {
		return impacted
	}

	visited := make(map[string]bool, len(roots))
	queue := make([]string, 0, len(roots))
	for _, r := range roots {
		if visited[r] {
			continue
		}
		visited[r] = true
		queue = append(queue, r)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range adjacency[current] {
			if visited[next] {
				continue
			}
			visited[next] = true
			if stop[next] {
				continue
			}
			impacted[next] = true
			queue = append(queue, next)
		}
	}

	return impacted
}

// ComputeDownstreamImpact is the convenience composition used by callers that
// hold a raw snapshot: extract the offline roots, build adjacency, propagate.
// When visibleIDs is non-nil, both the graph and the root set are restricted
// to the visible subset.
func ComputeDownstreamImpact(components []model.Component, deps []model.Dependency, visibleIDs map[string]bool) map[string]bool {
	adjacency := BuildForwardAdjacency(deps, visibleIDs)

	roots := OfflineRoots(components)
	if visibleIDs != nil {
		filtered := roots[:0]
		for _, r := range roots {
			if visibleIDs[r] {
				filtered = append(filtered, r)
			}
		}
		roots = filtered
	}

	stop := make(map[string]bool, len(roots))
	for _, r := range roots {
		stop[r] = true
	}

	return Propagate(roots, adjacency, stop)
}
