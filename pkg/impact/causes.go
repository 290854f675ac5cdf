package impact

import (
	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
)

// Cause records which offline root explains a node's impact and how far away
// that root is. Hops is always >= 1: a root is a cause, never its own effect.
type Cause struct {
	RootID string `json:"rootId"`
	Hops   int    `json:"hops"`
}

type hopEntry struct {
	id   string
	hops int
}

// AttributeCauses maps every node reachable downstream of any offline
// component to its nearest offline root and the hop distance to it.
//
// Each offline root runs its own BFS, in component-list order. A per-root
// visited set keeps the individual traversal linear; a global claimed set
// prunes re-expansion of subtrees an earlier root has already walked. Pruning
// is an optimization, but the order it imposes is part of the contract: when
// two roots reach a node at the same minimum distance, the recorded cause is
// whichever root was processed first. Only a strictly shorter distance
// overwrites an existing attribution. Each root joins the claimed set after
// its own traversal completes, so later roots stop at earlier roots rather
// than walking through them.
func AttributeCauses(components []model.Component, deps []model.Dependency) map[string]Cause {
	adjacency := BuildForwardAdjacency(deps, nil)
	causes := make(map[string]Cause)
	claimed := make(map[string]bool)

	for _, root := range OfflineRoots(components) {
		visited := map[string]bool{root: true}
		queue := []hopEntry{{id: root, hops: 0}}

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			for _, next := range adjacency[current.id] {
				if visited[next] {
					continue
				}
				visited[next] = true

				hops := current.hops + 1
				if prev, ok := causes[next]; !ok || hops < prev.Hops {
					causes[next] = Cause{RootID: root, Hops: hops}
				}

				if claimed[next] {
					continue
				}
				claimed[next] = true
				queue = append(queue, hopEntry{id: next, hops: hops})
			}
		}

		claimed[root] = true
	}

	return causes
}
