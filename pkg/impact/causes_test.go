package impact

import (
	"testing"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
)

func TestAttributeCauses_SingleRootDistances(t *testing.T) {
	components := []model.Component{
		comp("r", model.StatusOffline),
		comp("a", model.StatusOnline),
		comp("b", model.StatusOnline),
	}
	deps := []model.Dependency{
		dep("d1", "r", "a"),
		dep("d2", "a", "b"),
	}

	causes := AttributeCauses(components, deps)

	if c := causes["a"]; c.RootID != "r" || c.Hops != 1 {
		t.Errorf("cause[a] = %+v, want {r 1}", c)
	}
	if c := causes["b"]; c.RootID != "r" || c.Hops != 2 {
		t.Errorf("cause[b] = %+v, want {r 2}", c)
	}
	if _, ok := causes["r"]; ok {
		t.Error("root must not be attributed a cause by its own traversal")
	}
}

func TestAttributeCauses_NearestRootWins(t *testing.T) {
	// r1 reaches n in 2 hops, r2 in 3. Regardless of processing order the
	// recorded cause is r1.
	deps := []model.Dependency{
		dep("d1", "r1", "a"),
		dep("d2", "a", "n"),
		dep("d3", "r2", "b"),
		dep("d4", "b", "c"),
		dep("d5", "c", "n"),
	}

	for name, components := range map[string][]model.Component{
		"r1 first": {
			comp("r1", model.StatusOffline),
			comp("r2", model.StatusOffline),
			comp("a", model.StatusOnline),
			comp("b", model.StatusOnline),
			comp("c", model.StatusOnline),
			comp("n", model.StatusOnline),
		},
		"r2 first": {
			comp("r2", model.StatusOffline),
			comp("r1", model.StatusOffline),
			comp("a", model.StatusOnline),
			comp("b", model.StatusOnline),
			comp("c", model.StatusOnline),
			comp("n", model.StatusOnline),
		},
	} {
		t.Run(name, func(t *testing.T) {
			causes := AttributeCauses(components, deps)
			if c := causes["n"]; c.RootID != "r1" || c.Hops != 2 {
				t.Errorf("cause[n] = %+v, want {r1 2}", c)
			}
		})
	}
}

func TestAttributeCauses_EqualDistanceTieGoesToFirstRoot(t *testing.T) {
	// Both roots reach n in exactly 2 hops. The tie goes to whichever root
	// appears first in the component list.
	deps := []model.Dependency{
		dep("d1", "r1", "a"),
		dep("d2", "a", "n"),
		dep("d3", "r2", "b"),
		dep("d4", "b", "n"),
	}

	components := []model.Component{
		comp("r2", model.StatusOffline),
		comp("r1", model.StatusOffline),
		comp("a", model.StatusOnline),
		comp("b", model.StatusOnline),
		comp("n", model.StatusOnline),
	}

	causes := AttributeCauses(components, deps)
	if c := causes["n"]; c.RootID != "r2" || c.Hops != 2 {
		t.Errorf("cause[n] = %+v, want {r2 2}: equal distance resolves to first-processed root", c)
	}
}

func TestAttributeCauses_HopsAlwaysPositive(t *testing.T) {
	components := []model.Component{
		comp("r", model.StatusOffline),
		comp("a", model.StatusOnline),
		comp("b", model.StatusOnline),
	}
	deps := []model.Dependency{
		dep("d1", "r", "a"),
		dep("d2", "a", "b"),
		dep("d3", "b", "r"),
	}

	for id, c := range AttributeCauses(components, deps) {
		if c.Hops < 1 {
			t.Errorf("cause[%s].Hops = %d, want >= 1", id, c.Hops)
		}
	}
}

func TestAttributeCauses_DisjointSubgraphsNoCrossAttribution(t *testing.T) {
	components := []model.Component{
		comp("r1", model.StatusOffline),
		comp("r2", model.StatusOffline),
		comp("x", model.StatusOnline),
		comp("y", model.StatusOnline),
	}
	deps := []model.Dependency{
		dep("d1", "r1", "x"),
		dep("d2", "r2", "y"),
	}

	causes := AttributeCauses(components, deps)
	if c := causes["x"]; c.RootID != "r1" {
		t.Errorf("cause[x].RootID = %s, want r1", c.RootID)
	}
	if c := causes["y"]; c.RootID != "r2" {
		t.Errorf("cause[y].RootID = %s, want r2", c.RootID)
	}
}

func TestAttributeCauses_LaterRootStopsAtEarlierRoot(t *testing.T) {
	// r2 -> r1 -> a, with r1 processed first. r1 claims a at 1 hop; r2's
	// traversal reaches r1 but does not walk through it, so a keeps r1.
	components := []model.Component{
		comp("r1", model.StatusOffline),
		comp("r2", model.StatusOffline),
		comp("a", model.StatusOnline),
	}
	deps := []model.Dependency{
		dep("d1", "r2", "r1"),
		dep("d2", "r1", "a"),
	}

	causes := AttributeCauses(components, deps)
	if c := causes["a"]; c.RootID != "r1" || c.Hops != 1 {
		t.Errorf("cause[a] = %+v, want {r1 1}", c)
	}
	// r1 is itself downstream of r2 and is attributed like any reachable node.
	if c := causes["r1"]; c.RootID != "r2" || c.Hops != 1 {
		t.Errorf("cause[r1] = %+v, want {r2 1}", c)
	}
}

func TestAttributeCauses_NoOfflineComponents(t *testing.T) {
	components := []model.Component{comp("a", model.StatusOnline)}
	deps := []model.Dependency{dep("d1", "a", "a")}

	if causes := AttributeCauses(components, deps); len(causes) != 0 {
		t.Errorf("expected no attributions, got %v", causes)
	}
}
