package graphql

import (
	"context"
	"testing"

	"github.com/graphql-go/graphql"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/storage"
)

func setupTestStore(t *testing.T) *storage.MemoryStore {
	t.Helper()
	ctx := context.Background()

	snap := model.Snapshot{
		Components: []model.Component{
			{ID: "lb-1", Name: "edge lb", Type: model.TypeLoadBalancer, Status: model.StatusOffline, Criticality: model.CriticalityCritical},
			{ID: "api-1", Name: "public api", Type: model.TypeAPI, Status: model.StatusOnline, Criticality: model.CriticalityHigh},
			{ID: "db-1", Name: "orders db", Type: model.TypeDatabase, Status: model.StatusOnline, Criticality: model.CriticalityCritical},
		},
		Dependencies: []model.Dependency{
			{ID: "d1", SourceID: "lb-1", TargetID: "api-1", Type: model.DepFeeds},
			{ID: "d2", SourceID: "api-1", TargetID: "db-1", Type: model.DepUses},
		},
	}

	store, err := storage.NewMemoryStoreFromSnapshot(ctx, snap)
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return store
}

func execute(t *testing.T, store storage.Store, query string) map[string]interface{} {
	t.Helper()

	schema, err := NewSchema(store)
	if err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       context.Background(),
	})
	if len(result.Errors) > 0 {
		t.Fatalf("query errors: %v", result.Errors)
	}
	data, ok := result.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data shape: %T", result.Data)
	}
	return data
}

func TestSchema_Health(t *testing.T) {
	data := execute(t, setupTestStore(t), `{ health }`)
	if data["health"] != "ok" {
		t.Errorf("health = %v, want ok", data["health"])
	}
}

func TestSchema_ComponentByID(t *testing.T) {
	data := execute(t, setupTestStore(t), `{ component(id: "db-1") { id name status } }`)

	component, ok := data["component"].(map[string]interface{})
	if !ok {
		t.Fatalf("component = %v", data["component"])
	}
	if component["name"] != "orders db" {
		t.Errorf("name = %v, want orders db", component["name"])
	}
	if component["status"] != "online" {
		t.Errorf("status = %v, want online", component["status"])
	}
}

func TestSchema_DownstreamImpact(t *testing.T) {
	data := execute(t, setupTestStore(t), `{ downstreamImpact }`)

	impacted, ok := data["downstreamImpact"].([]interface{})
	if !ok {
		t.Fatalf("downstreamImpact = %v", data["downstreamImpact"])
	}
	// lb-1 is offline: api-1 and db-1 are downstream, sorted by id.
	if len(impacted) != 2 || impacted[0] != "api-1" || impacted[1] != "db-1" {
		t.Errorf("downstreamImpact = %v, want [api-1 db-1]", impacted)
	}
}

func TestSchema_ImpactCauses(t *testing.T) {
	data := execute(t, setupTestStore(t), `{ impactCauses { componentId rootId hops } }`)

	causes, ok := data["impactCauses"].([]interface{})
	if !ok {
		t.Fatalf("impactCauses = %v", data["impactCauses"])
	}
	if len(causes) != 2 {
		t.Fatalf("got %d causes, want 2", len(causes))
	}
	first := causes[0].(map[string]interface{})
	if first["componentId"] != "api-1" || first["rootId"] != "lb-1" || first["hops"] != 1 {
		t.Errorf("first cause = %v, want api-1 from lb-1 at 1 hop", first)
	}
}

func TestSchema_AnalysisResultsScoped(t *testing.T) {
	data := execute(t, setupTestStore(t), `{ analysisResults(componentId: "api-1") { componentId directImpacts riskLevel } }`)

	results, ok := data["analysisResults"].([]interface{})
	if !ok || len(results) != 1 {
		t.Fatalf("analysisResults = %v, want a single result", data["analysisResults"])
	}
	r := results[0].(map[string]interface{})
	if r["componentId"] != "api-1" {
		t.Errorf("componentId = %v, want api-1", r["componentId"])
	}
	direct, _ := r["directImpacts"].([]interface{})
	if len(direct) != 1 || direct[0] != "db-1" {
		t.Errorf("directImpacts = %v, want [db-1]", direct)
	}
}
