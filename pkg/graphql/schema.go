// Package graphql exposes a read-only query surface over the component
// inventory and the impact analysis core.
package graphql

import (
	"fmt"
	"sort"

	"github.com/graphql-go/graphql"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/impact"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/storage"
)

// NewSchema builds the query schema over the given store. Every resolver
// reads a fresh snapshot; nothing is cached between queries.
func NewSchema(store storage.Store) (graphql.Schema, error) {
	componentType := newComponentType()
	causeType := newCauseType()
	resultType := newAnalysisResultType()

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "ok", nil
				},
			},
			"component": &graphql.Field{
				Type: componentType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.ID),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					c, err := store.GetComponent(p.Context, id)
					if err != nil {
						return nil, err
					}
					return c, nil
				},
			},
			"components": &graphql.Field{
				Type: graphql.NewList(componentType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return store.ListComponents(p.Context)
				},
			},
			"downstreamImpact": &graphql.Field{
				Type:        graphql.NewList(graphql.ID),
				Description: "Component ids impacted by the currently offline components",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					snap, err := store.Snapshot(p.Context)
					if err != nil {
						return nil, err
					}
					impacted := impact.ComputeDownstreamImpact(snap.Components, snap.Dependencies, nil)
					return sortedIDs(impacted), nil
				},
			},
			"impactCauses": &graphql.Field{
				Type:        graphql.NewList(causeType),
				Description: "Nearest offline root and hop distance for every impacted component",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					snap, err := store.Snapshot(p.Context)
					if err != nil {
						return nil, err
					}
					return causeEntries(impact.AttributeCauses(snap.Components, snap.Dependencies)), nil
				},
			},
			"analysisResults": &graphql.Field{
				Type: graphql.NewList(resultType),
				Args: graphql.FieldConfigArgument{
					"componentId": &graphql.ArgumentConfig{
						Type: graphql.ID,
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					snap, err := store.Snapshot(p.Context)
					if err != nil {
						return nil, err
					}
					scope := impact.ScopeAll
					if id, ok := p.Args["componentId"].(string); ok {
						scope = impact.Scope{ComponentID: id}
					}
					return impact.ComputeAnalysisResults(snap.Components, snap.Dependencies, snap.Workflows, scope), nil
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to create schema: %w", err)
	}
	return schema, nil
}

func newComponentType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Component",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":        &graphql.Field{Type: graphql.String},
			"type":        &graphql.Field{Type: graphql.String},
			"status":      &graphql.Field{Type: graphql.String},
			"criticality": &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
			"location":    &graphql.Field{Type: graphql.String},
			"owner":       &graphql.Field{Type: graphql.String},
			"vendor":      &graphql.Field{Type: graphql.String},
		},
	})
}

func newCauseType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "ImpactCause",
		Fields: graphql.Fields{
			"componentId": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"rootId":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"hops":        &graphql.Field{Type: graphql.Int},
		},
	})
}

func newAnalysisResultType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "AnalysisResult",
		Fields: graphql.Fields{
			"componentId":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"componentName":       &graphql.Field{Type: graphql.String},
			"directImpacts":       &graphql.Field{Type: graphql.NewList(graphql.ID)},
			"indirectImpacts":     &graphql.Field{Type: graphql.NewList(graphql.ID)},
			"affectedWorkflowIds": &graphql.Field{Type: graphql.NewList(graphql.ID)},
			"score":               &graphql.Field{Type: graphql.Float},
			"riskLevel":           &graphql.Field{Type: graphql.String},
		},
	})
}

// causeEntry flattens the cause map into a list shape GraphQL can serve.
type causeEntry struct {
	ComponentID string `json:"componentId"`
	RootID      string `json:"rootId"`
	Hops        int    `json:"hops"`
}

func causeEntries(causes map[string]impact.Cause) []causeEntry {
	entries := make([]causeEntry, 0, len(causes))
	for id, c := range causes {
		entries = append(entries, causeEntry{ComponentID: id, RootID: c.RootID, Hops: c.Hops})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ComponentID < entries[j].ComponentID })
	return entries
}

func sortedIDs(set map[string]bool) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
