// Package storage implements the persistence collaborator for the impact
// analysis core: CRUD by opaque string id over components, dependencies, and
// business workflows, plus consistent snapshot reads. Referential integrity
// of dependency endpoints is enforced here; the analysis core never checks it.
package storage

import (
	"context"
	"errors"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
)

var (
	// ErrNotFound is returned when no entity exists under the given id.
	ErrNotFound = errors.New("not found")
	// ErrReferentialIntegrity is returned when a dependency references a
	// component id that does not exist, or when deleting a component that
	// dependencies still reference.
	ErrReferentialIntegrity = errors.New("referential integrity violation")
)

// Store is the CRUD and snapshot surface the rest of the system consumes.
// Implementations assign ids on create when the entity arrives without one.
type Store interface {
	CreateComponent(ctx context.Context, c model.Component) (model.Component, error)
	GetComponent(ctx context.Context, id string) (model.Component, error)
	UpdateComponent(ctx context.Context, c model.Component) (model.Component, error)
	DeleteComponent(ctx context.Context, id string) error
	ListComponents(ctx context.Context) ([]model.Component, error)

	CreateDependency(ctx context.Context, d model.Dependency) (model.Dependency, error)
	GetDependency(ctx context.Context, id string) (model.Dependency, error)
	DeleteDependency(ctx context.Context, id string) error
	ListDependencies(ctx context.Context) ([]model.Dependency, error)

	CreateWorkflow(ctx context.Context, w model.BusinessWorkflow) (model.BusinessWorkflow, error)
	GetWorkflow(ctx context.Context, id string) (model.BusinessWorkflow, error)
	UpdateWorkflow(ctx context.Context, w model.BusinessWorkflow) (model.BusinessWorkflow, error)
	DeleteWorkflow(ctx context.Context, id string) error
	ListWorkflows(ctx context.Context) ([]model.BusinessWorkflow, error)

	// Snapshot returns a consistent copy of everything the analysis core
	// consumes. The returned value shares no mutable state with the store.
	Snapshot(ctx context.Context) (model.Snapshot, error)

	Close() error
}
