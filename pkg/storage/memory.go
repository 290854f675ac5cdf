package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
)

// MemoryStore is the in-process Store implementation. It is safe for
// concurrent use; snapshots are deep copies so analysis never races a writer.
type MemoryStore struct {
	mu           sync.RWMutex
	components   map[string]model.Component
	dependencies map[string]model.Dependency
	workflows    map[string]model.BusinessWorkflow
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		components:   make(map[string]model.Component),
		dependencies: make(map[string]model.Dependency),
		workflows:    make(map[string]model.BusinessWorkflow),
	}
}

// NewMemoryStoreFromSnapshot seeds a store from a snapshot, typically one
// loaded from a snapshot file. Dependency endpoints are checked against the
// snapshot's own component set.
func NewMemoryStoreFromSnapshot(ctx context.Context, snap model.Snapshot) (*MemoryStore, error) {
	s := NewMemoryStore()
	for _, c := range snap.Components {
		if _, err := s.CreateComponent(ctx, c); err != nil {
			return nil, err
		}
	}
	for _, d := range snap.Dependencies {
		if _, err := s.CreateDependency(ctx, d); err != nil {
			return nil, err
		}
	}
	for _, w := range snap.Workflows {
		if _, err := s.CreateWorkflow(ctx, w); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *MemoryStore) CreateComponent(_ context.Context, c model.Component) (model.Component, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.New().String()
	} else if _, exists := s.components[c.ID]; exists {
		return model.Component{}, fmt.Errorf("component %s: already exists", c.ID)
	}
	c.LastUpdated = time.Now().UTC()
	s.components[c.ID] = copyComponent(c)
	return c, nil
}

func (s *MemoryStore) GetComponent(_ context.Context, id string) (model.Component, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.components[id]
	if !ok {
		return model.Component{}, fmt.Errorf("component %s: %w", id, ErrNotFound)
	}
	return copyComponent(c), nil
}

func (s *MemoryStore) UpdateComponent(_ context.Context, c model.Component) (model.Component, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.components[c.ID]; !ok {
		return model.Component{}, fmt.Errorf("component %s: %w", c.ID, ErrNotFound)
	}
	c.LastUpdated = time.Now().UTC()
	s.components[c.ID] = copyComponent(c)
	return c, nil
}

func (s *MemoryStore) DeleteComponent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.components[id]; !ok {
		return fmt.Errorf("component %s: %w", id, ErrNotFound)
	}
	for _, d := range s.dependencies {
		if d.SourceID == id || d.TargetID == id {
			return fmt.Errorf("component %s referenced by dependency %s: %w", id, d.ID, ErrReferentialIntegrity)
		}
	}
	delete(s.components, id)
	return nil
}

func (s *MemoryStore) ListComponents(_ context.Context) ([]model.Component, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.componentsLocked(), nil
}

func (s *MemoryStore) CreateDependency(_ context.Context, d model.Dependency) (model.Dependency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.ID == "" {
		d.ID = uuid.New().String()
	} else if _, exists := s.dependencies[d.ID]; exists {
		return model.Dependency{}, fmt.Errorf("dependency %s: already exists", d.ID)
	}
	if _, ok := s.components[d.SourceID]; !ok {
		return model.Dependency{}, fmt.Errorf("dependency %s source %s: %w", d.ID, d.SourceID, ErrReferentialIntegrity)
	}
	if _, ok := s.components[d.TargetID]; !ok {
		return model.Dependency{}, fmt.Errorf("dependency %s target %s: %w", d.ID, d.TargetID, ErrReferentialIntegrity)
	}
	s.dependencies[d.ID] = d
	return d, nil
}

func (s *MemoryStore) GetDependency(_ context.Context, id string) (model.Dependency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.dependencies[id]
	if !ok {
		return model.Dependency{}, fmt.Errorf("dependency %s: %w", id, ErrNotFound)
	}
	return d, nil
}

func (s *MemoryStore) DeleteDependency(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dependencies[id]; !ok {
		return fmt.Errorf("dependency %s: %w", id, ErrNotFound)
	}
	delete(s.dependencies, id)
	return nil
}

func (s *MemoryStore) ListDependencies(_ context.Context) ([]model.Dependency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dependenciesLocked(), nil
}

func (s *MemoryStore) CreateWorkflow(_ context.Context, w model.BusinessWorkflow) (model.BusinessWorkflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w.ID == "" {
		w.ID = uuid.New().String()
	} else if _, exists := s.workflows[w.ID]; exists {
		return model.BusinessWorkflow{}, fmt.Errorf("workflow %s: already exists", w.ID)
	}
	for i := range w.Steps {
		if w.Steps[i].ID == "" {
			w.Steps[i].ID = uuid.New().String()
		}
	}
	w.LastUpdated = time.Now().UTC()
	s.workflows[w.ID] = copyWorkflow(w)
	return w, nil
}

func (s *MemoryStore) GetWorkflow(_ context.Context, id string) (model.BusinessWorkflow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.workflows[id]
	if !ok {
		return model.BusinessWorkflow{}, fmt.Errorf("workflow %s: %w", id, ErrNotFound)
	}
	return copyWorkflow(w), nil
}

func (s *MemoryStore) UpdateWorkflow(_ context.Context, w model.BusinessWorkflow) (model.BusinessWorkflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.workflows[w.ID]; !ok {
		return model.BusinessWorkflow{}, fmt.Errorf("workflow %s: %w", w.ID, ErrNotFound)
	}
	w.LastUpdated = time.Now().UTC()
	s.workflows[w.ID] = copyWorkflow(w)
	return w, nil
}

func (s *MemoryStore) DeleteWorkflow(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.workflows[id]; !ok {
		return fmt.Errorf("workflow %s: %w", id, ErrNotFound)
	}
	delete(s.workflows, id)
	return nil
}

func (s *MemoryStore) ListWorkflows(_ context.Context) ([]model.BusinessWorkflow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workflowsLocked(), nil
}

func (s *MemoryStore) Snapshot(_ context.Context) (model.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.Snapshot{
		Components:   s.componentsLocked(),
		Dependencies: s.dependenciesLocked(),
		Workflows:    s.workflowsLocked(),
	}, nil
}

func (s *MemoryStore) Close() error { return nil }

// componentsLocked returns copies sorted by id for stable iteration order.
// Root processing order during cause attribution depends on it.
func (s *MemoryStore) componentsLocked() []model.Component {
	out := make([]model.Component, 0, len(s.components))
	for _, c := range s.components {
		out = append(out, copyComponent(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemoryStore) dependenciesLocked() []model.Dependency {
	out := make([]model.Dependency, 0, len(s.dependencies))
	for _, d := range s.dependencies {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemoryStore) workflowsLocked() []model.BusinessWorkflow {
	out := make([]model.BusinessWorkflow, 0, len(s.workflows))
	for _, w := range s.workflows {
		out = append(out, copyWorkflow(w))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func copyComponent(c model.Component) model.Component {
	if c.Metadata != nil {
		meta := make(map[string]string, len(c.Metadata))
		for k, v := range c.Metadata {
			meta[k] = v
		}
		c.Metadata = meta
	}
	return c
}

func copyWorkflow(w model.BusinessWorkflow) model.BusinessWorkflow {
	steps := make([]model.WorkflowStep, len(w.Steps))
	copy(steps, w.Steps)
	for i := range steps {
		if steps[i].ComponentIDs != nil {
			ids := make([]string, len(steps[i].ComponentIDs))
			copy(ids, steps[i].ComponentIDs)
			steps[i].ComponentIDs = ids
		}
	}
	w.Steps = steps
	return w
}
