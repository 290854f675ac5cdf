package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
)

// foreignKeyViolation is the PostgreSQL error code for FK failures; the
// database enforces dependency endpoint integrity.
const foreignKeyViolation = "23503"

// querier abstracts pool and transaction for the shared read queries.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func wrapPGError(err error, entity, id string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%s %s: %w", entity, id, ErrReferentialIntegrity)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
	}
	return fmt.Errorf("%s %s: %w", entity, id, err)
}

func (s *PGStore) CreateComponent(ctx context.Context, c model.Component) (model.Component, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.LastUpdated = time.Now().UTC()

	metadataJSON, err := json.Marshal(c.Metadata)
	if err != nil {
		return model.Component{}, fmt.Errorf("failed to marshal metadata: %w", err)
	}

	query := `
		INSERT INTO components (id, name, type, status, criticality, description, location, owner, vendor, last_updated, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = s.pool.Exec(ctx, query,
		c.ID, c.Name, c.Type, c.Status, c.Criticality,
		c.Description, c.Location, c.Owner, c.Vendor, c.LastUpdated, metadataJSON,
	)
	if err != nil {
		return model.Component{}, wrapPGError(err, "component", c.ID)
	}
	return c, nil
}

func (s *PGStore) GetComponent(ctx context.Context, id string) (model.Component, error) {
	query := `
		SELECT id, name, type, status, criticality, description, location, owner, vendor, last_updated, metadata
		FROM components
		WHERE id = $1
	`
	var c model.Component
	var metadataJSON []byte
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Type, &c.Status, &c.Criticality,
		&c.Description, &c.Location, &c.Owner, &c.Vendor, &c.LastUpdated, &metadataJSON,
	)
	if err != nil {
		return model.Component{}, wrapPGError(err, "component", id)
	}
	if err := json.Unmarshal(metadataJSON, &c.Metadata); err != nil {
		return model.Component{}, fmt.Errorf("failed to unmarshal metadata: %w", err)
	}
	return c, nil
}

func (s *PGStore) UpdateComponent(ctx context.Context, c model.Component) (model.Component, error) {
	c.LastUpdated = time.Now().UTC()
	metadataJSON, err := json.Marshal(c.Metadata)
	if err != nil {
		return model.Component{}, fmt.Errorf("failed to marshal metadata: %w", err)
	}

	query := `
		UPDATE components
		SET name = $2, type = $3, status = $4, criticality = $5, description = $6,
		    location = $7, owner = $8, vendor = $9, last_updated = $10, metadata = $11
		WHERE id = $1
	`
	tag, err := s.pool.Exec(ctx, query,
		c.ID, c.Name, c.Type, c.Status, c.Criticality,
		c.Description, c.Location, c.Owner, c.Vendor, c.LastUpdated, metadataJSON,
	)
	if err != nil {
		return model.Component{}, wrapPGError(err, "component", c.ID)
	}
	if tag.RowsAffected() == 0 {
		return model.Component{}, fmt.Errorf("component %s: %w", c.ID, ErrNotFound)
	}
	return c, nil
}

func (s *PGStore) DeleteComponent(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM components WHERE id = $1`, id)
	if err != nil {
		return wrapPGError(err, "component", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("component %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *PGStore) ListComponents(ctx context.Context) ([]model.Component, error) {
	return queryComponents(ctx, s.pool)
}

func queryComponents(ctx context.Context, q querier) ([]model.Component, error) {
	query := `
		SELECT id, name, type, status, criticality, description, location, owner, vendor, last_updated, metadata
		FROM components
		ORDER BY id
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query components: %w", err)
	}
	defer rows.Close()

	var out []model.Component
	for rows.Next() {
		var c model.Component
		var metadataJSON []byte
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Type, &c.Status, &c.Criticality,
			&c.Description, &c.Location, &c.Owner, &c.Vendor, &c.LastUpdated, &metadataJSON,
		); err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		if err := json.Unmarshal(metadataJSON, &c.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PGStore) CreateDependency(ctx context.Context, d model.Dependency) (model.Dependency, error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	query := `
		INSERT INTO dependencies (id, source_id, target_id, type, criticality, description)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.pool.Exec(ctx, query, d.ID, d.SourceID, d.TargetID, d.Type, d.Criticality, d.Description)
	if err != nil {
		return model.Dependency{}, wrapPGError(err, "dependency", d.ID)
	}
	return d, nil
}

func (s *PGStore) GetDependency(ctx context.Context, id string) (model.Dependency, error) {
	query := `
		SELECT id, source_id, target_id, type, criticality, description
		FROM dependencies
		WHERE id = $1
	`
	var d model.Dependency
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.SourceID, &d.TargetID, &d.Type, &d.Criticality, &d.Description,
	)
	if err != nil {
		return model.Dependency{}, wrapPGError(err, "dependency", id)
	}
	return d, nil
}

func (s *PGStore) DeleteDependency(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM dependencies WHERE id = $1`, id)
	if err != nil {
		return wrapPGError(err, "dependency", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dependency %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *PGStore) ListDependencies(ctx context.Context) ([]model.Dependency, error) {
	return queryDependencies(ctx, s.pool)
}

func queryDependencies(ctx context.Context, q querier) ([]model.Dependency, error) {
	query := `
		SELECT id, source_id, target_id, type, criticality, description
		FROM dependencies
		ORDER BY id
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query dependencies: %w", err)
	}
	defer rows.Close()

	var out []model.Dependency
	for rows.Next() {
		var d model.Dependency
		if err := rows.Scan(&d.ID, &d.SourceID, &d.TargetID, &d.Type, &d.Criticality, &d.Description); err != nil {
			return nil, fmt.Errorf("scan dependency: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *PGStore) CreateWorkflow(ctx context.Context, w model.BusinessWorkflow) (model.BusinessWorkflow, error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	for i := range w.Steps {
		if w.Steps[i].ID == "" {
			w.Steps[i].ID = uuid.New().String()
		}
	}
	w.LastUpdated = time.Now().UTC()

	stepsJSON, err := json.Marshal(w.Steps)
	if err != nil {
		return model.BusinessWorkflow{}, fmt.Errorf("failed to marshal steps: %w", err)
	}

	query := `
		INSERT INTO workflows (id, name, description, business_process, criticality, owner, last_updated, steps)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = s.pool.Exec(ctx, query,
		w.ID, w.Name, w.Description, w.BusinessProcess, w.Criticality, w.Owner, w.LastUpdated, stepsJSON,
	)
	if err != nil {
		return model.BusinessWorkflow{}, wrapPGError(err, "workflow", w.ID)
	}
	return w, nil
}

func (s *PGStore) GetWorkflow(ctx context.Context, id string) (model.BusinessWorkflow, error) {
	query := `
		SELECT id, name, description, business_process, criticality, owner, last_updated, steps
		FROM workflows
		WHERE id = $1
	`
	var w model.BusinessWorkflow
	var stepsJSON []byte
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Name, &w.Description, &w.BusinessProcess, &w.Criticality, &w.Owner, &w.LastUpdated, &stepsJSON,
	)
	if err != nil {
		return model.BusinessWorkflow{}, wrapPGError(err, "workflow", id)
	}
	if err := json.Unmarshal(stepsJSON, &w.Steps); err != nil {
		return model.BusinessWorkflow{}, fmt.Errorf("failed to unmarshal steps: %w", err)
	}
	return w, nil
}

func (s *PGStore) UpdateWorkflow(ctx context.Context, w model.BusinessWorkflow) (model.BusinessWorkflow, error) {
	w.LastUpdated = time.Now().UTC()
	stepsJSON, err := json.Marshal(w.Steps)
	if err != nil {
		return model.BusinessWorkflow{}, fmt.Errorf("failed to marshal steps: %w", err)
	}

	query := `
		UPDATE workflows
		SET name = $2, description = $3, business_process = $4, criticality = $5,
		    owner = $6, last_updated = $7, steps = $8
		WHERE id = $1
	`
	tag, err := s.pool.Exec(ctx, query,
		w.ID, w.Name, w.Description, w.BusinessProcess, w.Criticality, w.Owner, w.LastUpdated, stepsJSON,
	)
	if err != nil {
		return model.BusinessWorkflow{}, wrapPGError(err, "workflow", w.ID)
	}
	if tag.RowsAffected() == 0 {
		return model.BusinessWorkflow{}, fmt.Errorf("workflow %s: %w", w.ID, ErrNotFound)
	}
	return w, nil
}

func (s *PGStore) DeleteWorkflow(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM workflows WHERE id = $1`, id)
	if err != nil {
		return wrapPGError(err, "workflow", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workflow %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *PGStore) ListWorkflows(ctx context.Context) ([]model.BusinessWorkflow, error) {
	return queryWorkflows(ctx, s.pool)
}

func queryWorkflows(ctx context.Context, q querier) ([]model.BusinessWorkflow, error) {
	query := `
		SELECT id, name, description, business_process, criticality, owner, last_updated, steps
		FROM workflows
		ORDER BY id
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query workflows: %w", err)
	}
	defer rows.Close()

	var out []model.BusinessWorkflow
	for rows.Next() {
		var w model.BusinessWorkflow
		var stepsJSON []byte
		if err := rows.Scan(
			&w.ID, &w.Name, &w.Description, &w.BusinessProcess, &w.Criticality, &w.Owner, &w.LastUpdated, &stepsJSON,
		); err != nil {
			return nil, fmt.Errorf("scan workflow: %w", err)
		}
		if err := json.Unmarshal(stepsJSON, &w.Steps); err != nil {
			return nil, fmt.Errorf("failed to unmarshal steps: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Snapshot reads all three entity sets inside one repeatable-read transaction
// so the analysis core always sees a consistent graph.
func (s *PGStore) Snapshot(ctx context.Context) (model.Snapshot, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback(ctx)

	snap := model.Snapshot{}
	if snap.Components, err = queryComponents(ctx, tx); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Dependencies, err = queryDependencies(ctx, tx); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Workflows, err = queryWorkflows(ctx, tx); err != nil {
		return model.Snapshot{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Snapshot{}, fmt.Errorf("commit snapshot tx: %w", err)
	}
	return snap, nil
}
