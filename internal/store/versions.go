package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/agentstation/utc"
	"github.com/google/uuid"

	"github.com/pocketai/hubsync/pkg/catalog"
	"github.com/pocketai/hubsync/pkg/errors"
)

// Versions is the repository for published model versions.
type Versions struct {
	db *DB
}

// NewVersions creates a version repository backed by db.
func NewVersions(db *DB) *Versions {
	return &Versions{db: db}
}

// Create inserts a new version for a model. A (model, version) collision
// surfaces as errors.ErrAlreadyExists; an unknown model as a validation
// error.
func (r *Versions) Create(ctx context.Context, v *catalog.ModelVersion) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO model_versions (id, model_id, version, notes, commit_sha, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		v.ID.String(),
		v.ModelID.String(),
		v.Version,
		v.Notes,
		v.CommitSHA,
		v.CreatedAt.Time,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return errors.NewValidationError("model_id", v.ModelID, "unknown model")
		}
		return errors.NewStoreError("insert", "version", err)
	}
	return nil
}

// ListByModel returns every version of a model, oldest first.
func (r *Versions) ListByModel(ctx context.Context, modelID uuid.UUID) ([]catalog.ModelVersion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, model_id, version, notes, commit_sha, created_at
		FROM model_versions WHERE model_id = ? ORDER BY created_at, version`,
		modelID.String())
	if err != nil {
		return nil, errors.NewStoreError("query", "version", err)
	}
	defer func() { _ = rows.Close() }()

	var versions []catalog.ModelVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		versions = append(versions, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStoreError("query", "version", err)
	}
	return versions, nil
}

func scanVersion(rows *sql.Rows) (*catalog.ModelVersion, error) {
	var (
		v         catalog.ModelVersion
		id        string
		modelID   string
		createdAt time.Time
	)

	err := rows.Scan(&id, &modelID, &v.Version, &v.Notes, &v.CommitSHA, &createdAt)
	if err != nil {
		return nil, errors.NewStoreError("query", "version", err)
	}

	if v.ID, err = uuid.Parse(id); err != nil {
		return nil, errors.NewStoreError("query", "version", err)
	}
	if v.ModelID, err = uuid.Parse(modelID); err != nil {
		return nil, errors.NewStoreError("query", "version", err)
	}
	v.CreatedAt = utc.Time{Time: createdAt}

	return &v, nil
}
