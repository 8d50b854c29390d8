package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/agentstation/utc"
	"github.com/google/uuid"

	"github.com/pocketai/hubsync/pkg/catalog"
	"github.com/pocketai/hubsync/pkg/errors"
)

// Models is the repository for catalog models.
type Models struct {
	db *DB
}

// NewModels creates a model repository backed by db.
func NewModels(db *DB) *Models {
	return &Models{db: db}
}

const modelColumns = `id, name, slug, description, category, license, task, tags,
		hub_id, origin_url, author_id, verified, created_at, updated_at`

// Create inserts a new model inside its own transaction. A uniqueness
// violation (slug or hub id) surfaces as errors.ErrAlreadyExists so one
// conflicting record cannot abort a whole sync run.
func (r *Models) Create(ctx context.Context, m *catalog.Model) error {
	tags, err := json.Marshal(m.Tags)
	if err != nil {
		return errors.WrapParse("json", "model tags", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewStoreError("insert", "model", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO models (`+modelColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID.String(),
		m.Name,
		m.Slug,
		m.Description,
		string(m.Category),
		string(m.License),
		m.Task,
		string(tags),
		m.HubID,
		m.OriginURL,
		m.AuthorID.String(),
		m.Verified,
		m.CreatedAt.Time,
		m.UpdatedAt.Time,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return errors.NewValidationError("author_id", m.AuthorID, "unknown principal")
		}
		return errors.NewStoreError("insert", "model", err)
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStoreError("insert", "model", err)
	}
	return nil
}

// UpdateMetadata overwrites the mutable metadata fields of the model
// identified by id, inside its own transaction. Identity fields (slug,
// author, category, creation time) are left untouched. Returns
// errors.ErrNotFound when no such model exists.
func (r *Models) UpdateMetadata(ctx context.Context, id uuid.UUID, u catalog.MetadataUpdate) error {
	tags, err := json.Marshal(u.Tags)
	if err != nil {
		return errors.WrapParse("json", "model tags", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewStoreError("update", "model", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE models
		SET description = ?, tags = ?, task = ?, license = ?, origin_url = ?, updated_at = ?
		WHERE id = ?`,
		u.Description,
		string(tags),
		u.Task,
		string(u.License),
		u.OriginURL,
		utc.Now().Time,
		id.String(),
	)
	if err != nil {
		return errors.NewStoreError("update", "model", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.NewStoreError("update", "model", err)
	}
	if affected == 0 {
		return errors.NewNotFoundError("model", id.String())
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStoreError("update", "model", err)
	}
	return nil
}

// GetByHubID returns the model holding the given hub identifier, the
// reconciliation key. Returns errors.ErrNotFound when absent.
func (r *Models) GetByHubID(ctx context.Context, hubID string) (*catalog.Model, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+modelColumns+` FROM models WHERE hub_id = ?`, hubID)
	m, err := scanModel(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("model", hubID)
	}
	return m, err
}

// GetBySlug returns the model holding the given slug.
func (r *Models) GetBySlug(ctx context.Context, slug string) (*catalog.Model, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+modelColumns+` FROM models WHERE slug = ?`, slug)
	m, err := scanModel(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("model", slug)
	}
	return m, err
}

// Count returns the number of models in the catalog.
func (r *Models) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM models`).Scan(&n); err != nil {
		return 0, errors.NewStoreError("query", "model", err)
	}
	return n, nil
}

func scanModel(row *sql.Row) (*catalog.Model, error) {
	var (
		m         catalog.Model
		id        string
		category  string
		license   string
		tags      string
		authorID  string
		createdAt time.Time
		updatedAt time.Time
	)

	err := row.Scan(
		&id,
		&m.Name,
		&m.Slug,
		&m.Description,
		&category,
		&license,
		&m.Task,
		&tags,
		&m.HubID,
		&m.OriginURL,
		&authorID,
		&m.Verified,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, errors.NewStoreError("query", "model", err)
	}

	if m.ID, err = uuid.Parse(id); err != nil {
		return nil, errors.NewStoreError("query", "model", err)
	}
	if m.AuthorID, err = uuid.Parse(authorID); err != nil {
		return nil, errors.NewStoreError("query", "model", err)
	}
	if err := json.Unmarshal([]byte(tags), &m.Tags); err != nil {
		return nil, errors.WrapParse("json", "model tags", err)
	}
	m.Category = catalog.Category(category)
	m.License = catalog.License(license)
	m.CreatedAt = utc.Time{Time: createdAt}
	m.UpdatedAt = utc.Time{Time: updatedAt}

	return &m, nil
}
