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

// Principals is the repository for catalog principals.
type Principals struct {
	db *DB
}

// NewPrincipals creates a principal repository backed by db.
func NewPrincipals(db *DB) *Principals {
	return &Principals{db: db}
}

// Create inserts a new principal. A username collision surfaces as
// errors.ErrAlreadyExists; two overlapping sync runs racing to create the
// system principal rely on this to resolve the race.
func (r *Principals) Create(ctx context.Context, p *catalog.Principal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO principals (id, username, email, developer, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		p.ID.String(),
		p.Username,
		p.Email,
		p.Developer,
		p.CreatedAt.Time,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrAlreadyExists
		}
		return errors.NewStoreError("insert", "principal", err)
	}
	return nil
}

// GetByUsername returns the principal with the given username.
// Returns errors.ErrNotFound when absent.
func (r *Principals) GetByUsername(ctx context.Context, username string) (*catalog.Principal, error) {
	var (
		p         catalog.Principal
		id        string
		createdAt time.Time
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, email, developer, created_at
		FROM principals WHERE username = ?`, username).
		Scan(&id, &p.Username, &p.Email, &p.Developer, &createdAt)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("principal", username)
	}
	if err != nil {
		return nil, errors.NewStoreError("query", "principal", err)
	}

	if p.ID, err = uuid.Parse(id); err != nil {
		return nil, errors.NewStoreError("query", "principal", err)
	}
	p.CreatedAt = utc.Time{Time: createdAt}

	return &p, nil
}

// Count returns the number of principals in the catalog.
func (r *Principals) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM principals`).Scan(&n); err != nil {
		return 0, errors.NewStoreError("query", "principal", err)
	}
	return n, nil
}
