package sync

import (
	"context"

	"github.com/agentstation/utc"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pocketai/hubsync/pkg/catalog"
	"github.com/pocketai/hubsync/pkg/errors"
)

// PrincipalStore is the narrow slice of the persistence layer the
// attribution resolver needs.
type PrincipalStore interface {
	GetByUsername(ctx context.Context, username string) (*catalog.Principal, error)
	Create(ctx context.Context, p *catalog.Principal) error
}

// Attribution resolves the reserved system principal that owns every
// hub-synced model.
type Attribution struct {
	principals PrincipalStore
	logger     *zerolog.Logger
}

// NewAttribution creates an attribution resolver over the given store.
func NewAttribution(principals PrincipalStore, logger *zerolog.Logger) *Attribution {
	return &Attribution{principals: principals, logger: logger}
}

// ResolveSystemAuthor returns the system principal's ID, creating the
// principal on first use. Safe to call from two overlapping runs: a
// creation race surfaces as ErrAlreadyExists from the store's username
// constraint and resolves by re-fetching, not by failing the run.
func (a *Attribution) ResolveSystemAuthor(ctx context.Context) (uuid.UUID, error) {
	p, err := a.principals.GetByUsername(ctx, catalog.SystemUsername)
	if err == nil {
		return p.ID, nil
	}
	if !errors.IsNotFound(err) {
		return uuid.Nil, err
	}

	created := &catalog.Principal{
		ID:        uuid.New(),
		Username:  catalog.SystemUsername,
		Email:     catalog.SystemEmail,
		Developer: true,
		CreatedAt: utc.Now(),
	}
	if err := a.principals.Create(ctx, created); err != nil {
		if errors.IsAlreadyExists(err) {
			// Another run got there first; its row wins.
			p, err = a.principals.GetByUsername(ctx, catalog.SystemUsername)
			if err != nil {
				return uuid.Nil, err
			}
			return p.ID, nil
		}
		return uuid.Nil, err
	}

	a.logger.Info().
		Str("username", catalog.SystemUsername).
		Str("principal_id", created.ID.String()).
		Msg("Created system principal")

	return created.ID, nil
}
