package sync

import (
	"context"
	"testing"

	"github.com/agentstation/utc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pocketai/hubsync/internal/store"
	"github.com/pocketai/hubsync/pkg/catalog"
	"github.com/pocketai/hubsync/pkg/errors"
	"github.com/pocketai/hubsync/pkg/logging"
)

func TestAttribution_CreatesOnce(t *testing.T) {
	db := store.NewTestDB(t)
	ctx := context.Background()
	principals := store.NewPrincipals(db)
	resolver := NewAttribution(principals, &logging.Nop)

	first, err := resolver.ResolveSystemAuthor(ctx)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first)

	// Second resolution reuses the same row.
	second, err := resolver.ResolveSystemAuthor(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)

	n, err := principals.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	p, err := principals.GetByUsername(ctx, catalog.SystemUsername)
	require.NoError(t, err)
	require.Equal(t, catalog.SystemEmail, p.Email)
	require.True(t, p.Developer)
}

// racingPrincipals simulates a concurrent run winning the creation race:
// the first lookup misses, the create collides, the re-fetch succeeds.
type racingPrincipals struct {
	winner *catalog.Principal
	gets   int
}

func (r *racingPrincipals) GetByUsername(_ context.Context, username string) (*catalog.Principal, error) {
	r.gets++
	if r.gets == 1 {
		return nil, errors.NewNotFoundError("principal", username)
	}
	return r.winner, nil
}

func (r *racingPrincipals) Create(context.Context, *catalog.Principal) error {
	return errors.ErrAlreadyExists
}

func TestAttribution_CreationRaceResolvesToExistingRow(t *testing.T) {
	winner := &catalog.Principal{
		ID:        uuid.New(),
		Username:  catalog.SystemUsername,
		Email:     catalog.SystemEmail,
		Developer: true,
		CreatedAt: utc.Now(),
	}
	resolver := NewAttribution(&racingPrincipals{winner: winner}, &logging.Nop)

	id, err := resolver.ResolveSystemAuthor(context.Background())
	require.NoError(t, err)
	require.Equal(t, winner.ID, id)
}

// failingPrincipals reports an irrecoverable store failure.
type failingPrincipals struct{ err error }

func (f *failingPrincipals) GetByUsername(context.Context, string) (*catalog.Principal, error) {
	return nil, f.err
}

func (f *failingPrincipals) Create(context.Context, *catalog.Principal) error {
	return f.err
}

func TestAttribution_StoreFailurePropagates(t *testing.T) {
	storeErr := errors.NewStoreError("query", "principal", errors.New("disk I/O error"))
	resolver := NewAttribution(&failingPrincipals{err: storeErr}, &logging.Nop)

	_, err := resolver.ResolveSystemAuthor(context.Background())
	require.ErrorIs(t, err, storeErr)
}
