// Package sync implements the reconciliation engine that keeps the local
// catalog aligned with the public model hub. For each hub descriptor it
// decides create/update, applies the mutation in a per-item transaction,
// and isolates per-item failures so one bad record cannot abort a run.
package sync

import (
	"context"

	"github.com/agentstation/utc"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pocketai/hubsync/internal/hub"
	"github.com/pocketai/hubsync/pkg/catalog"
	"github.com/pocketai/hubsync/pkg/errors"
	"github.com/pocketai/hubsync/pkg/logging"
)

// Lister is the hub collaborator contract: a finite, capped sequence of
// model descriptors for a filter label.
type Lister interface {
	ListModels(ctx context.Context, filter string, limit int) ([]hub.Model, error)
}

// ModelStore is the slice of the persistence layer the syncer needs.
// Create and UpdateMetadata are expected to scope each call in its own
// transaction, which is what makes per-item isolation hold.
type ModelStore interface {
	GetByHubID(ctx context.Context, hubID string) (*catalog.Model, error)
	Create(ctx context.Context, m *catalog.Model) error
	UpdateMetadata(ctx context.Context, id uuid.UUID, u catalog.MetadataUpdate) error
}

// Syncer drives one full reconciliation run.
type Syncer struct {
	hub         Lister
	models      ModelStore
	attribution *Attribution
	logger      *zerolog.Logger
}

// New creates a syncer over the hub client and the catalog store.
func New(lister Lister, models ModelStore, principals PrincipalStore, logger *zerolog.Logger) *Syncer {
	if logger == nil {
		logger = logging.Default()
	}
	return &Syncer{
		hub:         lister,
		models:      models,
		attribution: NewAttribution(principals, logger),
		logger:      logger,
	}
}

// Run executes one sync: fetch up to limit descriptors for filter,
// resolve the system author once, then reconcile each descriptor
// independently. Fetch and attribution failures abort the run before
// any record mutation; every later failure is absorbed at the per-item
// boundary and counted as a skip.
//
// Running twice in a row with unchanged hub data creates nothing the
// second time: every item resolves to an update of the record keyed by
// its hub id.
func (s *Syncer) Run(ctx context.Context, filter string, limit int) (*Result, error) {
	s.logger.Info().
		Str("filter", filter).
		Int("limit", limit).
		Msg("Starting hub sync")

	descriptors, err := s.hub.ListModels(ctx, filter, limit)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("count", len(descriptors)).Msg("Fetched hub model listing")

	authorID, err := s.attribution.ResolveSystemAuthor(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, desc := range descriptors {
		if err := s.reconcileOne(ctx, desc, authorID, result); err != nil {
			result.skip(desc.HubID, err)
			s.logger.Warn().
				Err(err).
				Str("hub_id", desc.HubID).
				Msg("Skipped model")
		}
	}

	s.logger.Info().
		Int("created", result.Created).
		Int("updated", result.Updated).
		Int("skipped", result.Skipped).
		Msg("Hub sync completed")

	return result, nil
}

// reconcileOne processes a single descriptor. Any error it returns is
// per-item recoverable by definition: the caller records a skip and
// moves on.
func (s *Syncer) reconcileOne(ctx context.Context, desc hub.Model, authorID uuid.UUID, result *Result) error {
	if desc.HubID == "" {
		return errors.NewValidationError("hub_id", desc.HubID, "descriptor has no identifier")
	}

	existing, err := s.models.GetByHubID(ctx, desc.HubID)
	if err != nil && !errors.IsNotFound(err) {
		return err
	}

	mutation := Reconcile(desc, existing, authorID, utc.Now())

	switch mutation.Op {
	case OpCreate:
		if err := s.models.Create(ctx, mutation.Model); err != nil {
			return err
		}
		result.Created++
		result.countLicense(mutation.Model.License)
		s.logger.Debug().Str("hub_id", desc.HubID).Msg("Created model")
	case OpUpdate:
		if err := s.models.UpdateMetadata(ctx, mutation.ModelID, mutation.Update); err != nil {
			return err
		}
		result.Updated++
		result.countLicense(mutation.Update.License)
		s.logger.Debug().Str("hub_id", desc.HubID).Msg("Updated model")
	}

	return nil
}
