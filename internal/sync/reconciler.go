package sync

import (
	"github.com/agentstation/utc"
	"github.com/google/uuid"

	"github.com/pocketai/hubsync/internal/hub"
	"github.com/pocketai/hubsync/pkg/catalog"
)

// Op is the action a reconciliation decision resolves to.
type Op int

// Reconciliation operations.
const (
	// OpCreate inserts a brand-new catalog model for the descriptor.
	OpCreate Op = iota

	// OpUpdate overwrites the mutable metadata of an existing model.
	// A descriptor whose metadata is identical to the stored record
	// still reconciles to an update; the engine keeps no separate
	// "unchanged" bucket.
	OpUpdate
)

// Mutation describes the store change one descriptor reconciles to. The
// reconciler only decides; the syncer applies.
type Mutation struct {
	Op      Op
	Model   *catalog.Model         // populated for OpCreate
	ModelID uuid.UUID              // target record for OpUpdate
	Update  catalog.MetadataUpdate // populated for OpUpdate
}

// Reconcile decides, for one hub descriptor and the current catalog
// record under the same hub id (nil when absent), which mutation to
// apply. Pure decision logic over the two snapshots: no I/O, no
// store-level errors.
func Reconcile(desc hub.Model, existing *catalog.Model, authorID uuid.UUID, now utc.Time) Mutation {
	description := desc.Description
	if description == "" {
		description = fallbackDescription(desc.HubID)
	}

	hubID := desc.HubID
	originURL := desc.URL

	if existing != nil {
		return Mutation{
			Op:      OpUpdate,
			ModelID: existing.ID,
			Update: catalog.MetadataUpdate{
				Description: description,
				Tags:        MapTags(desc.Tags),
				Task:        desc.Task,
				License:     MapLicense(desc.License),
				OriginURL:   &originURL,
			},
		}
	}

	return Mutation{
		Op: OpCreate,
		Model: &catalog.Model{
			ID:          uuid.New(),
			Name:        desc.Name,
			Slug:        DeriveSlug(desc.HubID),
			Description: description,
			Category:    catalog.DefaultSyncCategory,
			License:     MapLicense(desc.License),
			Task:        desc.Task,
			Tags:        MapTags(desc.Tags),
			HubID:       &hubID,
			OriginURL:   &originURL,
			AuthorID:    authorID,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
