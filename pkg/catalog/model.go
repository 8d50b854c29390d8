// Package catalog defines the domain types of the local model catalog:
// models, principals, and the closed license/category vocabularies.
package catalog

import (
	"github.com/agentstation/utc"
	"github.com/google/uuid"
)

// Model represents one entry in the local model catalog.
//
// Hub-synced models carry a non-nil HubID, which is unique across the
// catalog and serves as the reconciliation key against the hub. Curated
// models leave it nil. Versions live in their own table keyed by model
// and are never touched by the sync engine.
type Model struct {
	// Core identity
	ID          uuid.UUID `json:"id" yaml:"id"`                                       // Opaque identifier, assigned at creation
	Name        string    `json:"name" yaml:"name"`                                   // Display name
	Slug        string    `json:"slug" yaml:"slug"`                                   // URL-safe handle, unique across the catalog
	Description string    `json:"description,omitempty" yaml:"description,omitempty"` // Free-text description

	// Classification
	Category Category `json:"category" yaml:"category"`           // Closed vocabulary; synced records default to utility
	License  License  `json:"license" yaml:"license"`             // Mapped license kind
	Task     string   `json:"task,omitempty" yaml:"task,omitempty"` // Hub pipeline task label, free string
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty"` // Normalized tag set, no duplicates

	// Hub provenance
	HubID     *string `json:"hub_id,omitempty" yaml:"hub_id,omitempty"`         // Hub identifier ("org/name"); non-nil exactly for synced records
	OriginURL *string `json:"origin_url,omitempty" yaml:"origin_url,omitempty"` // Canonical hub page

	// Ownership and audit
	AuthorID uuid.UUID `json:"author_id" yaml:"author_id"` // Owning principal, never nil
	Verified bool      `json:"verified" yaml:"verified"`   // Verified first-party record

	// Timestamps for record keeping and auditing
	CreatedAt utc.Time `json:"created_at" yaml:"created_at"` // Immutable creation time
	UpdatedAt utc.Time `json:"updated_at" yaml:"updated_at"` // Last metadata update
}

// Synced reports whether this model originates from the hub.
func (m *Model) Synced() bool {
	return m.HubID != nil
}

// MetadataUpdate is the bundle of mutable fields a sync run may overwrite
// on an existing model. Identity fields (id, slug, author, category,
// creation time) are deliberately absent.
type MetadataUpdate struct {
	Description string
	Tags        []string
	Task        string
	License     License
	OriginURL   *string
}
