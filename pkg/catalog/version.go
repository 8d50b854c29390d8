package catalog

import (
	"github.com/agentstation/utc"
	"github.com/google/uuid"
)

// ModelVersion is one published revision of a catalog model. Versions
// are curated alongside releases; the sync engine only ever touches the
// model record itself.
type ModelVersion struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	ModelID   uuid.UUID `json:"model_id" yaml:"model_id"`
	Version   string    `json:"version" yaml:"version"` // Semantic version string, e.g. "1.0.0"
	Notes     string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	CommitSHA *string   `json:"commit_sha,omitempty" yaml:"commit_sha,omitempty"` // Hub revision this version points at
	CreatedAt utc.Time  `json:"created_at" yaml:"created_at"`
}
