package catalog

import (
	"github.com/agentstation/utc"
	"github.com/google/uuid"
)

// Principal represents an identity that can own catalog models.
type Principal struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	Username  string    `json:"username" yaml:"username"` // Unique across the catalog
	Email     string    `json:"email" yaml:"email"`
	Developer bool      `json:"developer" yaml:"developer"` // Elevated publishing rights
	CreatedAt utc.Time  `json:"created_at" yaml:"created_at"`
}

// Reserved identity for the sync engine. Every hub-synced model is owned
// by this principal; it is created lazily on the first run and reused on
// every subsequent one.
const (
	SystemUsername = "hub_sync_system"
	SystemEmail    = "system@pocket-ai.local"
)
