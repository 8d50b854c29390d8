// Package seed applies the curated first-party catalog records shipped
// with the service. Seeding is idempotent: records are matched by slug
// and never overwritten, so a re-run of `hubsync init` is safe.
package seed

import (
	"context"
	_ "embed"

	"github.com/agentstation/utc"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pocketai/hubsync/internal/store"
	"github.com/pocketai/hubsync/pkg/catalog"
	"github.com/pocketai/hubsync/pkg/errors"
)

//go:embed seed.yaml
var seedYAML []byte

// file is the top-level shape of seed.yaml.
type file struct {
	Curator string      `yaml:"curator"`
	Models  []seedModel `yaml:"models"`
}

type seedModel struct {
	Name        string   `yaml:"name"`
	Slug        string   `yaml:"slug"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	License     string   `yaml:"license"`
	Task        string   `yaml:"task,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	OriginURL   string   `yaml:"origin_url,omitempty"`
	Verified    bool     `yaml:"verified,omitempty"`
	Version     string   `yaml:"version,omitempty"`
	Changelog   string   `yaml:"changelog,omitempty"`
}

// principalStore is the slice of the store curator resolution needs.
type principalStore interface {
	GetByUsername(ctx context.Context, username string) (*catalog.Principal, error)
	Create(ctx context.Context, p *catalog.Principal) error
}

// resolveCurator returns the curator principal, creating it on first
// use. A creation race with a concurrent init surfaces as
// ErrAlreadyExists and resolves by re-fetching the winning row, so the
// seed records always reference a persisted author.
func resolveCurator(ctx context.Context, principals principalStore, username string) (*catalog.Principal, error) {
	curator, err := principals.GetByUsername(ctx, username)
	if err == nil {
		return curator, nil
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	curator = &catalog.Principal{
		ID:        uuid.New(),
		Username:  username,
		Email:     username + "@pocket-ai.local",
		Developer: true,
		CreatedAt: utc.Now(),
	}
	if err := principals.Create(ctx, curator); err != nil {
		if errors.IsAlreadyExists(err) {
			return principals.GetByUsername(ctx, username)
		}
		return nil, err
	}
	return curator, nil
}

// Apply inserts the embedded seed records into the catalog. It returns
// the records created; records whose slug already exists are left
// untouched.
func Apply(ctx context.Context, db *store.DB, logger *zerolog.Logger) ([]catalog.Model, error) {
	var f file
	if err := yaml.Unmarshal(seedYAML, &f); err != nil {
		return nil, errors.WrapParse("yaml", "embedded seed catalog", err)
	}

	principals := store.NewPrincipals(db)
	models := store.NewModels(db)
	versions := store.NewVersions(db)

	curator, err := resolveCurator(ctx, principals, f.Curator)
	if err != nil {
		return nil, err
	}

	var created []catalog.Model
	for _, sm := range f.Models {
		if _, err := models.GetBySlug(ctx, sm.Slug); err == nil {
			continue
		} else if !errors.IsNotFound(err) {
			return created, err
		}

		now := utc.Now()
		category := catalog.Category(sm.Category)
		if !category.Valid() {
			category = catalog.CategoryOther
		}
		var originURL *string
		if sm.OriginURL != "" {
			originURL = &sm.OriginURL
		}

		m := &catalog.Model{
			ID:          uuid.New(),
			Name:        sm.Name,
			Slug:        sm.Slug,
			Description: sm.Description,
			Category:    category,
			License:     catalog.ParseLicense(sm.License),
			Task:        sm.Task,
			Tags:        sm.Tags,
			OriginURL:   originURL,
			AuthorID:    curator.ID,
			Verified:    sm.Verified,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if m.Tags == nil {
			m.Tags = []string{}
		}
		if err := models.Create(ctx, m); err != nil {
			return created, err
		}
		if sm.Version != "" {
			v := &catalog.ModelVersion{
				ID:        uuid.New(),
				ModelID:   m.ID,
				Version:   sm.Version,
				Notes:     sm.Changelog,
				CreatedAt: now,
			}
			if err := versions.Create(ctx, v); err != nil {
				return created, err
			}
		}
		created = append(created, *m)
		logger.Debug().Str("slug", sm.Slug).Msg("Seeded model")
	}

	logger.Info().Int("created", len(created)).Msg("Seed catalog applied")
	return created, nil
}
