package store

import (
	"context"
	"testing"

	"github.com/agentstation/utc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pocketai/hubsync/pkg/catalog"
	"github.com/pocketai/hubsync/pkg/errors"
)

func insertPrincipal(t *testing.T, db *DB) uuid.UUID {
	t.Helper()
	p := &catalog.Principal{
		ID:        uuid.New(),
		Username:  catalog.SystemUsername,
		Email:     catalog.SystemEmail,
		Developer: true,
		CreatedAt: utc.Now(),
	}
	require.NoError(t, NewPrincipals(db).Create(context.Background(), p))
	return p.ID
}

func strptr(s string) *string { return &s }

func testModel(authorID uuid.UUID, hubID string) *catalog.Model {
	now := utc.Now()
	return &catalog.Model{
		ID:          uuid.New(),
		Name:        "mobilenet-v2",
		Slug:        "google-mobilenet-v2",
		Description: "Image classification model",
		Category:    catalog.DefaultSyncCategory,
		License:     catalog.LicenseApache20,
		Task:        "image-classification",
		Tags:        []string{"vision", "tflite"},
		HubID:       strptr(hubID),
		OriginURL:   strptr("https://huggingface.co/" + hubID),
		AuthorID:    authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestModels_CreateGetByHubID(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	authorID := insertPrincipal(t, db)

	repo := NewModels(db)
	m := testModel(authorID, "google/mobilenet-v2")
	require.NoError(t, repo.Create(ctx, m))

	loaded, err := repo.GetByHubID(ctx, "google/mobilenet-v2")
	require.NoError(t, err)
	require.Equal(t, m.ID, loaded.ID)
	require.Equal(t, m.Name, loaded.Name)
	require.Equal(t, m.Slug, loaded.Slug)
	require.Equal(t, catalog.LicenseApache20, loaded.License)
	require.Equal(t, []string{"vision", "tflite"}, loaded.Tags)
	require.NotNil(t, loaded.HubID)
	require.Equal(t, "google/mobilenet-v2", *loaded.HubID)
	require.Equal(t, authorID, loaded.AuthorID)
	require.True(t, loaded.Synced())
}

func TestModels_GetByHubID_NotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewModels(db)

	_, err := repo.GetByHubID(context.Background(), "nobody/nothing")
	require.True(t, errors.IsNotFound(err))
}

func TestModels_Create_DuplicateHubID(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	authorID := insertPrincipal(t, db)

	repo := NewModels(db)
	require.NoError(t, repo.Create(ctx, testModel(authorID, "google/mobilenet-v2")))

	dup := testModel(authorID, "google/mobilenet-v2")
	dup.ID = uuid.New()
	dup.Slug = "another-slug"
	err := repo.Create(ctx, dup)
	require.True(t, errors.IsAlreadyExists(err))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestModels_Create_DuplicateSlug(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	authorID := insertPrincipal(t, db)

	repo := NewModels(db)
	require.NoError(t, repo.Create(ctx, testModel(authorID, "google/mobilenet-v2")))

	dup := testModel(authorID, "someone-else/mobilenet-v2")
	dup.ID = uuid.New()
	err := repo.Create(ctx, dup)
	require.True(t, errors.IsAlreadyExists(err))
}

func TestModels_Create_UnknownAuthor(t *testing.T) {
	db := NewTestDB(t)
	repo := NewModels(db)

	m := testModel(uuid.New(), "google/mobilenet-v2")
	err := repo.Create(context.Background(), m)
	require.Error(t, err)
	require.True(t, errors.IsValidationError(err))
}

func TestModels_UpdateMetadata(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	authorID := insertPrincipal(t, db)

	repo := NewModels(db)
	m := testModel(authorID, "google/mobilenet-v2")
	require.NoError(t, repo.Create(ctx, m))

	err := repo.UpdateMetadata(ctx, m.ID, catalog.MetadataUpdate{
		Description: "Updated description",
		Tags:        []string{"vision"},
		Task:        "object-detection",
		License:     catalog.LicenseMIT,
		OriginURL:   strptr("https://huggingface.co/google/mobilenet-v2"),
	})
	require.NoError(t, err)

	loaded, err := repo.GetByHubID(ctx, "google/mobilenet-v2")
	require.NoError(t, err)
	require.Equal(t, "Updated description", loaded.Description)
	require.Equal(t, []string{"vision"}, loaded.Tags)
	require.Equal(t, "object-detection", loaded.Task)
	require.Equal(t, catalog.LicenseMIT, loaded.License)

	// Identity fields survive a metadata update.
	require.Equal(t, m.Slug, loaded.Slug)
	require.Equal(t, m.AuthorID, loaded.AuthorID)
	require.Equal(t, m.Category, loaded.Category)
}

func TestModels_UpdateMetadata_NotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewModels(db)

	err := repo.UpdateMetadata(context.Background(), uuid.New(), catalog.MetadataUpdate{})
	require.True(t, errors.IsNotFound(err))
}
