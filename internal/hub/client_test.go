package hub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketai/hubsync/pkg/errors"
)

const listingFixture = `[
	{
		"id": "google/mobilenet-v2",
		"private": false,
		"tags": ["vision", "tflite"],
		"pipeline_tag": "image-classification",
		"sha": "abc123",
		"cardData": {"license": "apache-2.0", "summary": "Image classification model"}
	},
	{
		"id": "acme/secret-model",
		"private": true,
		"tags": [],
		"pipeline_tag": "text-generation"
	},
	{
		"id": "someone/bert-tiny",
		"private": false,
		"tags": ["nlp"],
		"pipeline_tag": "fill-mask",
		"cardData": {"description": "A tiny BERT"}
	},
	{
		"id": "bare/model",
		"private": false
	}
]`

func TestClient_ListModels(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/models", r.URL.Path)
		gotQuery = map[string]string{
			"filter": r.URL.Query().Get("filter"),
			"limit":  r.URL.Query().Get("limit"),
			"full":   r.URL.Query().Get("full"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listingFixture))
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	models, err := client.ListModels(context.Background(), "tflite", 100)
	require.NoError(t, err)

	assert.Equal(t, "tflite", gotQuery["filter"])
	assert.Equal(t, "100", gotQuery["limit"])
	assert.Equal(t, "true", gotQuery["full"])

	// Private models are filtered at the boundary.
	require.Len(t, models, 3)

	first := models[0]
	assert.Equal(t, "google/mobilenet-v2", first.HubID)
	assert.Equal(t, "mobilenet-v2", first.Name)
	assert.Equal(t, "Image classification model", first.Description)
	assert.Equal(t, "apache-2.0", first.License)
	assert.Equal(t, "image-classification", first.Task)
	assert.Equal(t, srv.URL+"/google/mobilenet-v2", first.URL)

	// Summary absent: description field is the fallback.
	second := models[1]
	assert.Equal(t, "A tiny BERT", second.Description)
	assert.Equal(t, "unknown", second.License)

	// No card data at all: defined defaults.
	third := models[2]
	assert.Equal(t, "", third.Description)
	assert.Equal(t, "unknown", third.License)
	assert.Equal(t, "model", third.Name)
}

func TestClient_ListModels_SendsToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL), WithToken("hf_testtoken"))
	_, err := client.ListModels(context.Background(), "tflite", 10)
	require.NoError(t, err)
	assert.Equal(t, "Bearer hf_testtoken", auth)
}

func TestClient_ListModels_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	_, err := client.ListModels(context.Background(), "tflite", 10)
	require.Error(t, err)
	assert.True(t, errors.IsRateLimited(err))
}

func TestClient_ListModels_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	_, err := client.ListModels(context.Background(), "tflite", 10)
	require.Error(t, err)
	assert.True(t, errors.IsHubUnavailable(err))

	var apiErr *errors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestClient_ListModels_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"`))
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	_, err := client.ListModels(context.Background(), "tflite", 10)
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestClient_ListModels_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // immediately, so the dial fails

	client := New(WithBaseURL(srv.URL))
	_, err := client.ListModels(context.Background(), "tflite", 10)
	require.Error(t, err)

	var apiErr *errors.APIError
	require.True(t, errors.As(err, &apiErr))
}
