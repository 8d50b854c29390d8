// Package hub provides a client for the public model hub API. It exposes
// the hub to the sync engine as a finite sequence of model descriptors
// for a given filter; pagination, visibility filtering, and metadata
// fallbacks stay behind this boundary.
package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pocketai/hubsync/pkg/errors"
)

// DefaultBaseURL is the public hub API endpoint.
const DefaultBaseURL = "https://huggingface.co"

// Client implements access to the hub's model listing API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the hub endpoint (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithToken sets a bearer token for authenticated requests. Listing
// public models works without one, but tokens raise the rate limit.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new hub client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListModels retrieves up to limit public models matching filter.
// A 429 response satisfies errors.Is(err, errors.ErrRateLimited); any
// other failure surfaces as an *errors.APIError. Private models and
// items without an identifier are filtered out here.
func (c *Client) ListModels(ctx context.Context, filter string, limit int) ([]Model, error) {
	endpoint := c.baseURL + "/api/models"

	q := url.Values{}
	q.Set("filter", filter)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("full", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &errors.APIError{
			Endpoint: endpoint,
			Message:  "failed to create request",
			Err:      err,
		}
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errors.APIError{
			Endpoint: endpoint,
			Message:  "request failed",
			Err:      err,
		}
	}
	defer func() {
		// Drain any remaining body to allow connection reuse
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &errors.APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Message:    fmt.Sprintf("unexpected status %s", resp.Status),
		}
	}

	var wire []wireModel
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, errors.WrapParse("json", "hub model listing", err)
	}

	models := make([]Model, 0, len(wire))
	for i := range wire {
		if m, ok := wire[i].descriptor(c.baseURL); ok {
			models = append(models, m)
		}
	}

	return models, nil
}
