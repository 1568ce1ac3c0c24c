// Package content loads devotee-facing content from the remote content
// backend, falling back to built-in datasets when the backend is not
// configured, unreachable, or not yet populated.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	// Timeout for content backend requests
	requestTimeout = 10 * time.Second
	// Transient failures are retried before falling back
	fetchAttempts = 3
	fetchDelay    = 200 * time.Millisecond
)

// Client talks to the Supabase-style REST content backend.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient creates a content backend client. An empty baseURL or apiKey
// leaves the client unconfigured; loaders then serve fallback data only.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: requestTimeout},
	}
}

// Configured reports whether the client can reach a remote backend.
func (c *Client) Configured() bool {
	return c != nil && c.baseURL != "" && c.apiKey != ""
}

// statusError marks a non-2xx response. 4xx responses are not retried.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("content backend returned status %d", e.code)
}

// Select fetches rows from a table: GET {base}/rest/v1/{table}?{query}.
// The query string must already include the select clause and ordering.
func Select[T any](ctx context.Context, c *Client, table, query string) ([]T, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("content backend not configured")
	}

	url := fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, table, query)

	var items []T
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("apikey", c.apiKey)
			req.Header.Set("Authorization", "Bearer "+c.apiKey)

			resp, err := c.httpc.Do(req)
			if err != nil {
				return fmt.Errorf("content request failed: %w", err)
			}
			defer func() { _ = resp.Body.Close() }()

			if resp.StatusCode < 200 || resp.StatusCode > 299 {
				// Drain so the connection can be reused
				_, _ = io.Copy(io.Discard, resp.Body)
				serr := &statusError{code: resp.StatusCode}
				if resp.StatusCode >= 400 && resp.StatusCode < 500 {
					return retry.Unrecoverable(serr)
				}
				return serr
			}

			items = nil
			if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
				return retry.Unrecoverable(fmt.Errorf("decoding content response: %w", err))
			}
			return nil
		},
		retry.Attempts(fetchAttempts),
		retry.Delay(fetchDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}

	return items, nil
}
