// Package boardapi is the typed gateway to the task-board REST API: one
// method per operation, fixed success/error mapping, no retries and no
// caching. Retry policy belongs to callers.
package boardapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"tictactask/clients"
)

// DefaultBaseURL is the last resort when no environment override is set.
const DefaultBaseURL = "http://localhost:8000"

// baseURLEnvVars are checked in order; first non-empty wins.
var baseURLEnvVars = []string{"TICTACTASK_API_URL", "API_URL"}

// ResolveBaseURL picks the API base URL from the environment, falling back
// to DefaultBaseURL.
func ResolveBaseURL() string {
	for _, key := range baseURLEnvVars {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return DefaultBaseURL
}

// Client wraps the base HTTP client with the board API surface.
type Client struct {
	base *clients.BaseClient
}

// New creates a gateway client for the given base URL.
func New(baseURL string) *Client {
	return &Client{base: clients.NewBaseClient(baseURL)}
}

// SetToken attaches a bearer token to every subsequent request.
func (c *Client) SetToken(token string) {
	c.base.SetHeader("Authorization", "Bearer "+token)
}

// get fetches endpoint and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	body, err := c.base.Get(ctx, endpoint)
	if err != nil {
		return wrapErr(err, endpoint)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}
	return nil
}

// post sends payload as JSON and decodes the response into out when out is
// non-nil.
func (c *Client) post(ctx context.Context, endpoint string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request for %s: %w", endpoint, err)
	}
	body, err := c.base.Post(ctx, endpoint, bytes.NewReader(data))
	if err != nil {
		return wrapErr(err, endpoint)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}
	return nil
}

// patch sends an optional JSON payload and decodes the response into out.
func (c *Client) patch(ctx context.Context, endpoint string, payload, out any) error {
	var reader *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request for %s: %w", endpoint, err)
		}
		reader = bytes.NewReader(data)
	}
	var body []byte
	var err error
	if reader != nil {
		body, err = c.base.Patch(ctx, endpoint, reader)
	} else {
		body, err = c.base.Patch(ctx, endpoint, nil)
	}
	if err != nil {
		return wrapErr(err, endpoint)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}
	return nil
}

// del issues a DELETE; the 204 response carries no body.
func (c *Client) del(ctx context.Context, endpoint string) error {
	if _, err := c.base.Delete(ctx, endpoint); err != nil {
		return wrapErr(err, endpoint)
	}
	return nil
}
