// Package gateway talks to the remote training-data endpoint. The whole
// dataset is fetched in one request at session start; there is no retry and
// no partial application of a partially-successful response.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tablero.dev/tablero/pkg/catalog"
)

// Interface is the remote data gateway: one bulk snapshot per call.
type Interface interface {
	FetchAll(ctx context.Context) (*catalog.Snapshot, error)
}

// Client fetches the snapshot over HTTP.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a client for the given endpoint.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{},
	}
}

const actionGetAllData = "getAllData"

type request struct {
	Action string `json:"action"`
}

type envelope struct {
	Success bool             `json:"success"`
	Data    catalog.Snapshot `json:"data"`
	Error   string           `json:"error,omitempty"`
}

// FetchAll posts the bulk-data action and decodes the snapshot. Transport
// failure, a non-2xx status, and success=false are all surfaced as a single
// error; the caller's state is left untouched.
func (c *Client) FetchAll(ctx context.Context) (*catalog.Snapshot, error) {
	if c.BaseURL == "" {
		return nil, fmt.Errorf("gateway: no endpoint configured")
	}

	body, err := json.Marshal(request{Action: actionGetAllData})
	if err != nil {
		return nil, fmt.Errorf("gateway: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("gateway: fetch: status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("gateway: decode response: %w", err)
	}
	if !env.Success {
		if env.Error != "" {
			return nil, fmt.Errorf("gateway: remote error: %s", env.Error)
		}
		return nil, fmt.Errorf("gateway: remote reported failure")
	}
	return &env.Data, nil
}
