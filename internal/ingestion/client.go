// Package ingestion provides a minimal HTTP client for the carbon ingestion
// API. It returns raw response bodies; callers decide how to render them.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultTimeout bounds every request to the ingestion API. Matches the probe
// timeout the device agent uses against the same endpoints.
const defaultTimeout = 5 * time.Second

// maxBodyBytes caps how much of a response body is read. The stats and
// summary payloads are small; anything larger is a misbehaving endpoint.
const maxBodyBytes = 1 << 20

// Client talks to the ingestion API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the ingestion API at baseURL. An empty
// baseURL is accepted; requests then fail with a descriptive error so the
// caller's degrade-and-continue path handles it like any network failure.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Health fetches the liveness document from /health.
func (c *Client) Health(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "/health")
}

// Stats fetches ingestion statistics from /api/v1/stats.
func (c *Client) Stats(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "/api/v1/stats")
}

// CarbonSummary fetches the aggregated carbon report from /api/v1/carbon/summary.
func (c *Client) CarbonSummary(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "/api/v1/carbon/summary")
}

// Devices fetches the list of reporting devices from /api/v1/metrics/devices.
func (c *Client) Devices(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "/api/v1/metrics/devices")
}

// DeviceMetrics fetches recent metric records for one device. A limit of 0
// leaves the server default in place.
func (c *Client) DeviceMetrics(ctx context.Context, deviceID string, limit int) ([]byte, error) {
	path := "/api/v1/metrics/device/" + url.PathEscape(deviceID)
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}
	return c.get(ctx, path)
}

// Reset clears all stored metrics via POST /api/v1/metrics/reset.
func (c *Client) Reset(ctx context.Context) ([]byte, error) {
	return c.do(ctx, http.MethodPost, "/api/v1/metrics/reset")
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path)
}

// do performs a request and returns the body regardless of HTTP status.
// The API reports errors as JSON bodies with non-2xx codes, and those bodies
// are what the user wants to see. Only transport failures return an error.
func (c *Client) do(ctx context.Context, method, path string) ([]byte, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("ingestion API endpoint not resolved")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", path, err)
	}

	return body, nil
}
