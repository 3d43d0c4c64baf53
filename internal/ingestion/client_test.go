package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientPaths(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		gotMethod = r.Method
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()

	tests := []struct {
		name       string
		call       func() ([]byte, error)
		wantPath   string
		wantMethod string
	}{
		{"health", func() ([]byte, error) { return c.Health(ctx) }, "/health", http.MethodGet},
		{"stats", func() ([]byte, error) { return c.Stats(ctx) }, "/api/v1/stats", http.MethodGet},
		{"summary", func() ([]byte, error) { return c.CarbonSummary(ctx) }, "/api/v1/carbon/summary", http.MethodGet},
		{"devices", func() ([]byte, error) { return c.Devices(ctx) }, "/api/v1/metrics/devices", http.MethodGet},
		{"device metrics", func() ([]byte, error) { return c.DeviceMetrics(ctx, "device_5613", 10) }, "/api/v1/metrics/device/device_5613?limit=10", http.MethodGet},
		{"device metrics no limit", func() ([]byte, error) { return c.DeviceMetrics(ctx, "device_5613", 0) }, "/api/v1/metrics/device/device_5613", http.MethodGet},
		{"reset", func() ([]byte, error) { return c.Reset(ctx) }, "/api/v1/metrics/reset", http.MethodPost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := tt.call()
			require.NoError(t, err)
			assert.Equal(t, `{"ok":true}`, string(body))
			assert.Equal(t, tt.wantPath, gotPath)
			assert.Equal(t, tt.wantMethod, gotMethod)
		})
	}
}

func TestClientReturnsBodyOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal server error","status":"error"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	body, err := c.Stats(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(body), "Internal server error")
}

func TestClientEmptyBaseURL(t *testing.T) {
	c := NewClient("")
	_, err := c.Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not resolved")
}

func TestClientTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL)
	_, err := c.Health(context.Background())
	assert.Error(t, err)
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/")
	_, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/health", gotPath)
}
