package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/carbonprofiling/carbonctl/internal/cluster"
	"github.com/carbonprofiling/carbonctl/internal/config"
	"github.com/carbonprofiling/carbonctl/internal/ingestion"
	"github.com/carbonprofiling/carbonctl/internal/status"
)

// IngestionAPI is the full ingestion API surface the CLI uses. It widens
// status.APIFetcher with the device and reset endpoints that have their own
// subcommands.
type IngestionAPI interface {
	status.APIFetcher
	Devices(ctx context.Context) ([]byte, error)
	DeviceMetrics(ctx context.Context, deviceID string, limit int) ([]byte, error)
	Reset(ctx context.Context) ([]byte, error)
}

// Factory function variables - can be replaced in tests.
var (
	// newInspector builds the Kubernetes-backed inspector.
	newInspector = func(kubeconfigPath string) (status.ClusterInspector, error) {
		return cluster.NewClient(kubeconfigPath)
	}

	// newIngestionAPI builds the HTTP client for the ingestion API.
	newIngestionAPI = func(baseURL string) IngestionAPI {
		return ingestion.NewClient(baseURL)
	}
)

// loadConfig loads the carbonctl configuration, falling back to defaults
// when no config file exists.
func loadConfig(configPath string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// buildInspector returns a working inspector or, when no Kubernetes client
// can be built, one whose calls all fail with the underlying error. The
// status sequence degrades per section either way.
func buildInspector(cfg *config.Config) status.ClusterInspector {
	inspector, err := newInspector(cfg.Kubeconfig)
	if err != nil {
		return status.UnavailableInspector(err)
	}
	return inspector
}

// resolveAPI resolves the ingestion API endpoint and returns a client for
// it. Resolution failure yields a client bound to an empty endpoint whose
// requests fail descriptively, plus the empty URL for display.
func resolveAPI(ctx context.Context, cfg *config.Config) (IngestionAPI, string) {
	inspector := buildInspector(cfg)
	endpoint, err := inspector.ServiceURL(ctx, cfg.Namespace, cfg.APIService)
	if err != nil {
		endpoint = ""
	}
	return newIngestionAPI(endpoint), endpoint
}

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
