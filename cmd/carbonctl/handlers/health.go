package handlers

import (
	"context"
	"fmt"

	"github.com/carbonprofiling/carbonctl/internal/status"
)

// Health handles the health command: a single probe of the ingestion API's
// /health endpoint.
func Health(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	api, endpoint := resolveAPI(ctx, cfg)

	printHeader("🏥 Ingestion API Health")
	if endpoint != "" {
		fmt.Printf("Endpoint: %s\n\n", endpoint)
	}

	body, err := api.Health(ctx)
	printFetch(status.NewFetch(body, err))
	return nil
}
