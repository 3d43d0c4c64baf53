package handlers

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/carbonprofiling/carbonctl/internal/status"
)

// confirmReset asks the user for confirmation. Replaced in tests.
var confirmReset = func(ctx context.Context) (bool, error) {
	confirmed := false
	confirm := huh.NewConfirm().
		Title("Delete all stored metrics?").
		Description("Every ingested record will be removed. Devices keep reporting.").
		Value(&confirmed)
	err := huh.NewForm(huh.NewGroup(confirm)).WithShowHelp(false).RunWithContext(ctx)
	return confirmed, err
}

// Reset handles the reset command: clears all stored metrics on the
// ingestion API. Destructive, so it requires --yes or an interactive
// confirmation.
func Reset(ctx context.Context, configPath string, yes bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if !yes {
		if !isInteractiveTTY() {
			return fmt.Errorf("refusing to reset without --yes in a non-interactive session")
		}
		confirmed, err := confirmReset(ctx)
		if err != nil {
			return fmt.Errorf("confirmation canceled: %w", err)
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	api, _ := resolveAPI(ctx, cfg)

	body, err := api.Reset(ctx)
	if err != nil {
		return fmt.Errorf("reset metrics: %w", err)
	}

	printFetch(status.NewFetch(body, nil))
	return nil
}
