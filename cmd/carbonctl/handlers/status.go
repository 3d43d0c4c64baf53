package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/carbonprofiling/carbonctl/internal/config"
	"github.com/carbonprofiling/carbonctl/internal/status"
	"github.com/carbonprofiling/carbonctl/internal/ui/tui"
)

// watchInterval is how often watch mode re-collects.
const watchInterval = 5 * time.Second

// Status handles the status command.
//
// It collects a full platform report (endpoints, API health and stats, pods,
// logs) and renders it. Every collection step is best-effort: a failing step
// shows its failure in place and the rest of the report still renders.
func Status(ctx context.Context, configPath, namespace string, tail int64, watch, jsonOutput bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if namespace != "" {
		cfg.Namespace = namespace
	}
	if tail > 0 {
		cfg.TailLines = tail
	}

	collector := &status.Collector{
		Inspector: buildInspector(cfg),
		NewFetcher: func(baseURL string) status.APIFetcher {
			return newIngestionAPI(baseURL)
		},
		Config: cfg,
	}

	if watch {
		// Use TUI for interactive terminals (unless JSON output requested)
		if !jsonOutput && isInteractiveTTY() {
			return tui.Run(ctx, cfg.Namespace, watchInterval, collector.Collect)
		}
		return statusWatch(ctx, collector, cfg, jsonOutput)
	}

	return statusShow(ctx, collector, cfg, jsonOutput)
}

// statusShow collects and renders the report once.
func statusShow(ctx context.Context, collector *status.Collector, cfg *config.Config, jsonOutput bool) error {
	st := collector.Collect(ctx)

	if jsonOutput {
		return printStatusJSON(st)
	}

	printStatus(st, cfg)
	return nil
}

// statusWatch re-renders the report until the context is canceled.
func statusWatch(ctx context.Context, collector *status.Collector, cfg *config.Config, jsonOutput bool) error {
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	if err := statusShow(ctx, collector, cfg, jsonOutput); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !jsonOutput {
				fmt.Print("\033[H\033[2J")
			}
			if err := statusShow(ctx, collector, cfg, jsonOutput); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		}
	}
}

// printStatusJSON outputs the report as JSON.
func printStatusJSON(st *status.PlatformStatus) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
