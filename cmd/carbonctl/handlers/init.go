package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/carbonprofiling/carbonctl/internal/config"
	"github.com/carbonprofiling/carbonctl/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive wizard.
	runWizard = wizard.Run

	// writeConfig writes the config to a file.
	writeConfig = config.WriteFile
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := result.ToConfig()

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("carbonctl - Carbon Profiling Platform CLI")
	fmt.Println("=========================================")
	fmt.Println()
	fmt.Println("This wizard creates a carbonctl configuration for your cluster.")
	fmt.Println("The defaults match a stock platform install; just hit enter to keep them.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()
	fmt.Printf("  Namespace:       %s\n", cfg.Namespace)
	fmt.Printf("  Ingestion API:   %s\n", cfg.APIService)
	fmt.Printf("  Dashboard:       %s\n", cfg.DashboardService)
	fmt.Printf("  Log deployment:  %s (%d lines)\n", cfg.Deployment, cfg.TailLines)
	fmt.Println()
	fmt.Println("Run 'carbonctl status' to check the platform.")
	fmt.Println()
}
