// Package wizard implements the interactive prompt flow for creating a
// carbonctl configuration file. It uses charmbracelet/huh for text inputs
// and selects.
package wizard

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/carbonprofiling/carbonctl/internal/config"
)

// dnsNameRegex validates Kubernetes resource names: 1-63 lowercase
// alphanumeric characters or hyphens, starting and ending alphanumeric.
var dnsNameRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?$`)

// Result holds the answers from the interactive wizard.
type Result struct {
	Namespace        string
	APIService       string
	DashboardService string
	Deployment       string
	TailLines        string
}

// ToConfig converts the wizard answers into a configuration.
func (r *Result) ToConfig() *config.Config {
	cfg := config.Default()
	cfg.Namespace = r.Namespace
	cfg.APIService = r.APIService
	cfg.DashboardService = r.DashboardService
	cfg.Deployment = r.Deployment
	if n, err := strconv.ParseInt(r.TailLines, 10, 64); err == nil && n > 0 {
		cfg.TailLines = n
	}
	return cfg
}

// Run walks the user through the configuration questions.
// The context is used for cancellation support (e.g., Ctrl+C).
func Run(ctx context.Context) (*Result, error) {
	result := &Result{
		Namespace:        config.DefaultNamespace,
		APIService:       config.DefaultAPIService,
		DashboardService: config.DefaultDashboardService,
		Deployment:       config.DefaultDeployment,
		TailLines:        strconv.Itoa(config.DefaultTailLines),
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Namespace").
				Description("Cluster namespace the platform runs in").
				Value(&result.Namespace).
				Validate(validateResourceName),
			huh.NewInput().
				Title("Ingestion API Service").
				Description("Service name of the ingestion API").
				Value(&result.APIService).
				Validate(validateResourceName),
			huh.NewInput().
				Title("Dashboard Service").
				Description("Service name of the dashboard").
				Value(&result.DashboardService).
				Validate(validateResourceName),
		).Title("Platform Resources"),
		huh.NewGroup(
			huh.NewInput().
				Title("Log Deployment").
				Description("Deployment whose logs the status report tails").
				Value(&result.Deployment).
				Validate(validateResourceName),
			huh.NewInput().
				Title("Log Tail Lines").
				Description("How many log lines to show").
				Value(&result.TailLines).
				Validate(validateTailLines),
		).Title("Status Report"),
	).RunWithContext(ctx)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func validateResourceName(s string) error {
	if !dnsNameRegex.MatchString(s) {
		return fmt.Errorf("must be 1-63 lowercase alphanumeric characters or hyphens")
	}
	return nil
}

func validateTailLines(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}
