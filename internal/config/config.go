// Package config defines the carbonctl configuration model.
//
// The configuration names the platform's resources inside the cluster:
// the namespace everything runs in, the ingestion API and dashboard
// services, and the deployment whose logs the status report tails. All
// fields have working defaults for a stock platform install, so running
// without a config file is the common case.
package config

import "fmt"

// Defaults for a stock platform deployment.
const (
	DefaultConfigFile       = "carbonctl.yaml"
	DefaultNamespace        = "carbon-profiling"
	DefaultAPIService       = "ingestion-api"
	DefaultDashboardService = "dashboard"
	DefaultDeployment       = "ingestion-api"
	DefaultTailLines        = 50
)

// Config holds the carbonctl configuration.
type Config struct {
	// Namespace is the cluster namespace the platform runs in.
	Namespace string `mapstructure:"namespace" yaml:"namespace"`

	// APIService is the name of the ingestion API service.
	APIService string `mapstructure:"api_service" yaml:"api_service"`

	// DashboardService is the name of the dashboard service.
	DashboardService string `mapstructure:"dashboard_service" yaml:"dashboard_service"`

	// Deployment is the deployment whose logs the status report tails.
	Deployment string `mapstructure:"deployment" yaml:"deployment"`

	// TailLines is how many log lines the status report shows.
	TailLines int64 `mapstructure:"tail_lines" yaml:"tail_lines"`

	// Kubeconfig overrides the kubeconfig path. Empty means the standard
	// loading rules ($KUBECONFIG, then ~/.kube/config).
	Kubeconfig string `mapstructure:"kubeconfig" yaml:"kubeconfig,omitempty"`
}

// Default returns a configuration for a stock platform install.
func Default() *Config {
	return &Config{
		Namespace:        DefaultNamespace,
		APIService:       DefaultAPIService,
		DashboardService: DefaultDashboardService,
		Deployment:       DefaultDeployment,
		TailLines:        DefaultTailLines,
	}
}

// applyDefaults fills empty fields with defaults.
func (c *Config) applyDefaults() {
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	if c.APIService == "" {
		c.APIService = DefaultAPIService
	}
	if c.DashboardService == "" {
		c.DashboardService = DefaultDashboardService
	}
	if c.Deployment == "" {
		c.Deployment = DefaultDeployment
	}
	if c.TailLines <= 0 {
		c.TailLines = DefaultTailLines
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Namespace == "" {
		return fmt.Errorf("namespace is required")
	}
	if c.APIService == "" {
		return fmt.Errorf("api_service is required")
	}
	if c.Deployment == "" {
		return fmt.Errorf("deployment is required")
	}
	if c.TailLines <= 0 {
		return fmt.Errorf("tail_lines must be positive, got %d", c.TailLines)
	}
	return nil
}
