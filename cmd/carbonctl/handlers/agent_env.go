package handlers

import (
	"context"
	"fmt"
)

// AgentEnv handles the agent-env command. It prints the environment
// assignments a device agent needs to report into this platform, in a form
// suitable for eval "$(carbonctl agent-env)".
func AgentEnv(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	inspector := buildInspector(cfg)
	endpoint, err := inspector.ServiceURL(ctx, cfg.Namespace, cfg.APIService)
	if err != nil {
		return fmt.Errorf("resolve ingestion API endpoint: %w", err)
	}

	printAgentEnv(endpoint)
	return nil
}
