package handlers

import (
	"context"
	"fmt"
)

// Logs handles the logs command: the tail of the ingestion deployment's
// logs. Any failure prints the fixed fallback line instead of an error.
func Logs(ctx context.Context, configPath string, tail int64) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if tail > 0 {
		cfg.TailLines = tail
	}

	inspector := buildInspector(cfg)

	printHeader(fmt.Sprintf("📜 Logs: %s (last %d lines)", cfg.Deployment, cfg.TailLines))

	logs, err := inspector.DeploymentLogs(ctx, cfg.Namespace, cfg.Deployment, cfg.TailLines)
	if err != nil {
		fmt.Println(logsFallback)
		return nil
	}

	fmt.Print(ensureTrailingNewline(logs))
	return nil
}
