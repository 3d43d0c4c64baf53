package status

import (
	"context"
	"fmt"

	"github.com/carbonprofiling/carbonctl/internal/cluster"
)

// unavailableInspector satisfies ClusterInspector when no Kubernetes client
// could be built. Every call fails with the original error, so each section
// of the report shows why instead of the sequence aborting up front.
type unavailableInspector struct {
	err error
}

// UnavailableInspector returns an inspector whose operations all fail with
// err.
func UnavailableInspector(err error) ClusterInspector {
	return unavailableInspector{err: err}
}

func (u unavailableInspector) ServiceURL(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("kubernetes unavailable: %w", u.err)
}

func (u unavailableInspector) ListPods(context.Context, string) ([]cluster.PodStatus, error) {
	return nil, fmt.Errorf("kubernetes unavailable: %w", u.err)
}

func (u unavailableInspector) DeploymentLogs(context.Context, string, string, int64) (string, error) {
	return "", fmt.Errorf("kubernetes unavailable: %w", u.err)
}
