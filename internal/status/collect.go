package status

import (
	"context"
	"time"

	"github.com/carbonprofiling/carbonctl/internal/cluster"
	"github.com/carbonprofiling/carbonctl/internal/config"
	"github.com/carbonprofiling/carbonctl/internal/jsontext"
)

// ClusterInspector is the narrow slice of cluster operations the collector
// needs. *cluster.Client implements it; tests inject doubles.
type ClusterInspector interface {
	ServiceURL(ctx context.Context, namespace, name string) (string, error)
	ListPods(ctx context.Context, namespace string) ([]cluster.PodStatus, error)
	DeploymentLogs(ctx context.Context, namespace, name string, tailLines int64) (string, error)
}

// APIFetcher fetches documents from the ingestion API. *ingestion.Client
// implements it.
type APIFetcher interface {
	Health(ctx context.Context) ([]byte, error)
	Stats(ctx context.Context) ([]byte, error)
	CarbonSummary(ctx context.Context) ([]byte, error)
}

// Collector assembles platform status reports. NewFetcher is called with the
// endpoint resolved at collection time, so a service that moves between
// collections (watch mode) is picked up.
type Collector struct {
	Inspector  ClusterInspector
	NewFetcher func(baseURL string) APIFetcher
	Config     *config.Config
}

// recordCountPaths are the places a record count may appear in the stats
// document, in lookup order. The ingestion API nests it under
// aggregate_metrics; older builds reported it at the top level.
var recordCountPaths = []string{
	"total_records",
	"aggregate_metrics.total_records",
	"api_stats.total_records",
}

// Collect gathers a full platform status report. Every step degrades
// independently; the returned report is always complete in shape.
func (c *Collector) Collect(ctx context.Context) *PlatformStatus {
	cfg := c.Config
	st := &PlatformStatus{
		Namespace:   cfg.Namespace,
		CollectedAt: time.Now().UTC(),
	}

	endpoint, err := c.Inspector.ServiceURL(ctx, cfg.Namespace, cfg.APIService)
	if err != nil {
		st.ResolveError = err.Error()
	}
	st.APIEndpoint = endpoint

	// An unresolved endpoint still flows into the fetcher: the fetches fail
	// visibly instead of being skipped, mirroring what the user would see
	// pointing curl at an empty URL.
	api := c.NewFetcher(endpoint)

	st.Health = newFetch(api.Health(ctx))

	statsBody, statsErr := api.Stats(ctx)
	st.Stats = newFetch(statsBody, statsErr)
	st.TotalRecords = recordCount(statsBody)

	if st.HasData() {
		summary := newFetch(api.CarbonSummary(ctx))
		st.Summary = &summary
	}

	pods, err := c.Inspector.ListPods(ctx, cfg.Namespace)
	if err != nil {
		st.PodsError = err.Error()
	} else {
		st.Pods = pods
	}

	logs, err := c.Inspector.DeploymentLogs(ctx, cfg.Namespace, cfg.Deployment, cfg.TailLines)
	if err == nil {
		st.Logs = logs
		st.LogsAvailable = true
	}

	if dashboard, err := c.Inspector.ServiceURL(ctx, cfg.Namespace, cfg.DashboardService); err == nil {
		st.DashboardEndpoint = dashboard
	}

	return st
}

// recordCount extracts the stored record count from a stats document,
// defaulting to zero for any missing, malformed, or empty input.
func recordCount(body []byte) int64 {
	for _, path := range recordCountPaths {
		if n := jsontext.IntField(body, path, -1); n >= 0 {
			return n
		}
	}
	return 0
}
