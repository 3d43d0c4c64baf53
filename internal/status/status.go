// Package status collects a point-in-time report of the carbon profiling
// platform: ingestion API health and statistics, pod state, recent logs, and
// the resolved service endpoints.
//
// Collection is best-effort throughout. A step that fails records its error
// in the report and the remaining steps still run; nothing here aborts.
package status

import (
	"encoding/json"
	"time"

	"github.com/carbonprofiling/carbonctl/internal/cluster"
)

// Fetch holds the outcome of one HTTP fetch against the ingestion API.
// Exactly one of JSON, Text, or Error is set.
type Fetch struct {
	JSON  json.RawMessage `json:"json,omitempty"`
	Text  string          `json:"text,omitempty"`
	Error string          `json:"error,omitempty"`
}

// OK reports whether the fetch produced a body.
func (f Fetch) OK() bool {
	return f.Error == ""
}

// PlatformStatus is a point-in-time report of the platform.
type PlatformStatus struct {
	Namespace    string `json:"namespace"`
	APIEndpoint  string `json:"apiEndpoint,omitempty"`
	ResolveError string `json:"resolveError,omitempty"`

	Health       Fetch  `json:"health"`
	Stats        Fetch  `json:"stats"`
	TotalRecords int64  `json:"totalRecords"`
	Summary      *Fetch `json:"carbonSummary,omitempty"`

	Pods      []cluster.PodStatus `json:"pods"`
	PodsError string              `json:"podsError,omitempty"`

	Logs          string `json:"logs,omitempty"`
	LogsAvailable bool   `json:"logsAvailable"`

	DashboardEndpoint string    `json:"dashboardEndpoint,omitempty"`
	CollectedAt       time.Time `json:"collectedAt"`
}

// HasData reports whether the ingestion API has stored any records. Zero
// records and an undeterminable count are deliberately indistinguishable:
// both mean there is nothing to summarize and the user should be pointed at
// agent setup instead.
func (s *PlatformStatus) HasData() bool {
	return s.TotalRecords > 0
}

// NewFetch classifies the outcome of one HTTP fetch.
func NewFetch(body []byte, err error) Fetch {
	return newFetch(body, err)
}

func newFetch(body []byte, err error) Fetch {
	if err != nil {
		return Fetch{Error: err.Error()}
	}
	if json.Valid(body) && len(body) > 0 {
		return Fetch{JSON: json.RawMessage(body)}
	}
	return Fetch{Text: string(body)}
}
