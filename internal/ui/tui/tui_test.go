package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/carbonprofiling/carbonctl/internal/cluster"
	"github.com/carbonprofiling/carbonctl/internal/status"
)

func healthyStatus() *status.PlatformStatus {
	return &status.PlatformStatus{
		Namespace:         "carbon-profiling",
		APIEndpoint:       "http://192.168.1.1:30080",
		DashboardEndpoint: "http://192.168.1.1:30081",
		Health:            status.Fetch{JSON: []byte(`{"status":"healthy"}`)},
		Stats:             status.Fetch{JSON: []byte(`{"total_records":42}`)},
		TotalRecords:      42,
		Pods: []cluster.PodStatus{
			{Name: "ingestion-api-7d4b9", Ready: "1/1", Phase: "Running", Age: "2h"},
		},
		Logs:          "line one\nline two\n",
		LogsAvailable: true,
	}
}

func TestRenderViewCollecting(t *testing.T) {
	m := NewModel("carbon-profiling")
	out := renderView(m)
	assert.Contains(t, out, "carbonctl: carbon-profiling")
	assert.Contains(t, out, "collecting")
}

func TestRenderViewHealthy(t *testing.T) {
	m := NewModel("carbon-profiling")
	m.Status = healthyStatus()
	m.LastUpdate = time.Now()

	out := renderView(m)
	assert.Contains(t, out, "Healthy")
	assert.Contains(t, out, "http://192.168.1.1:30080")
	assert.Contains(t, out, "http://192.168.1.1:30081")
	assert.Contains(t, out, "42 records stored")
	assert.Contains(t, out, "ingestion-api-7d4b9")
	assert.Contains(t, out, "line two")
}

func TestRenderViewNoData(t *testing.T) {
	st := healthyStatus()
	st.TotalRecords = 0
	st.Stats = status.Fetch{JSON: []byte(`{"total_records":0}`)}

	m := NewModel("carbon-profiling")
	m.Status = st

	out := renderView(m)
	assert.Contains(t, out, "no data")
	assert.Contains(t, out, "no records yet")
}

func TestRenderViewUnreachableAPI(t *testing.T) {
	st := healthyStatus()
	st.Health = status.Fetch{Error: "connection refused"}
	st.Stats = status.Fetch{Error: "connection refused"}
	st.APIEndpoint = ""

	m := NewModel("carbon-profiling")
	m.Status = st

	out := renderView(m)
	assert.Contains(t, out, "API unreachable")
	assert.Contains(t, out, "unresolved")
}

func TestRenderViewPodFailure(t *testing.T) {
	st := healthyStatus()
	st.Pods = nil
	st.PodsError = "forbidden"

	m := NewModel("carbon-profiling")
	m.Status = st

	out := renderView(m)
	assert.Contains(t, out, "forbidden")
}

func TestModelUpdateQuitKeys(t *testing.T) {
	m := NewModel("carbon-profiling")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.NotNil(t, cmd, "q should quit")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd, "ctrl+c should quit")
}

func TestModelUpdateStatusMsg(t *testing.T) {
	m := NewModel("carbon-profiling")
	updated, _ := m.Update(StatusMsg{Status: healthyStatus()})

	model := updated.(Model)
	assert.NotNil(t, model.Status)
	assert.False(t, model.LastUpdate.IsZero())
}

func TestModelUpdateTickAdvancesSpinner(t *testing.T) {
	m := NewModel("carbon-profiling")
	updated, cmd := m.Update(TickMsg(time.Now()))

	model := updated.(Model)
	assert.Equal(t, 1, model.SpinnerFrame)
	assert.NotNil(t, cmd, "tick reschedules itself")
}
