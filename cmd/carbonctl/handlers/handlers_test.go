package handlers

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonprofiling/carbonctl/internal/config"
	"github.com/carbonprofiling/carbonctl/internal/config/wizard"
)

func TestHealth(t *testing.T) {
	ins := healthyInspector()
	api := &fakeAPI{health: `{"status":"healthy","service":"carbon-ingestion-api"}`}

	var err error
	output := captureOutput(func() {
		withFakes(ins, api, func() {
			err = Health(context.Background(), "")
		})
	})

	require.NoError(t, err)
	assert.Contains(t, output, "http://192.168.1.1:30080")
	assert.Contains(t, output, `"status": "healthy"`)
}

func TestHealthUnreachable(t *testing.T) {
	ins := healthyInspector()
	api := &fakeAPI{fetchErr: errors.New("connection refused")}

	var err error
	output := captureOutput(func() {
		withFakes(ins, api, func() {
			err = Health(context.Background(), "")
		})
	})

	require.NoError(t, err, "unreachable API degrades, it does not fail the command")
	assert.Contains(t, output, "connection refused")
}

func TestLogs(t *testing.T) {
	ins := healthyInspector()
	ins.logs = "ingested metrics from device_5613\n"

	var err error
	output := captureOutput(func() {
		withFakes(ins, &fakeAPI{}, func() {
			err = Logs(context.Background(), "", 20)
		})
	})

	require.NoError(t, err)
	assert.Contains(t, output, "device_5613")
	assert.Contains(t, output, "last 20 lines")
}

func TestLogsFallback(t *testing.T) {
	ins := healthyInspector()
	ins.logsErr = errors.New("deployment not found")

	var err error
	output := captureOutput(func() {
		withFakes(ins, &fakeAPI{}, func() {
			err = Logs(context.Background(), "", 0)
		})
	})

	require.NoError(t, err)
	assert.Contains(t, output, logsFallback)
	assert.NotContains(t, output, "deployment not found")
}

func TestDevicesTable(t *testing.T) {
	api := &fakeAPI{devices: `{
		"devices": [
			{"device_id":"device_5613","device_type":"laptop","record_count":12,"last_seen":"2026-08-31T10:00:00Z","latest_power_watts":23.5}
		],
		"total_devices": 1
	}`}

	var err error
	output := captureOutput(func() {
		withFakes(healthyInspector(), api, func() {
			err = Devices(context.Background(), "")
		})
	})

	require.NoError(t, err)
	assert.Contains(t, output, "device_5613")
	assert.Contains(t, output, "laptop")
	assert.Contains(t, output, "23.5W")
	assert.Contains(t, output, "1 device(s) total")
}

func TestDevicesEmpty(t *testing.T) {
	api := &fakeAPI{devices: `{"devices": [], "total_devices": 0}`}

	output := captureOutput(func() {
		withFakes(healthyInspector(), api, func() {
			_ = Devices(context.Background(), "")
		})
	})

	assert.Contains(t, output, "No devices are reporting yet.")
}

func TestDevicesUnexpectedShapePrintsBody(t *testing.T) {
	api := &fakeAPI{devices: `plain text error`}

	output := captureOutput(func() {
		withFakes(healthyInspector(), api, func() {
			_ = Devices(context.Background(), "")
		})
	})

	assert.Contains(t, output, "plain text error")
}

func TestDeviceMetrics(t *testing.T) {
	api := &fakeAPI{metrics: `{"device_id":"device_5613","record_count":2}`}

	var err error
	output := captureOutput(func() {
		withFakes(healthyInspector(), api, func() {
			err = DeviceMetrics(context.Background(), "", "device_5613", 5)
		})
	})

	require.NoError(t, err)
	assert.Contains(t, output, "device_5613")
	assert.Contains(t, output, `"record_count": 2`)
}

func TestAgentEnv(t *testing.T) {
	var err error
	output := captureOutput(func() {
		withFakes(healthyInspector(), &fakeAPI{}, func() {
			err = AgentEnv(context.Background(), "")
		})
	})

	require.NoError(t, err)
	assert.Contains(t, output, "export API_ENDPOINT=http://192.168.1.1:30080\n")
	assert.Contains(t, output, "export SEND_TO_API=true\n")
}

func TestAgentEnvResolutionFailureIsFatal(t *testing.T) {
	ins := &fakeInspector{urls: map[string]string{}}

	var err error
	captureOutput(func() {
		withFakes(ins, &fakeAPI{}, func() {
			err = AgentEnv(context.Background(), "")
		})
	})

	// Unlike status, agent-env output is meant for eval; printing empty
	// assignments would poison the caller's environment.
	assert.Error(t, err)
}

func TestResetWithYes(t *testing.T) {
	api := &fakeAPI{resetBody: `{"status":"reset_complete"}`}

	var err error
	output := captureOutput(func() {
		withFakes(healthyInspector(), api, func() {
			err = Reset(context.Background(), "", true)
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 1, api.resetCalls)
	assert.Contains(t, output, "reset_complete")
}

func TestResetWithoutYesNonInteractive(t *testing.T) {
	api := &fakeAPI{}

	var err error
	captureOutput(func() {
		withFakes(healthyInspector(), api, func() {
			// captureOutput replaces stdout with a pipe, so the session
			// is non-interactive here.
			err = Reset(context.Background(), "", false)
		})
	})

	require.Error(t, err)
	assert.Zero(t, api.resetCalls)
}

func TestInitWritesConfig(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "carbonctl.yaml")

	origWizard := runWizard
	defer func() { runWizard = origWizard }()
	runWizard = func(context.Context) (*wizard.Result, error) {
		return &wizard.Result{
			Namespace:        "green-lab",
			APIService:       "ingest",
			DashboardService: "grafana",
			Deployment:       "ingest",
			TailLines:        "25",
		}, nil
	}

	var err error
	output := captureOutput(func() {
		err = Init(context.Background(), outputPath)
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Configuration saved!")

	cfg, err := config.LoadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "green-lab", cfg.Namespace)
	assert.Equal(t, int64(25), cfg.TailLines)
}

func TestInitWizardCanceled(t *testing.T) {
	origWizard := runWizard
	defer func() { runWizard = origWizard }()
	runWizard = func(context.Context) (*wizard.Result, error) {
		return nil, errors.New("user aborted")
	}

	var err error
	captureOutput(func() {
		err = Init(context.Background(), filepath.Join(t.TempDir(), "carbonctl.yaml"))
	})

	assert.Error(t, err)
}
