package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"

	"github.com/carbonprofiling/carbonctl/internal/cluster"
	"github.com/carbonprofiling/carbonctl/internal/status"
)

// captureOutput captures stdout written during f.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

type fakeInspector struct {
	urls    map[string]string
	pods    []cluster.PodStatus
	podsErr error
	logs    string
	logsErr error
}

func (f *fakeInspector) ServiceURL(_ context.Context, _, name string) (string, error) {
	url, ok := f.urls[name]
	if !ok {
		return "", errors.New("services \"" + name + "\" not found")
	}
	return url, nil
}

func (f *fakeInspector) ListPods(context.Context, string) ([]cluster.PodStatus, error) {
	return f.pods, f.podsErr
}

func (f *fakeInspector) DeploymentLogs(context.Context, string, string, int64) (string, error) {
	return f.logs, f.logsErr
}

type fakeAPI struct {
	health       string
	stats        string
	summary      string
	devices      string
	metrics      string
	resetBody    string
	fetchErr     error
	summaryCalls int
	resetCalls   int
}

func (f *fakeAPI) Health(context.Context) ([]byte, error) {
	return []byte(f.health), f.fetchErr
}

func (f *fakeAPI) Stats(context.Context) ([]byte, error) {
	return []byte(f.stats), f.fetchErr
}

func (f *fakeAPI) CarbonSummary(context.Context) ([]byte, error) {
	f.summaryCalls++
	return []byte(f.summary), f.fetchErr
}

func (f *fakeAPI) Devices(context.Context) ([]byte, error) {
	return []byte(f.devices), f.fetchErr
}

func (f *fakeAPI) DeviceMetrics(context.Context, string, int) ([]byte, error) {
	return []byte(f.metrics), f.fetchErr
}

func (f *fakeAPI) Reset(context.Context) ([]byte, error) {
	f.resetCalls++
	return []byte(f.resetBody), f.fetchErr
}

// withFakes swaps the factory vars for the duration of f.
func withFakes(ins status.ClusterInspector, api *fakeAPI, f func()) {
	origInspector := newInspector
	origAPI := newIngestionAPI
	defer func() {
		newInspector = origInspector
		newIngestionAPI = origAPI
	}()

	newInspector = func(string) (status.ClusterInspector, error) {
		return ins, nil
	}
	newIngestionAPI = func(string) IngestionAPI {
		return api
	}

	f()
}
