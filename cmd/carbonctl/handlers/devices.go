package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/carbonprofiling/carbonctl/internal/status"
)

// deviceList mirrors the /api/v1/metrics/devices response.
type deviceList struct {
	Devices      []deviceSummary `json:"devices"`
	TotalDevices int             `json:"total_devices"`
}

type deviceSummary struct {
	DeviceID         string   `json:"device_id"`
	DeviceType       string   `json:"device_type"`
	RecordCount      int      `json:"record_count"`
	LastSeen         string   `json:"last_seen"`
	LatestPowerWatts *float64 `json:"latest_power_watts"`
}

// Devices handles the devices command: a table of every device currently
// reporting metrics.
func Devices(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	api, _ := resolveAPI(ctx, cfg)

	body, err := api.Devices(ctx)
	if err != nil {
		return fmt.Errorf("fetch devices: %w", err)
	}

	printHeader("💻 Reporting Devices")

	var list deviceList
	if err := json.Unmarshal(body, &list); err != nil {
		// Unexpected shape: show what the API said instead of failing.
		printFetch(status.NewFetch(body, nil))
		return nil
	}

	if len(list.Devices) == 0 {
		fmt.Println("No devices are reporting yet.")
		return nil
	}

	fmt.Printf("%-24s %-10s %8s %8s  %s\n", "DEVICE", "TYPE", "RECORDS", "POWER", "LAST SEEN")
	for _, d := range list.Devices {
		power := "-"
		if d.LatestPowerWatts != nil {
			power = fmt.Sprintf("%.1fW", *d.LatestPowerWatts)
		}
		fmt.Printf("%-24s %-10s %8d %8s  %s\n", d.DeviceID, d.DeviceType, d.RecordCount, power, d.LastSeen)
	}
	fmt.Printf("\n%d device(s) total\n", list.TotalDevices)
	return nil
}

// DeviceMetrics handles the device command: recent metric records for one
// device, pretty-printed.
func DeviceMetrics(ctx context.Context, configPath, deviceID string, limit int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	api, _ := resolveAPI(ctx, cfg)

	body, err := api.DeviceMetrics(ctx, deviceID, limit)
	if err != nil {
		return fmt.Errorf("fetch metrics for %s: %w", deviceID, err)
	}

	printHeader(fmt.Sprintf("💻 Device Metrics: %s", deviceID))
	printFetch(status.NewFetch(body, nil))
	return nil
}
