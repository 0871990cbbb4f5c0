package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerwallsClient_Status(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/1/powerwalls/pw-1/status", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"response": {
				"site_name": "Home",
				"id": "pw-1",
				"energy_left": 7367,
				"total_pack_energy": 13512,
				"percentage_charged": 54.5,
				"battery_power": -1200
			}
		}`))
	}))

	status, err := client.Powerwalls().Status(context.Background(), "pw-1")
	require.NoError(t, err)

	assert.Equal(t, "Home", status.SiteName)
	assert.Equal(t, "pw-1", status.ID)
	assert.InDelta(t, 54.5, status.PercentageCharged, 0.001)
}

func TestPowerwallsClient_Data(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/1/powerwalls/pw-1/", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"response": {
				"site_name": "Home",
				"percentage_charged": 54.5,
				"grid_status": "Active",
				"operation": "self_consumption",
				"version": "23.12.10",
				"battery_count": 2,
				"backup": {"backup_reserve_percent": 20}
			}
		}`))
	}))

	data, err := client.Powerwalls().Data(context.Background(), "pw-1")
	require.NoError(t, err)

	assert.Equal(t, "Active", data.GridStatus)
	assert.Equal(t, "self_consumption", data.OperationMode)
	assert.Equal(t, "23.12.10", data.InstalledVersion)
	assert.Equal(t, 2, data.BatteryCount)
	require.NotNil(t, data.Backup)
	assert.InDelta(t, 20, data.Backup.BackupReservePercent, 0.001)
}

func TestPowerwallsClient_PowerHistory(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/1/powerwalls/pw-1/powerhistory", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"response": {
				"serial_number": "STE12345",
				"time_series": [
					{"timestamp": 1693526400, "solar_power": 3450, "battery_power": -1200, "grid_power": 0},
					{"timestamp": 1693527300, "solar_power": 3120, "battery_power": -900, "grid_power": 30}
				]
			}
		}`))
	}))

	history, err := client.Powerwalls().PowerHistory(context.Background(), "pw-1")
	require.NoError(t, err)

	assert.Equal(t, "STE12345", history.SerialNumber)
	require.Len(t, history.TimeSeries, 2)
	assert.InDelta(t, 3450, history.TimeSeries[0].SolarPower, 0.001)
	assert.InDelta(t, 30, history.TimeSeries[1].GridPower, 0.001)
}
