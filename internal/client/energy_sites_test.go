package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltwise-io/teslago/pkg/tesla"
)

func TestEnergySitesClient_Status(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/1/energy_sites/429124/site_status", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"response": {
				"resource_type": "battery",
				"site_name": "Home",
				"percentage_charged": 54.5,
				"energy_left": 7367,
				"total_pack_energy": 13512,
				"battery_power": -1200
			}
		}`))
	}))

	status, err := client.EnergySites().Status(context.Background(), "429124")
	require.NoError(t, err)

	assert.Equal(t, "Home", status.SiteName)
	assert.InDelta(t, 54.5, status.PercentageCharged, 0.001)
	assert.InDelta(t, -1200, status.BatteryPower, 0.001)
}

func TestEnergySitesClient_LiveStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/1/energy_sites/429124/live_status", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"response": {
				"solar_power": 3450,
				"battery_power": -1200,
				"load_power": 2250,
				"grid_power": 0,
				"grid_status": "Active",
				"percentage_charged": 54.5,
				"storm_mode_active": false
			}
		}`))
	}))

	live, err := client.EnergySites().LiveStatus(context.Background(), "429124")
	require.NoError(t, err)

	assert.InDelta(t, 3450, live.SolarPower, 0.001)
	assert.InDelta(t, -1200, live.BatteryPower, 0.001)
	assert.Equal(t, "Active", live.GridStatus)
	assert.False(t, live.StormModeActive)
}

func TestEnergySitesClient_Info(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/1/energy_sites/429124/site_info", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"response": {
				"id": "429124",
				"site_name": "Home",
				"version": "23.12.10",
				"battery_count": 2,
				"nameplate_power": 10000,
				"nameplate_energy": 27000,
				"backup_reserve_percent": 20
			}
		}`))
	}))

	info, err := client.EnergySites().Info(context.Background(), "429124")
	require.NoError(t, err)

	assert.Equal(t, "Home", info.SiteName)
	assert.Equal(t, 2, info.BatteryCount)
	assert.InDelta(t, 20, info.BackupReservePercent, 0.001)
}

func TestEnergySitesClient_History(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/1/energy_sites/429124/history", r.URL.Path)
		assert.Equal(t, "energy", r.URL.Query().Get("kind"))
		assert.Equal(t, "week", r.URL.Query().Get("period"))

		_, _ = w.Write([]byte(`{
			"response": {
				"serial_number": "STE12345",
				"period": "week",
				"time_series": [
					{"timestamp": 1693526400, "solar_energy_exported": 12400, "grid_energy_imported": 3200, "battery_energy_exported": 5100}
				]
			}
		}`))
	}))

	history, err := client.EnergySites().History(context.Background(), "429124", tesla.HistoryPeriodWeek)
	require.NoError(t, err)

	assert.Equal(t, tesla.HistoryPeriodWeek, history.Period)
	require.Len(t, history.TimeSeries, 1)
	assert.InDelta(t, 12400, history.TimeSeries[0].SolarEnergyExported, 0.001)
	assert.InDelta(t, 3200, history.TimeSeries[0].GridEnergyImported, 0.001)
}

func TestEnergySitesClient_ParseFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))

	_, err := client.EnergySites().Status(context.Background(), "429124")
	assert.ErrorIs(t, err, tesla.ErrFailedToParseData)
}
