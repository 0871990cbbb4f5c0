package endpoints

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voltwise-io/teslago/pkg/tesla"
)

func TestEndpointURL(t *testing.T) {
	api := tesla.NewCustomAPI("https://api.example.com", "https://auth.example.com", "https://auth-cn.example.com",
		"client-id", "client-secret", "https://example.com/callback", "openid")

	tests := []struct {
		name     string
		endpoint Endpoint
		method   string
		url      string
	}{
		{
			name:     "token",
			endpoint: Token(),
			method:   http.MethodPost,
			url:      "https://auth.example.com/oauth2/v3/token",
		},
		{
			name:     "token on china host",
			endpoint: Token().OnAuthBaseCN(),
			method:   http.MethodPost,
			url:      "https://auth-cn.example.com/oauth2/v3/token",
		},
		{
			name:     "revoke carries the token as a query parameter",
			endpoint: Revoke("access-token"),
			method:   http.MethodPost,
			url:      "https://auth.example.com/oauth2/v3/revoke?token=access-token",
		},
		{
			name:     "vehicles",
			endpoint: Vehicles(),
			method:   http.MethodGet,
			url:      "https://api.example.com/api/1/vehicles",
		},
		{
			name:     "vehicle summary",
			endpoint: VehicleSummary("12345"),
			method:   http.MethodGet,
			url:      "https://api.example.com/api/1/vehicles/12345",
		},
		{
			name:     "vehicle data",
			endpoint: VehicleData("12345"),
			method:   http.MethodGet,
			url:      "https://api.example.com/api/1/vehicles/12345/vehicle_data",
		},
		{
			name:     "mobile access",
			endpoint: MobileAccess("12345"),
			method:   http.MethodGet,
			url:      "https://api.example.com/api/1/vehicles/12345/mobile_enabled",
		},
		{
			name:     "wake up",
			endpoint: WakeUp("12345"),
			method:   http.MethodPost,
			url:      "https://api.example.com/api/1/vehicles/12345/wake_up",
		},
		{
			name:     "command",
			endpoint: Command("12345", "flash_lights"),
			method:   http.MethodPost,
			url:      "https://api.example.com/api/1/vehicles/12345/command/flash_lights",
		},
		{
			name:     "nearby charging sites",
			endpoint: NearbyChargingSites("12345"),
			method:   http.MethodGet,
			url:      "https://api.example.com/api/1/vehicles/12345/nearby_charging_sites",
		},
		{
			name:     "charge history",
			endpoint: ChargeHistory("12345"),
			method:   http.MethodGet,
			url:      "https://api.example.com/api/1/vehicles/12345/charge_history",
		},
		{
			name:     "products",
			endpoint: Products(),
			method:   http.MethodGet,
			url:      "https://api.example.com/api/1/products",
		},
		{
			name:     "energy site status",
			endpoint: EnergySiteStatus("987"),
			method:   http.MethodGet,
			url:      "https://api.example.com/api/1/energy_sites/987/site_status",
		},
		{
			name:     "energy site live status",
			endpoint: EnergySiteLiveStatus("987"),
			method:   http.MethodGet,
			url:      "https://api.example.com/api/1/energy_sites/987/live_status",
		},
		{
			name:     "energy site info",
			endpoint: EnergySiteInfo("987"),
			method:   http.MethodGet,
			url:      "https://api.example.com/api/1/energy_sites/987/site_info",
		},
		{
			name:     "energy site history",
			endpoint: EnergySiteHistory("987", tesla.HistoryPeriodDay),
			method:   http.MethodGet,
			url:      "https://api.example.com/api/1/energy_sites/987/history?kind=energy&period=day",
		},
		{
			name:     "battery status",
			endpoint: BatteryStatus("pw-1"),
			method:   http.MethodGet,
			url:      "https://api.example.com/api/1/powerwalls/pw-1/status",
		},
		{
			name:     "battery data keeps the trailing slash",
			endpoint: BatteryData("pw-1"),
			method:   http.MethodGet,
			url:      "https://api.example.com/api/1/powerwalls/pw-1/",
		},
		{
			name:     "battery power history",
			endpoint: BatteryPowerHistory("pw-1"),
			method:   http.MethodGet,
			url:      "https://api.example.com/api/1/powerwalls/pw-1/powerhistory",
		},
		{
			name:     "me",
			endpoint: Me(),
			method:   http.MethodGet,
			url:      "https://api.example.com/api/1/users/me",
		},
		{
			name:     "user region",
			endpoint: UserRegion(),
			method:   http.MethodGet,
			url:      "https://api.example.com/api/1/users/region",
		},
		{
			name:     "partner accounts",
			endpoint: PartnerAccounts(),
			method:   http.MethodPost,
			url:      "https://api.example.com/api/1/partner_accounts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.method, tt.endpoint.Method)
			assert.Equal(t, tt.url, tt.endpoint.URL(api))
		})
	}
}

func TestAuthorizeURL(t *testing.T) {
	api := tesla.NewCustomAPI("https://api.example.com", "https://auth.example.com", "https://auth-cn.example.com",
		"client-id", "client-secret", "https://example.com/callback", "openid")

	endpoint := Authorize(url.Values{
		"client_id":     []string{"client-id"},
		"response_type": []string{"code"},
	})

	assert.Equal(t, http.MethodGet, endpoint.Method)
	assert.Equal(t, "https://auth.example.com/oauth2/v3/authorize?client_id=client-id&response_type=code", endpoint.URL(api))
}

func TestOnAuthBaseCNDoesNotMutate(t *testing.T) {
	endpoint := Token()
	china := endpoint.OnAuthBaseCN()

	assert.Equal(t, BaseAuth, endpoint.Base)
	assert.Equal(t, BaseAuthCN, china.Base)
}
