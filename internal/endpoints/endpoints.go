// Package endpoints resolves logical API operations to concrete request
// targets. The operation set is closed: every endpoint is built by one of
// the constructors below, so resolution is total and cannot fail at
// runtime.
package endpoints

import (
	"net/http"
	"net/url"

	"github.com/voltwise-io/teslago/pkg/tesla"
)

// Base selects which host an endpoint resolves against.
type Base int

const (
	// BaseAPI targets the owner or regional fleet API host.
	BaseAPI Base = iota
	// BaseAuth targets the primary OAuth host.
	BaseAuth
	// BaseAuthCN targets the China-variant OAuth host.
	BaseAuthCN
)

// Endpoint is a resolved request target: host selector, path, method and
// query parameters. Values are ephemeral; they are built per call and
// never persisted.
type Endpoint struct {
	Base   Base
	Method string
	Path   string
	Query  url.Values
}

// URL renders the endpoint against an API surface.
func (e Endpoint) URL(api tesla.API) string {
	var base string

	switch e.Base {
	case BaseAuth:
		base = api.AuthBaseURL()
	case BaseAuthCN:
		base = api.AuthBaseURLCN()
	default:
		base = api.BaseURL()
	}

	target := base + e.Path
	if len(e.Query) > 0 {
		target += "?" + e.Query.Encode()
	}

	return target
}

// OnAuthBaseCN returns the endpoint retargeted at the China-variant OAuth
// host, used by the region-redirect retry policy.
func (e Endpoint) OnAuthBaseCN() Endpoint {
	e.Base = BaseAuthCN

	return e
}

// OAuth endpoints.

// Authorize is the PKCE authorization page. It is the only endpoint with
// a populated query beyond revoke's token parameter.
func Authorize(query url.Values) Endpoint {
	return Endpoint{Base: BaseAuth, Method: http.MethodGet, Path: "/oauth2/v3/authorize", Query: query}
}

// Token is the OAuth token exchange endpoint.
func Token() Endpoint {
	return Endpoint{Base: BaseAuth, Method: http.MethodPost, Path: "/oauth2/v3/token"}
}

// Revoke invalidates an access token server-side.
func Revoke(token string) Endpoint {
	return Endpoint{
		Base:   BaseAuth,
		Method: http.MethodPost,
		Path:   "/oauth2/v3/revoke",
		Query:  url.Values{"token": []string{token}},
	}
}

// Vehicle endpoints.

// Vehicles lists the account's vehicles.
func Vehicles() Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/api/1/vehicles"}
}

// VehicleSummary fetches one vehicle's summary record.
func VehicleSummary(vehicleID string) Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/api/1/vehicles/" + vehicleID}
}

// VehicleData fetches the full state snapshot.
func VehicleData(vehicleID string) Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/api/1/vehicles/" + vehicleID + "/vehicle_data"}
}

// MobileAccess reports whether mobile access is enabled.
func MobileAccess(vehicleID string) Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/api/1/vehicles/" + vehicleID + "/mobile_enabled"}
}

// WakeUp wakes the vehicle.
func WakeUp(vehicleID string) Endpoint {
	return Endpoint{Method: http.MethodPost, Path: "/api/1/vehicles/" + vehicleID + "/wake_up"}
}

// Command targets a named vehicle command.
func Command(vehicleID, name string) Endpoint {
	return Endpoint{Method: http.MethodPost, Path: "/api/1/vehicles/" + vehicleID + "/command/" + name}
}

// NearbyChargingSites lists charging sites around the vehicle.
func NearbyChargingSites(vehicleID string) Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/api/1/vehicles/" + vehicleID + "/nearby_charging_sites"}
}

// ChargeHistory fetches the vehicle's charging history.
func ChargeHistory(vehicleID string) Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/api/1/vehicles/" + vehicleID + "/charge_history"}
}

// Products lists all products on the account.
func Products() Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/api/1/products"}
}

// Energy site endpoints.

// EnergySiteStatus fetches a site's summary status.
func EnergySiteStatus(siteID string) Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/api/1/energy_sites/" + siteID + "/site_status"}
}

// EnergySiteLiveStatus fetches a site's live telemetry.
func EnergySiteLiveStatus(siteID string) Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/api/1/energy_sites/" + siteID + "/live_status"}
}

// EnergySiteInfo fetches a site's static configuration.
func EnergySiteInfo(siteID string) Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/api/1/energy_sites/" + siteID + "/site_info"}
}

// EnergySiteHistory fetches a site's aggregated energy history.
func EnergySiteHistory(siteID string, period tesla.HistoryPeriod) Endpoint {
	return Endpoint{
		Method: http.MethodGet,
		Path:   "/api/1/energy_sites/" + siteID + "/history",
		Query: url.Values{
			"kind":   []string{"energy"},
			"period": []string{string(period)},
		},
	}
}

// Powerwall endpoints.

// BatteryStatus fetches a Powerwall's summary status.
func BatteryStatus(batteryID string) Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/api/1/powerwalls/" + batteryID + "/status"}
}

// BatteryData fetches the detailed Powerwall record.
func BatteryData(batteryID string) Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/api/1/powerwalls/" + batteryID + "/"}
}

// BatteryPowerHistory fetches the Powerwall power-flow series.
func BatteryPowerHistory(batteryID string) Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/api/1/powerwalls/" + batteryID + "/powerhistory"}
}

// Account endpoints.

// Me fetches the account profile.
func Me() Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/api/1/users/me"}
}

// UserRegion fetches the account's fleet region assignment.
func UserRegion() Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/api/1/users/region"}
}

// PartnerAccounts registers a fleet application.
func PartnerAccounts() Endpoint {
	return Endpoint{Method: http.MethodPost, Path: "/api/1/partner_accounts"}
}
