package tesla

// Region is a fleet API deployment. Each region is a fixed host.
type Region string

const (
	// RegionNorthAmericaAsiaPacific serves North America and Asia-Pacific.
	RegionNorthAmericaAsiaPacific Region = "https://fleet-api.prd.na.vn.cloud.tesla.com"
	// RegionEuropeMiddleEastAfrica serves Europe, the Middle East and Africa.
	RegionEuropeMiddleEastAfrica Region = "https://fleet-api.prd.eu.vn.cloud.tesla.com"
)

const (
	ownerAPIBaseURL      = "https://owner-api.teslamotors.com"
	ownerAPIClientID     = "ownerapi"
	ownerAPIClientSecret = "c7257eb71a564034f9419ee651c7d0e5f7aa6bfbd18bafb5c5c033b093bb2fa3"
	ownerAPIRedirectURI  = "https://auth.tesla.com/void/callback"
	ownerAPIScope        = "openid email offline_access"

	fleetAPIScope = "openid user_data vehicle_device_data offline_access" +
		" vehicle_cmds vehicle_charging_cmds energy_device_data energy_cmds"

	defaultAuthBaseURL   = "https://auth.tesla.com"
	defaultAuthBaseURLCN = "https://auth.tesla.cn"
)

// API selects one of the two API surfaces and carries the OAuth client
// credentials derived from that choice. Values are immutable once
// constructed; build them with OwnerAPI, FleetAPI or NewCustomAPI.
type API struct {
	baseURL      string
	authBaseURL  string
	authBaseCN   string
	region       Region
	clientID     string
	clientSecret string
	redirectURI  string
	scope        string
}

// OwnerAPI returns the legacy owner API surface. Base URL, client
// credentials, redirect URI and scope are all fixed.
func OwnerAPI() API {
	return API{
		baseURL:      ownerAPIBaseURL,
		authBaseURL:  defaultAuthBaseURL,
		authBaseCN:   defaultAuthBaseURLCN,
		clientID:     ownerAPIClientID,
		clientSecret: ownerAPIClientSecret,
		redirectURI:  ownerAPIRedirectURI,
		scope:        ownerAPIScope,
	}
}

// FleetAPI returns the fleet API surface for a region, using the caller's
// registered application credentials.
func FleetAPI(region Region, clientID, clientSecret, redirectURI string) API {
	return API{
		baseURL:      string(region),
		authBaseURL:  defaultAuthBaseURL,
		authBaseCN:   defaultAuthBaseURLCN,
		region:       region,
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		scope:        fleetAPIScope,
	}
}

// NewCustomAPI builds an API surface with explicit hosts. Intended for
// proxies and for tests that stand in for the real deployments.
func NewCustomAPI(baseURL, authBaseURL, authBaseURLCN, clientID, clientSecret, redirectURI, scope string) API {
	return API{
		baseURL:      baseURL,
		authBaseURL:  authBaseURL,
		authBaseCN:   authBaseURLCN,
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		scope:        scope,
	}
}

// BaseURL returns the API host for resource endpoints.
func (a API) BaseURL() string { return a.baseURL }

// AuthBaseURL returns the primary OAuth host.
func (a API) AuthBaseURL() string { return a.authBaseURL }

// AuthBaseURLCN returns the China-variant OAuth host used by the
// single-retry redirect policy.
func (a API) AuthBaseURLCN() string { return a.authBaseCN }

// Region returns the fleet region, or the empty string on the owner API.
func (a API) Region() Region { return a.region }

// ClientID returns the OAuth client id.
func (a API) ClientID() string { return a.clientID }

// ClientSecret returns the OAuth client secret.
func (a API) ClientSecret() string { return a.clientSecret }

// RedirectURI returns the OAuth redirect URI.
func (a API) RedirectURI() string { return a.redirectURI }

// Scope returns the OAuth scope string for this surface.
func (a API) Scope() string { return a.scope }

// Audience returns the token audience: the regional host on the fleet
// API, empty on the owner API.
func (a API) Audience() string {
	if a.region == "" {
		return ""
	}

	return string(a.region)
}
