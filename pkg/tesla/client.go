package tesla

import (
	"context"
	"time"
)

// VehiclesClient provides access to vehicle state and command endpoints.
type VehiclesClient interface {
	List(ctx context.Context) ([]Vehicle, error)
	Get(ctx context.Context, vehicleID string) (*Vehicle, error)
	Data(ctx context.Context, vehicleID string) (*VehicleData, error)
	MobileAccess(ctx context.Context, vehicleID string) (bool, error)
	WakeUp(ctx context.Context, vehicleID string) (*Vehicle, error)
	NearbyChargingSites(ctx context.Context, vehicleID string) (*NearbyChargingSites, error)
	ChargeHistory(ctx context.Context, vehicleID string) (*ChargeHistory, error)
	SendCommand(ctx context.Context, vehicleID string, command Command) (*CommandResponse, error)
}

// EnergySitesClient provides access to energy site telemetry endpoints.
type EnergySitesClient interface {
	Status(ctx context.Context, siteID string) (*EnergySiteStatus, error)
	LiveStatus(ctx context.Context, siteID string) (*EnergySiteLiveStatus, error)
	Info(ctx context.Context, siteID string) (*EnergySiteInfo, error)
	History(ctx context.Context, siteID string, period HistoryPeriod) (*EnergySiteHistory, error)
}

// PowerwallsClient provides access to Powerwall battery endpoints.
type PowerwallsClient interface {
	Status(ctx context.Context, batteryID string) (*BatteryStatus, error)
	Data(ctx context.Context, batteryID string) (*BatteryData, error)
	PowerHistory(ctx context.Context, batteryID string) (*BatteryPowerHistory, error)
}

// UsersClient provides access to account endpoints.
type UsersClient interface {
	Me(ctx context.Context) (*Me, error)
	Region(ctx context.Context) (*UserRegion, error)
}

// PartnerClient provides access to app-registration endpoints. These are
// used when registering a fleet application, not by end-user clients.
type PartnerClient interface {
	ExchangeToken(ctx context.Context) (*Token, error)
	Register(ctx context.Context, domain string) (*PartnerRegistration, error)
}

// AuthClient owns the session token lifecycle: PKCE login, code exchange,
// refresh, reuse and revocation.
type AuthClient interface {
	// AuthorizationURL builds the PKCE authorization URL. The returned
	// verifier must be passed to ExchangeCode after the login redirect.
	AuthorizationURL() (url string, verifier string, err error)

	// AuthenticateWeb drives a full PKCE login through the provided
	// WebLogin collaborator and stores the resulting session token.
	AuthenticateWeb(ctx context.Context, login WebLogin) (*Token, error)

	// ExchangeCode swaps an authorization code for a session token.
	ExchangeCode(ctx context.Context, code, verifier string) (*Token, error)

	// Refresh exchanges the stored refresh token for a fresh session
	// token. Concurrent calls are coalesced into one exchange.
	Refresh(ctx context.Context) (*Token, error)

	// Reuse adopts a previously obtained token, skipping authentication.
	Reuse(token *Token, email string)

	// Token returns the stored session token, or nil.
	Token() *Token

	// IsAuthenticated reports whether a valid session token is stored.
	IsAuthenticated() bool

	// Revoke clears local state and asks the server to revoke the access
	// token. Local state is cleared before the network call, so a failed
	// revoke still leaves the client logged out locally.
	Revoke(ctx context.Context) (bool, error)

	// Logout drops all local authentication state. No network call.
	Logout()
}

// Client is the full API surface.
type Client interface {
	AuthClient

	Vehicles() VehiclesClient
	EnergySites() EnergySitesClient
	Powerwalls() PowerwallsClient
	Users() UsersClient
	Partner() PartnerClient

	// Products lists all products on the account, vehicles and energy
	// products alike.
	Products(ctx context.Context) ([]Product, error)
}

// WebLogin is the embedded-login collaborator. Implementations navigate to
// the authorization URL, let the user sign in, and return the final
// redirect URL containing the authorization code.
type WebLogin interface {
	Authorize(ctx context.Context, authorizationURL string) (redirectURL string, err error)
}

// Logger is the structured logging interface consumed by the HTTP layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config configures a client built by pkg/teslaclient.
type Config struct {
	// API selects the API surface and carries its credentials. Required.
	API API

	// Token optionally seeds the client with a previously stored session
	// token, skipping the login flow.
	Token *Token

	// Email associated with the account. Only used for informational
	// purposes (streaming endpoints require it upstream).
	Email string

	// WebLoginTimeout bounds AuthenticateWeb's wait for the login
	// redirect. Zero uses the default of five minutes.
	WebLoginTimeout time.Duration

	// RetryMax is the maximum number of retries for transient failures
	// (>=500, 429 and connection errors). Zero uses the default.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Cache optionally caches GET responses. See CacheConfig.
	Cache *CacheConfig
}
