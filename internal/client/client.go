// Package client implements the concrete API client behind the public
// tesla.Client interface.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/voltwise-io/teslago/internal/auth"
	"github.com/voltwise-io/teslago/internal/constants"
	"github.com/voltwise-io/teslago/internal/endpoints"
	internalhttp "github.com/voltwise-io/teslago/internal/http"
	"github.com/voltwise-io/teslago/pkg/tesla"
)

// Client implements tesla.Client.
type Client struct {
	api           tesla.API
	store         *auth.TokenStore
	authenticator *auth.Authenticator
	httpClient    *internalhttp.Client

	vehicles    *VehiclesClient
	energySites *EnergySitesClient
	powerwalls  *PowerwallsClient
	users       *UsersClient
	partner     *PartnerClient
}

// New builds a fully wired client from a config.
func New(config *tesla.Config) (*Client, error) {
	if config == nil {
		return nil, tesla.ErrConfigRequired
	}

	if config.API.BaseURL() == "" || config.API.AuthBaseURL() == "" {
		return nil, tesla.ErrAPIRequired
	}

	store := auth.NewTokenStore()

	httpOpts := []internalhttp.Option{}

	if config.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts,
			internalhttp.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.Cache != nil {
		cache, err := tesla.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("building response cache: %w", err)
		}

		ttl := config.Cache.TTL
		if ttl <= 0 {
			ttl = constants.DefaultCacheTTL
		}

		httpOpts = append(httpOpts, internalhttp.WithCache(cache, ttl))
	}

	httpClient := internalhttp.NewClient(store, httpOpts...)
	authenticator := auth.NewAuthenticator(config.API, store, httpClient, config.Logger)

	if config.WebLoginTimeout > 0 {
		authenticator.SetWebLoginTimeout(config.WebLoginTimeout)
	}

	client := &Client{
		api:           config.API,
		store:         store,
		authenticator: authenticator,
		httpClient:    httpClient,
	}

	client.vehicles = &VehiclesClient{client: client}
	client.energySites = &EnergySitesClient{client: client}
	client.powerwalls = &PowerwallsClient{client: client}
	client.users = &UsersClient{client: client}
	client.partner = &PartnerClient{client: client}

	if config.Token != nil {
		authenticator.Reuse(config.Token, config.Email)
	}

	return client, nil
}

// Vehicles implements tesla.Client.Vehicles.
func (c *Client) Vehicles() tesla.VehiclesClient { return c.vehicles }

// EnergySites implements tesla.Client.EnergySites.
func (c *Client) EnergySites() tesla.EnergySitesClient { return c.energySites }

// Powerwalls implements tesla.Client.Powerwalls.
func (c *Client) Powerwalls() tesla.PowerwallsClient { return c.powerwalls }

// Users implements tesla.Client.Users.
func (c *Client) Users() tesla.UsersClient { return c.users }

// Partner implements tesla.Client.Partner.
func (c *Client) Partner() tesla.PartnerClient { return c.partner }

// Products implements tesla.Client.Products.
func (c *Client) Products(ctx context.Context) ([]tesla.Product, error) {
	resp, err := c.get(ctx, endpoints.Products())
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	var envelope tesla.ArrayResponse[tesla.Product]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, tesla.ErrFailedToParseData
	}

	return envelope.Response, nil
}

// AuthorizationURL implements tesla.AuthClient.AuthorizationURL.
func (c *Client) AuthorizationURL() (string, string, error) {
	return c.authenticator.AuthorizationURL()
}

// AuthenticateWeb implements tesla.AuthClient.AuthenticateWeb.
func (c *Client) AuthenticateWeb(ctx context.Context, login tesla.WebLogin) (*tesla.Token, error) {
	return c.authenticator.AuthenticateWeb(ctx, login)
}

// ExchangeCode implements tesla.AuthClient.ExchangeCode.
func (c *Client) ExchangeCode(ctx context.Context, code, verifier string) (*tesla.Token, error) {
	return c.authenticator.ExchangeCode(ctx, code, verifier)
}

// Refresh implements tesla.AuthClient.Refresh.
func (c *Client) Refresh(ctx context.Context) (*tesla.Token, error) {
	return c.authenticator.Refresh(ctx)
}

// Reuse implements tesla.AuthClient.Reuse.
func (c *Client) Reuse(token *tesla.Token, email string) {
	c.authenticator.Reuse(token, email)
}

// Token implements tesla.AuthClient.Token.
func (c *Client) Token() *tesla.Token {
	return c.store.Session()
}

// IsAuthenticated implements tesla.AuthClient.IsAuthenticated.
func (c *Client) IsAuthenticated() bool {
	return c.store.SessionValid()
}

// Revoke implements tesla.AuthClient.Revoke.
func (c *Client) Revoke(ctx context.Context) (bool, error) {
	return c.authenticator.Revoke(ctx)
}

// Logout implements tesla.AuthClient.Logout.
func (c *Client) Logout() {
	c.authenticator.Logout()
}

// get runs an authenticated GET against a resolved endpoint, refreshing
// the session first when needed.
func (c *Client) get(ctx context.Context, endpoint endpoints.Endpoint) (*internalhttp.Response, error) {
	if err := c.authenticator.EnsureValid(ctx); err != nil {
		return nil, err
	}

	return c.httpClient.Do(ctx, &internalhttp.Request{
		Method: endpoint.Method,
		URL:    endpoint.URL(c.api),
	})
}

// post runs an authenticated POST against a resolved endpoint.
func (c *Client) post(ctx context.Context, endpoint endpoints.Endpoint, body interface{}) (*internalhttp.Response, error) {
	if err := c.authenticator.EnsureValid(ctx); err != nil {
		return nil, err
	}

	return c.httpClient.Do(ctx, &internalhttp.Request{
		Method: endpoint.Method,
		URL:    endpoint.URL(c.api),
		Body:   body,
	})
}
