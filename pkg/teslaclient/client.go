// Package teslaclient provides the entry point for creating API clients.
package teslaclient

import (
	"fmt"

	"github.com/voltwise-io/teslago/internal/client"
	"github.com/voltwise-io/teslago/pkg/tesla"
)

// New creates a client from a full config.
func New(config *tesla.Config) (tesla.Client, error) {
	if config == nil {
		return nil, tesla.ErrConfigRequired
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewOwner creates an unauthenticated client on the owner API surface.
// Call AuthenticateWeb or ExchangeCode before using resource endpoints.
func NewOwner() (tesla.Client, error) {
	return New(&tesla.Config{
		API: tesla.OwnerAPI(),
	})
}

// NewOwnerWithToken creates an owner API client seeded with a previously
// stored session token.
func NewOwnerWithToken(token *tesla.Token, email string) (tesla.Client, error) {
	return New(&tesla.Config{
		API:   tesla.OwnerAPI(),
		Token: token,
		Email: email,
	})
}

// NewFleet creates a fleet API client for a region using registered
// application credentials.
func NewFleet(region tesla.Region, clientID, clientSecret, redirectURI string) (tesla.Client, error) {
	return New(&tesla.Config{
		API: tesla.FleetAPI(region, clientID, clientSecret, redirectURI),
	})
}

// NewFleetWithToken creates a fleet API client seeded with a previously
// stored session token.
func NewFleetWithToken(region tesla.Region, clientID, clientSecret, redirectURI string, token *tesla.Token) (tesla.Client, error) {
	return New(&tesla.Config{
		API:   tesla.FleetAPI(region, clientID, clientSecret, redirectURI),
		Token: token,
	})
}
