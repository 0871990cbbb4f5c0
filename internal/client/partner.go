package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/voltwise-io/teslago/internal/endpoints"
	"github.com/voltwise-io/teslago/pkg/tesla"
)

// PartnerClient implements tesla.PartnerClient.
type PartnerClient struct {
	client *Client
}

// ExchangeToken implements tesla.PartnerClient.ExchangeToken. The result
// is stored as the partner token and used as the bearer fallback.
func (c *PartnerClient) ExchangeToken(ctx context.Context) (*tesla.Token, error) {
	return c.client.authenticator.ExchangePartnerCredentials(ctx)
}

// Register implements tesla.PartnerClient.Register.
func (c *PartnerClient) Register(ctx context.Context, domain string) (*tesla.PartnerRegistration, error) {
	body := map[string]string{"domain": domain}

	resp, err := c.client.post(ctx, endpoints.PartnerAccounts(), body)
	if err != nil {
		return nil, fmt.Errorf("registering partner account: %w", err)
	}

	var envelope tesla.Response[tesla.PartnerRegistration]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, tesla.ErrFailedToParseData
	}

	return &envelope.Response, nil
}
