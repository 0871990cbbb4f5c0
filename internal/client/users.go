package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/voltwise-io/teslago/internal/endpoints"
	"github.com/voltwise-io/teslago/pkg/tesla"
)

// UsersClient implements tesla.UsersClient.
type UsersClient struct {
	client *Client
}

// Me implements tesla.UsersClient.Me.
func (c *UsersClient) Me(ctx context.Context) (*tesla.Me, error) {
	resp, err := c.client.get(ctx, endpoints.Me())
	if err != nil {
		return nil, fmt.Errorf("getting account profile: %w", err)
	}

	var envelope tesla.Response[tesla.Me]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, tesla.ErrFailedToParseData
	}

	return &envelope.Response, nil
}

// Region implements tesla.UsersClient.Region.
func (c *UsersClient) Region(ctx context.Context) (*tesla.UserRegion, error) {
	resp, err := c.client.get(ctx, endpoints.UserRegion())
	if err != nil {
		return nil, fmt.Errorf("getting account region: %w", err)
	}

	var envelope tesla.Response[tesla.UserRegion]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, tesla.ErrFailedToParseData
	}

	return &envelope.Response, nil
}
