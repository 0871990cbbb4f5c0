package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/voltwise-io/teslago/internal/endpoints"
	"github.com/voltwise-io/teslago/pkg/tesla"
)

// PowerwallsClient implements tesla.PowerwallsClient.
type PowerwallsClient struct {
	client *Client
}

// Status implements tesla.PowerwallsClient.Status.
func (c *PowerwallsClient) Status(ctx context.Context, batteryID string) (*tesla.BatteryStatus, error) {
	resp, err := c.client.get(ctx, endpoints.BatteryStatus(batteryID))
	if err != nil {
		return nil, fmt.Errorf("getting battery status: %w", err)
	}

	var envelope tesla.Response[tesla.BatteryStatus]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, tesla.ErrFailedToParseData
	}

	return &envelope.Response, nil
}

// Data implements tesla.PowerwallsClient.Data.
func (c *PowerwallsClient) Data(ctx context.Context, batteryID string) (*tesla.BatteryData, error) {
	resp, err := c.client.get(ctx, endpoints.BatteryData(batteryID))
	if err != nil {
		return nil, fmt.Errorf("getting battery data: %w", err)
	}

	var envelope tesla.Response[tesla.BatteryData]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, tesla.ErrFailedToParseData
	}

	return &envelope.Response, nil
}

// PowerHistory implements tesla.PowerwallsClient.PowerHistory.
func (c *PowerwallsClient) PowerHistory(ctx context.Context, batteryID string) (*tesla.BatteryPowerHistory, error) {
	resp, err := c.client.get(ctx, endpoints.BatteryPowerHistory(batteryID))
	if err != nil {
		return nil, fmt.Errorf("getting battery power history: %w", err)
	}

	var envelope tesla.Response[tesla.BatteryPowerHistory]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, tesla.ErrFailedToParseData
	}

	return &envelope.Response, nil
}
