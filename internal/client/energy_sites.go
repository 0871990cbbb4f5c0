package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/voltwise-io/teslago/internal/endpoints"
	"github.com/voltwise-io/teslago/pkg/tesla"
)

// EnergySitesClient implements tesla.EnergySitesClient.
type EnergySitesClient struct {
	client *Client
}

// Status implements tesla.EnergySitesClient.Status.
func (c *EnergySitesClient) Status(ctx context.Context, siteID string) (*tesla.EnergySiteStatus, error) {
	resp, err := c.client.get(ctx, endpoints.EnergySiteStatus(siteID))
	if err != nil {
		return nil, fmt.Errorf("getting energy site status: %w", err)
	}

	var envelope tesla.Response[tesla.EnergySiteStatus]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, tesla.ErrFailedToParseData
	}

	return &envelope.Response, nil
}

// LiveStatus implements tesla.EnergySitesClient.LiveStatus.
func (c *EnergySitesClient) LiveStatus(ctx context.Context, siteID string) (*tesla.EnergySiteLiveStatus, error) {
	resp, err := c.client.get(ctx, endpoints.EnergySiteLiveStatus(siteID))
	if err != nil {
		return nil, fmt.Errorf("getting energy site live status: %w", err)
	}

	var envelope tesla.Response[tesla.EnergySiteLiveStatus]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, tesla.ErrFailedToParseData
	}

	return &envelope.Response, nil
}

// Info implements tesla.EnergySitesClient.Info.
func (c *EnergySitesClient) Info(ctx context.Context, siteID string) (*tesla.EnergySiteInfo, error) {
	resp, err := c.client.get(ctx, endpoints.EnergySiteInfo(siteID))
	if err != nil {
		return nil, fmt.Errorf("getting energy site info: %w", err)
	}

	var envelope tesla.Response[tesla.EnergySiteInfo]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, tesla.ErrFailedToParseData
	}

	return &envelope.Response, nil
}

// History implements tesla.EnergySitesClient.History.
func (c *EnergySitesClient) History(ctx context.Context, siteID string, period tesla.HistoryPeriod) (*tesla.EnergySiteHistory, error) {
	resp, err := c.client.get(ctx, endpoints.EnergySiteHistory(siteID, period))
	if err != nil {
		return nil, fmt.Errorf("getting energy site history: %w", err)
	}

	var envelope tesla.Response[tesla.EnergySiteHistory]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, tesla.ErrFailedToParseData
	}

	return &envelope.Response, nil
}
