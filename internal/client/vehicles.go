package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/voltwise-io/teslago/internal/endpoints"
	"github.com/voltwise-io/teslago/pkg/tesla"
)

// VehiclesClient implements tesla.VehiclesClient.
type VehiclesClient struct {
	client *Client
}

// List implements tesla.VehiclesClient.List.
func (c *VehiclesClient) List(ctx context.Context) ([]tesla.Vehicle, error) {
	resp, err := c.client.get(ctx, endpoints.Vehicles())
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}

	var envelope tesla.ArrayResponse[tesla.Vehicle]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, tesla.ErrFailedToParseData
	}

	return envelope.Response, nil
}

// Get implements tesla.VehiclesClient.Get.
func (c *VehiclesClient) Get(ctx context.Context, vehicleID string) (*tesla.Vehicle, error) {
	resp, err := c.client.get(ctx, endpoints.VehicleSummary(vehicleID))
	if err != nil {
		return nil, fmt.Errorf("getting vehicle: %w", err)
	}

	var envelope tesla.Response[tesla.Vehicle]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, tesla.ErrFailedToParseData
	}

	return &envelope.Response, nil
}

// Data implements tesla.VehiclesClient.Data.
func (c *VehiclesClient) Data(ctx context.Context, vehicleID string) (*tesla.VehicleData, error) {
	resp, err := c.client.get(ctx, endpoints.VehicleData(vehicleID))
	if err != nil {
		return nil, fmt.Errorf("getting vehicle data: %w", err)
	}

	var envelope tesla.Response[tesla.VehicleData]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, tesla.ErrFailedToParseData
	}

	return &envelope.Response, nil
}

// MobileAccess implements tesla.VehiclesClient.MobileAccess.
func (c *VehiclesClient) MobileAccess(ctx context.Context, vehicleID string) (bool, error) {
	resp, err := c.client.get(ctx, endpoints.MobileAccess(vehicleID))
	if err != nil {
		return false, fmt.Errorf("getting mobile access state: %w", err)
	}

	var envelope tesla.BoolResponse

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return false, tesla.ErrFailedToParseData
	}

	return envelope.Response, nil
}

// WakeUp implements tesla.VehiclesClient.WakeUp.
func (c *VehiclesClient) WakeUp(ctx context.Context, vehicleID string) (*tesla.Vehicle, error) {
	resp, err := c.client.post(ctx, endpoints.WakeUp(vehicleID), nil)
	if err != nil {
		return nil, fmt.Errorf("waking vehicle: %w", err)
	}

	var envelope tesla.Response[tesla.Vehicle]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, tesla.ErrFailedToReloadVehicle
	}

	return &envelope.Response, nil
}

// NearbyChargingSites implements tesla.VehiclesClient.NearbyChargingSites.
func (c *VehiclesClient) NearbyChargingSites(ctx context.Context, vehicleID string) (*tesla.NearbyChargingSites, error) {
	resp, err := c.client.get(ctx, endpoints.NearbyChargingSites(vehicleID))
	if err != nil {
		return nil, fmt.Errorf("getting nearby charging sites: %w", err)
	}

	var envelope tesla.Response[tesla.NearbyChargingSites]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, tesla.ErrFailedToParseData
	}

	return &envelope.Response, nil
}

// ChargeHistory implements tesla.VehiclesClient.ChargeHistory.
func (c *VehiclesClient) ChargeHistory(ctx context.Context, vehicleID string) (*tesla.ChargeHistory, error) {
	resp, err := c.client.get(ctx, endpoints.ChargeHistory(vehicleID))
	if err != nil {
		return nil, fmt.Errorf("getting charge history: %w", err)
	}

	var envelope tesla.Response[tesla.ChargeHistory]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, tesla.ErrFailedToParseData
	}

	return &envelope.Response, nil
}

// SendCommand implements tesla.VehiclesClient.SendCommand. The command's
// payload is validated before anything goes on the wire.
func (c *VehiclesClient) SendCommand(ctx context.Context, vehicleID string, command tesla.Command) (*tesla.CommandResponse, error) {
	body, err := command.Body()
	if err != nil {
		return nil, err
	}

	resp, err := c.client.post(ctx, endpoints.Command(vehicleID, command.Name()), body)
	if err != nil {
		return nil, fmt.Errorf("sending command %s: %w", command.Name(), err)
	}

	var envelope tesla.Response[tesla.CommandResponse]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, tesla.ErrFailedToParseData
	}

	return &envelope.Response, nil
}
