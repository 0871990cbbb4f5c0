package tesla

import "fmt"

// Command is a vehicle command. The set is closed: every variant lives in
// this package and carries exactly the payload its endpoint accepts.
// Implementations provide the wire name of the command and the request
// body, which is nil for commands without options.
type Command interface {
	Name() string
	Body() (interface{}, error)
}

// bodyless is embedded by commands whose endpoint takes no request body.
type bodyless struct{}

func (bodyless) Body() (interface{}, error) { return nil, nil }

// FlashLightsCommand flashes the headlights.
type FlashLightsCommand struct{ bodyless }

func (FlashLightsCommand) Name() string { return "flash_lights" }

// HonkHornCommand honks the horn.
type HonkHornCommand struct{ bodyless }

func (HonkHornCommand) Name() string { return "honk_horn" }

// UnlockDoorsCommand unlocks the doors.
type UnlockDoorsCommand struct{ bodyless }

func (UnlockDoorsCommand) Name() string { return "door_unlock" }

// LockDoorsCommand locks the doors.
type LockDoorsCommand struct{ bodyless }

func (LockDoorsCommand) Name() string { return "door_lock" }

// OpenChargePortCommand opens the charge port.
type OpenChargePortCommand struct{ bodyless }

func (OpenChargePortCommand) Name() string { return "charge_port_door_open" }

// CloseChargePortCommand closes the charge port.
type CloseChargePortCommand struct{ bodyless }

func (CloseChargePortCommand) Name() string { return "charge_port_door_close" }

// StartChargingCommand starts charging.
type StartChargingCommand struct{ bodyless }

func (StartChargingCommand) Name() string { return "charge_start" }

// StopChargingCommand stops charging.
type StopChargingCommand struct{ bodyless }

func (StopChargingCommand) Name() string { return "charge_stop" }

// ChargeLimitStandardCommand sets the standard charge limit.
type ChargeLimitStandardCommand struct{ bodyless }

func (ChargeLimitStandardCommand) Name() string { return "charge_standard" }

// ChargeLimitMaxRangeCommand sets the maximum-range charge limit.
type ChargeLimitMaxRangeCommand struct{ bodyless }

func (ChargeLimitMaxRangeCommand) Name() string { return "charge_max_range" }

// StartAutoConditioningCommand turns climate control on.
type StartAutoConditioningCommand struct{ bodyless }

func (StartAutoConditioningCommand) Name() string { return "auto_conditioning_start" }

// StopAutoConditioningCommand turns climate control off.
type StopAutoConditioningCommand struct{ bodyless }

func (StopAutoConditioningCommand) Name() string { return "auto_conditioning_stop" }

// ResetValetPinCommand clears the valet PIN.
type ResetValetPinCommand struct{ bodyless }

func (ResetValetPinCommand) Name() string { return "reset_valet_pin" }

// ChargeLimitPercentageCommand sets the charge limit to a percentage.
type ChargeLimitPercentageCommand struct {
	Limit int `json:"percent"`
}

func (ChargeLimitPercentageCommand) Name() string { return "set_charge_limit" }

func (c ChargeLimitPercentageCommand) Body() (interface{}, error) {
	if c.Limit < 0 || c.Limit > 100 {
		return nil, fmt.Errorf("%w: charge limit %d%% outside 0-100", ErrInvalidOptionsForCommand, c.Limit)
	}

	return c, nil
}

// SetChargingAmpsCommand sets the charging current.
type SetChargingAmpsCommand struct {
	Amps int `json:"charging_amps"`
}

func (SetChargingAmpsCommand) Name() string { return "set_charging_amps" }

func (c SetChargingAmpsCommand) Body() (interface{}, error) {
	if c.Amps <= 0 {
		return nil, fmt.Errorf("%w: charging amps must be positive", ErrInvalidOptionsForCommand)
	}

	return c, nil
}

// SetTemperatureCommand sets driver and passenger temperatures.
type SetTemperatureCommand struct {
	DriverTemperature    float64 `json:"driver_temp"`
	PassengerTemperature float64 `json:"passenger_temp"`
}

func (SetTemperatureCommand) Name() string { return "set_temps" }

func (c SetTemperatureCommand) Body() (interface{}, error) { return c, nil }

// SunRoofState is a sunroof target position keyword.
type SunRoofState string

// Sunroof positions.
const (
	SunRoofVent  SunRoofState = "vent"
	SunRoofClose SunRoofState = "close"
)

// SetSunRoofCommand moves the sunroof.
type SetSunRoofCommand struct {
	State   SunRoofState `json:"state"`
	Percent *int         `json:"percent,omitempty"`
}

func (SetSunRoofCommand) Name() string { return "sun_roof_control" }

func (c SetSunRoofCommand) Body() (interface{}, error) {
	if c.Percent != nil && (*c.Percent < 0 || *c.Percent > 100) {
		return nil, fmt.Errorf("%w: sunroof percent outside 0-100", ErrInvalidOptionsForCommand)
	}

	return c, nil
}

// RemoteStartCommand enables keyless driving.
type RemoteStartCommand struct {
	Password string `json:"password"`
}

func (RemoteStartCommand) Name() string { return "remote_start_drive" }

func (c RemoteStartCommand) Body() (interface{}, error) { return c, nil }

// TrunkType selects which trunk to actuate.
type TrunkType string

// Trunks.
const (
	TrunkFront TrunkType = "front"
	TrunkRear  TrunkType = "rear"
)

// OpenTrunkCommand actuates a trunk.
type OpenTrunkCommand struct {
	WhichTrunk TrunkType `json:"which_trunk"`
}

func (OpenTrunkCommand) Name() string { return "actuate_trunk" }

func (c OpenTrunkCommand) Body() (interface{}, error) {
	if c.WhichTrunk != TrunkFront && c.WhichTrunk != TrunkRear {
		return nil, fmt.Errorf("%w: unknown trunk %q", ErrInvalidOptionsForCommand, c.WhichTrunk)
	}

	return c, nil
}

// ValetModeCommand toggles valet mode, optionally setting a PIN.
type ValetModeCommand struct {
	On       bool   `json:"on"`
	Password string `json:"password,omitempty"`
}

func (ValetModeCommand) Name() string { return "set_valet_mode" }

func (c ValetModeCommand) Body() (interface{}, error) { return c, nil }

// SpeedLimitSetCommand sets the speed limit value in mph.
type SpeedLimitSetCommand struct {
	LimitMPH float64 `json:"limit_mph"`
}

func (SpeedLimitSetCommand) Name() string { return "speed_limit_set_limit" }

func (c SpeedLimitSetCommand) Body() (interface{}, error) { return c, nil }

// SpeedLimitActivateCommand activates the speed limit.
type SpeedLimitActivateCommand struct {
	PIN string `json:"pin"`
}

func (SpeedLimitActivateCommand) Name() string { return "speed_limit_activate" }

func (c SpeedLimitActivateCommand) Body() (interface{}, error) { return c, nil }

// SpeedLimitDeactivateCommand deactivates the speed limit.
type SpeedLimitDeactivateCommand struct {
	PIN string `json:"pin"`
}

func (SpeedLimitDeactivateCommand) Name() string { return "speed_limit_deactivate" }

func (c SpeedLimitDeactivateCommand) Body() (interface{}, error) { return c, nil }

// SpeedLimitClearPinCommand clears the speed limit PIN.
type SpeedLimitClearPinCommand struct {
	PIN string `json:"pin"`
}

func (SpeedLimitClearPinCommand) Name() string { return "speed_limit_clear_pin" }

func (c SpeedLimitClearPinCommand) Body() (interface{}, error) { return c, nil }

// Seat identifies a heated seat position.
type Seat int

// Seat positions accepted by SetSeatHeaterCommand.
const (
	SeatDriver        Seat = 0
	SeatPassenger     Seat = 1
	SeatRearLeft      Seat = 2
	SeatRearCenter    Seat = 4
	SeatRearRight     Seat = 5
	SeatThirdRowLeft  Seat = 6
	SeatThirdRowRight Seat = 7
)

// SetSeatHeaterCommand sets a seat heater level (0-3).
type SetSeatHeaterCommand struct {
	Heater Seat `json:"heater"`
	Level  int  `json:"level"`
}

func (SetSeatHeaterCommand) Name() string { return "remote_seat_heater_request" }

func (c SetSeatHeaterCommand) Body() (interface{}, error) {
	if c.Level < 0 || c.Level > 3 {
		return nil, fmt.Errorf("%w: seat heater level %d outside 0-3", ErrInvalidOptionsForCommand, c.Level)
	}

	return c, nil
}

// SetSteeringWheelHeaterCommand toggles the steering wheel heater.
type SetSteeringWheelHeaterCommand struct {
	On bool `json:"on"`
}

func (SetSteeringWheelHeaterCommand) Name() string { return "remote_steering_wheel_heater_request" }

func (c SetSteeringWheelHeaterCommand) Body() (interface{}, error) { return c, nil }

// SentryModeCommand toggles sentry mode.
type SentryModeCommand struct {
	On bool `json:"on"`
}

func (SentryModeCommand) Name() string { return "set_sentry_mode" }

func (c SentryModeCommand) Body() (interface{}, error) { return c, nil }

// WindowState is a window control keyword.
type WindowState string

// Window control states.
const (
	WindowVent  WindowState = "vent"
	WindowClose WindowState = "close"
)

// WindowControlCommand vents or closes all windows. Latitude and
// longitude must match the vehicle location for close.
type WindowControlCommand struct {
	Command   WindowState `json:"command"`
	Latitude  float64     `json:"lat"`
	Longitude float64     `json:"lon"`
}

func (WindowControlCommand) Name() string { return "window_control" }

func (c WindowControlCommand) Body() (interface{}, error) {
	if c.Command != WindowVent && c.Command != WindowClose {
		return nil, fmt.Errorf("%w: unknown window state %q", ErrInvalidOptionsForCommand, c.Command)
	}

	return c, nil
}

// SetMaxDefrostCommand toggles maximum defrost.
type SetMaxDefrostCommand struct {
	On bool `json:"on"`
}

func (SetMaxDefrostCommand) Name() string { return "set_preconditioning_max" }

func (c SetMaxDefrostCommand) Body() (interface{}, error) { return c, nil }

// TriggerHomeLinkCommand triggers HomeLink at the given coordinates.
type TriggerHomeLinkCommand struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

func (TriggerHomeLinkCommand) Name() string { return "trigger_homelink" }

func (c TriggerHomeLinkCommand) Body() (interface{}, error) { return c, nil }

// ShareToVehicleCommand sends an address or video URL to the vehicle.
type ShareToVehicleCommand struct {
	Type        string              `json:"type"`
	Value       ShareToVehicleValue `json:"value"`
	Locale      string              `json:"locale"`
	TimestampMS int64               `json:"timestamp_ms"`
}

// ShareToVehicleValue carries the shared content.
type ShareToVehicleValue struct {
	AndroidIntentExtraText string `json:"android.intent.extra.TEXT"`
}

// NewShareToVehicleCommand builds a share command for an address.
func NewShareToVehicleCommand(address, locale string, now Timestamp) ShareToVehicleCommand {
	return ShareToVehicleCommand{
		Type:        "share_ext_content_raw",
		Value:       ShareToVehicleValue{AndroidIntentExtraText: address},
		Locale:      locale,
		TimestampMS: now.UnixMilli(),
	}
}

func (ShareToVehicleCommand) Name() string { return "share" }

func (c ShareToVehicleCommand) Body() (interface{}, error) { return c, nil }

// ScheduledChargingCommand enables scheduled charging at a time given in
// minutes past midnight.
type ScheduledChargingCommand struct {
	Enable bool `json:"enable"`
	Time   int  `json:"time"`
}

func (ScheduledChargingCommand) Name() string { return "set_scheduled_charging" }

func (c ScheduledChargingCommand) Body() (interface{}, error) {
	if c.Time < 0 || c.Time >= 24*60 {
		return nil, fmt.Errorf("%w: scheduled charging time outside a day", ErrInvalidOptionsForCommand)
	}

	return c, nil
}

// ScheduledDepartureCommand configures preconditioning and off-peak
// charging ahead of a departure time in minutes past midnight.
type ScheduledDepartureCommand struct {
	Enable                      bool `json:"enable"`
	DepartureTime               int  `json:"departure_time"`
	PreconditioningEnabled      bool `json:"preconditioning_enabled"`
	PreconditioningWeekdaysOnly bool `json:"preconditioning_weekdays_only"`
	OffPeakChargingEnabled      bool `json:"off_peak_charging_enabled"`
	OffPeakChargingWeekdaysOnly bool `json:"off_peak_charging_weekdays_only"`
	EndOffPeakTime              int  `json:"end_off_peak_time"`
}

func (ScheduledDepartureCommand) Name() string { return "set_scheduled_departure" }

func (c ScheduledDepartureCommand) Body() (interface{}, error) { return c, nil }
