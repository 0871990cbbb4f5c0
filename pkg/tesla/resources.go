package tesla

// Vehicle is the summary record returned by the vehicle list and summary
// endpoints.
type Vehicle struct {
	ID              int64    `json:"id"                yaml:"id"`
	VehicleID       int64    `json:"vehicle_id"        yaml:"vehicle_id"`
	VIN             string   `json:"vin"               yaml:"vin"`
	DisplayName     string   `json:"display_name"      yaml:"display_name"`
	OptionCodes     string   `json:"option_codes"      yaml:"option_codes"`
	Color           *string  `json:"color"             yaml:"color"`
	Tokens          []string `json:"tokens"            yaml:"tokens"`
	State           string   `json:"state"             yaml:"state"`
	InService       bool     `json:"in_service"        yaml:"in_service"`
	IDString        string   `json:"id_s"              yaml:"id_s"`
	CalendarEnabled bool     `json:"calendar_enabled"  yaml:"calendar_enabled"`
	APIVersion      int      `json:"api_version"       yaml:"api_version"`
	AccessType      string   `json:"access_type"       yaml:"access_type"`
}

// VehicleData is the full state snapshot from the vehicle_data endpoint.
type VehicleData struct {
	Vehicle

	UserID        int64          `json:"user_id"        yaml:"user_id"`
	ChargeState   *ChargeState   `json:"charge_state"   yaml:"charge_state"`
	ClimateState  *ClimateState  `json:"climate_state"  yaml:"climate_state"`
	DriveState    *DriveState    `json:"drive_state"    yaml:"drive_state"`
	VehicleState  *VehicleState  `json:"vehicle_state"  yaml:"vehicle_state"`
	VehicleConfig *VehicleConfig `json:"vehicle_config" yaml:"vehicle_config"`
	GUISettings   *GUISettings   `json:"gui_settings"   yaml:"gui_settings"`
}

// ChargeState describes charging status and battery level.
type ChargeState struct {
	BatteryLevel            int        `json:"battery_level"              yaml:"battery_level"`
	UsableBatteryLevel      int        `json:"usable_battery_level"       yaml:"usable_battery_level"`
	BatteryRange            float64    `json:"battery_range"              yaml:"battery_range"`
	EstimatedBatteryRange   float64    `json:"est_battery_range"          yaml:"est_battery_range"`
	ChargingState           string     `json:"charging_state"             yaml:"charging_state"`
	ChargeLimitSoc          int        `json:"charge_limit_soc"           yaml:"charge_limit_soc"`
	ChargeLimitSocMin       int        `json:"charge_limit_soc_min"       yaml:"charge_limit_soc_min"`
	ChargeLimitSocMax       int        `json:"charge_limit_soc_max"       yaml:"charge_limit_soc_max"`
	ChargeLimitSocStandard  int        `json:"charge_limit_soc_std"       yaml:"charge_limit_soc_std"`
	ChargeRate              float64    `json:"charge_rate"                yaml:"charge_rate"`
	ChargerPower            int        `json:"charger_power"              yaml:"charger_power"`
	ChargerVoltage          int        `json:"charger_voltage"            yaml:"charger_voltage"`
	ChargerActualCurrent    int        `json:"charger_actual_current"     yaml:"charger_actual_current"`
	ChargeAmps              int        `json:"charge_amps"                yaml:"charge_amps"`
	ChargePortDoorOpen      bool       `json:"charge_port_door_open"      yaml:"charge_port_door_open"`
	ChargePortLatch         string     `json:"charge_port_latch"          yaml:"charge_port_latch"`
	ScheduledChargingPending bool      `json:"scheduled_charging_pending" yaml:"scheduled_charging_pending"`
	ScheduledChargingStart  *Timestamp `json:"scheduled_charging_start_time" yaml:"scheduled_charging_start_time"`
	MinutesToFullCharge     int        `json:"minutes_to_full_charge"     yaml:"minutes_to_full_charge"`
	TimeToFullCharge        float64    `json:"time_to_full_charge"        yaml:"time_to_full_charge"`
	Timestamp               *Timestamp `json:"timestamp"                  yaml:"timestamp"`
}

// ClimateState describes HVAC status.
type ClimateState struct {
	InsideTemperature      float64    `json:"inside_temp"               yaml:"inside_temp"`
	OutsideTemperature     float64    `json:"outside_temp"              yaml:"outside_temp"`
	DriverTempSetting      float64    `json:"driver_temp_setting"       yaml:"driver_temp_setting"`
	PassengerTempSetting   float64    `json:"passenger_temp_setting"    yaml:"passenger_temp_setting"`
	IsClimateOn            bool       `json:"is_climate_on"             yaml:"is_climate_on"`
	IsPreconditioning      bool       `json:"is_preconditioning"        yaml:"is_preconditioning"`
	IsFrontDefrosterOn     bool       `json:"is_front_defroster_on"     yaml:"is_front_defroster_on"`
	IsRearDefrosterOn      bool       `json:"is_rear_defroster_on"      yaml:"is_rear_defroster_on"`
	SeatHeaterLeft         int        `json:"seat_heater_left"          yaml:"seat_heater_left"`
	SeatHeaterRight        int        `json:"seat_heater_right"         yaml:"seat_heater_right"`
	SteeringWheelHeater    bool       `json:"steering_wheel_heater"     yaml:"steering_wheel_heater"`
	MinimumTempAvailable   float64    `json:"min_avail_temp"            yaml:"min_avail_temp"`
	MaximumTempAvailable   float64    `json:"max_avail_temp"            yaml:"max_avail_temp"`
	Timestamp              *Timestamp `json:"timestamp"                 yaml:"timestamp"`
}

// DriveState describes position and motion.
type DriveState struct {
	ShiftState *string    `json:"shift_state" yaml:"shift_state"`
	Speed      *float64   `json:"speed"       yaml:"speed"`
	Power      int        `json:"power"       yaml:"power"`
	Latitude   float64    `json:"latitude"    yaml:"latitude"`
	Longitude  float64    `json:"longitude"   yaml:"longitude"`
	Heading    int        `json:"heading"     yaml:"heading"`
	GPSAsOf    *Timestamp `json:"gps_as_of"   yaml:"gps_as_of"`
	Timestamp  *Timestamp `json:"timestamp"   yaml:"timestamp"`
}

// VehicleState describes doors, locks and firmware.
type VehicleState struct {
	Locked           bool       `json:"locked"            yaml:"locked"`
	SentryMode       bool       `json:"sentry_mode"       yaml:"sentry_mode"`
	ValetMode        bool       `json:"valet_mode"        yaml:"valet_mode"`
	Odometer         float64    `json:"odometer"          yaml:"odometer"`
	CarVersion       string     `json:"car_version"       yaml:"car_version"`
	DriverFrontDoor  int        `json:"df"                yaml:"df"`
	DriverRearDoor   int        `json:"dr"                yaml:"dr"`
	PassengerFront   int        `json:"pf"                yaml:"pf"`
	PassengerRear    int        `json:"pr"                yaml:"pr"`
	FrontTrunk       int        `json:"ft"                yaml:"ft"`
	RearTrunk        int        `json:"rt"                yaml:"rt"`
	VehicleName      *string    `json:"vehicle_name"      yaml:"vehicle_name"`
	SoftwareUpdate   *struct {
		Status              string `json:"status"                 yaml:"status"`
		DownloadPercentage  int    `json:"download_perc"          yaml:"download_perc"`
		InstallPercentage   int    `json:"install_perc"           yaml:"install_perc"`
		ExpectedDuration    int    `json:"expected_duration_sec"  yaml:"expected_duration_sec"`
	} `json:"software_update" yaml:"software_update"`
	Timestamp *Timestamp `json:"timestamp" yaml:"timestamp"`
}

// VehicleConfig describes static configuration of the vehicle.
type VehicleConfig struct {
	CarType              string `json:"car_type"               yaml:"car_type"`
	ExteriorColor        string `json:"exterior_color"         yaml:"exterior_color"`
	WheelType            string `json:"wheel_type"             yaml:"wheel_type"`
	SpoilerType          string `json:"spoiler_type"           yaml:"spoiler_type"`
	TrimBadging          string `json:"trim_badging"           yaml:"trim_badging"`
	HasAirSuspension     bool   `json:"has_air_suspension"     yaml:"has_air_suspension"`
	HasLudicrousMode     bool   `json:"has_ludicrous_mode"     yaml:"has_ludicrous_mode"`
	MotorizedChargePort  bool   `json:"motorized_charge_port"  yaml:"motorized_charge_port"`
	RearSeatHeaters      int    `json:"rear_seat_heaters"      yaml:"rear_seat_heaters"`
	SunRoofInstalled     *int   `json:"sun_roof_installed"     yaml:"sun_roof_installed"`
}

// GUISettings describes display unit preferences.
type GUISettings struct {
	Distance           string `json:"gui_distance_units"     yaml:"gui_distance_units"`
	Temperature        string `json:"gui_temperature_units"  yaml:"gui_temperature_units"`
	ChargeRate         string `json:"gui_charge_rate_units"  yaml:"gui_charge_rate_units"`
	TwentyFourHourTime bool   `json:"gui_24_hour_time"       yaml:"gui_24_hour_time"`
	RangeDisplay       string `json:"gui_range_display"      yaml:"gui_range_display"`
}

// Product is an entry from the products endpoint. Vehicles carry VIN and
// id, energy products carry an energy site id; fields of the other kind
// are left nil.
type Product struct {
	ID                *int64  `json:"id"                  yaml:"id"`
	VehicleID         *int64  `json:"vehicle_id"          yaml:"vehicle_id"`
	VIN               *string `json:"vin"                 yaml:"vin"`
	DisplayName       *string `json:"display_name"        yaml:"display_name"`
	State             *string `json:"state"               yaml:"state"`
	EnergySiteID      *int64  `json:"energy_site_id"      yaml:"energy_site_id"`
	ResourceType      *string `json:"resource_type"       yaml:"resource_type"`
	SiteName          *string `json:"site_name"           yaml:"site_name"`
	GatewayID         *string `json:"gateway_id"          yaml:"gateway_id"`
	EnergyLeft        float64 `json:"energy_left"         yaml:"energy_left"`
	TotalPackEnergy   float64 `json:"total_pack_energy"   yaml:"total_pack_energy"`
	PercentageCharged float64 `json:"percentage_charged"  yaml:"percentage_charged"`
	BatteryPower      float64 `json:"battery_power"       yaml:"battery_power"`
}

// CommandResponse is the result of a vehicle command.
type CommandResponse struct {
	Result bool   `json:"result" yaml:"result"`
	Reason string `json:"reason" yaml:"reason"`
}

// NearbyChargingSites lists charging options around the vehicle.
type NearbyChargingSites struct {
	CongestionSyncTimeUTCSecs *Timestamp           `json:"congestion_sync_time_utc_secs" yaml:"congestion_sync_time_utc_secs"`
	DestinationCharging       []DestinationCharger `json:"destination_charging"          yaml:"destination_charging"`
	Superchargers             []Supercharger       `json:"superchargers"                 yaml:"superchargers"`
	Timestamp                 *Timestamp           `json:"timestamp"                     yaml:"timestamp"`
}

// ChargerLocation is a charger's coordinates.
type ChargerLocation struct {
	Latitude  float64 `json:"lat"  yaml:"lat"`
	Longitude float64 `json:"long" yaml:"long"`
}

// DestinationCharger is a destination charging site.
type DestinationCharger struct {
	Location      ChargerLocation `json:"location"       yaml:"location"`
	Name          string          `json:"name"           yaml:"name"`
	Type          string          `json:"type"           yaml:"type"`
	DistanceMiles float64         `json:"distance_miles" yaml:"distance_miles"`
}

// Supercharger is a supercharging site with live stall availability.
type Supercharger struct {
	DestinationCharger

	AvailableStalls int  `json:"available_stalls" yaml:"available_stalls"`
	TotalStalls     int  `json:"total_stalls"     yaml:"total_stalls"`
	SiteClosed      bool `json:"site_closed"      yaml:"site_closed"`
}

// ChargeHistory is the charging history screen payload.
type ChargeHistory struct {
	ScreenTitle           string                 `json:"screen_title"            yaml:"screen_title"`
	ScreenSubtitle        string                 `json:"screen_subtitle"         yaml:"screen_subtitle"`
	TotalCharged          ChargeHistoryValue     `json:"total_charged"           yaml:"total_charged"`
	TotalChargedBreakdown ChargeHistoryBreakdown `json:"total_charged_breakdown" yaml:"total_charged_breakdown"`
}

// ChargeHistoryValue is a formatted value with its raw counterpart.
type ChargeHistoryValue struct {
	Value          string `json:"value"           yaml:"value"`
	RawValue       int    `json:"raw_value"       yaml:"raw_value"`
	AfterAdornment string `json:"after_adornment" yaml:"after_adornment"`
	Title          string `json:"title"           yaml:"title"`
}

// ChargeHistoryBreakdown splits charged energy by charging location.
type ChargeHistoryBreakdown struct {
	Home         ChargeHistoryValue `json:"home"          yaml:"home"`
	SuperCharger ChargeHistoryValue `json:"super_charger" yaml:"super_charger"`
	Other        ChargeHistoryValue `json:"other"         yaml:"other"`
	Work         ChargeHistoryValue `json:"work"          yaml:"work"`
}

// Me is the account profile.
type Me struct {
	Email           string `json:"email"             yaml:"email"`
	FullName        string `json:"full_name"         yaml:"full_name"`
	ProfileImageURL string `json:"profile_image_url" yaml:"profile_image_url"`
}

// UserRegion is the account's fleet region assignment.
type UserRegion struct {
	Region          string `json:"region"             yaml:"region"`
	FleetAPIBaseURL string `json:"fleet_api_base_url" yaml:"fleet_api_base_url"`
}

// PartnerRegistration is the app-registration record returned by the
// partner accounts endpoint.
type PartnerRegistration struct {
	Domain         string     `json:"domain"          yaml:"domain"`
	Name           string     `json:"name"            yaml:"name"`
	Description    string     `json:"description"     yaml:"description"`
	ClientID       string     `json:"client_id"       yaml:"client_id"`
	CA             *string    `json:"ca"              yaml:"ca"`
	CreatedAt      *Timestamp `json:"created_at"      yaml:"created_at"`
	UpdatedAt      *Timestamp `json:"updated_at"      yaml:"updated_at"`
	EnterpriseTier string     `json:"enterprise_tier" yaml:"enterprise_tier"`
	PublicKey      string     `json:"public_key"      yaml:"public_key"`
}

// HistoryPeriod selects the aggregation window for energy site history.
type HistoryPeriod string

// History periods accepted by the energy site history endpoint.
const (
	HistoryPeriodDay     HistoryPeriod = "day"
	HistoryPeriodWeek    HistoryPeriod = "week"
	HistoryPeriodMonth   HistoryPeriod = "month"
	HistoryPeriodYear    HistoryPeriod = "year"
	HistoryPeriodLifetime HistoryPeriod = "lifetime"
)

// EnergySiteStatus is the summary status of an energy site.
type EnergySiteStatus struct {
	ResourceType      string  `json:"resource_type"      yaml:"resource_type"`
	SiteName          string  `json:"site_name"          yaml:"site_name"`
	GatewayID         string  `json:"gateway_id"         yaml:"gateway_id"`
	EnergyLeft        float64 `json:"energy_left"        yaml:"energy_left"`
	TotalPackEnergy   float64 `json:"total_pack_energy"  yaml:"total_pack_energy"`
	PercentageCharged float64 `json:"percentage_charged" yaml:"percentage_charged"`
	BatteryPower      float64 `json:"battery_power"      yaml:"battery_power"`
	SyncGridAlertEnabled bool `json:"sync_grid_alert_enabled" yaml:"sync_grid_alert_enabled"`
	BreakerAlertEnabled  bool `json:"breaker_alert_enabled"   yaml:"breaker_alert_enabled"`
}

// EnergySiteLiveStatus is the live telemetry of an energy site.
type EnergySiteLiveStatus struct {
	SolarPower            float64    `json:"solar_power"             yaml:"solar_power"`
	EnergyLeft            float64    `json:"energy_left"             yaml:"energy_left"`
	TotalPackEnergy       float64    `json:"total_pack_energy"       yaml:"total_pack_energy"`
	PercentageCharged     float64    `json:"percentage_charged"      yaml:"percentage_charged"`
	BatteryPower          float64    `json:"battery_power"           yaml:"battery_power"`
	LoadPower             float64    `json:"load_power"              yaml:"load_power"`
	GridPower             float64    `json:"grid_power"              yaml:"grid_power"`
	GridStatus            string     `json:"grid_status"             yaml:"grid_status"`
	GridServicesActive    bool       `json:"grid_services_active"    yaml:"grid_services_active"`
	GridServicesPower     float64    `json:"grid_services_power"     yaml:"grid_services_power"`
	GeneratorPower        float64    `json:"generator_power"         yaml:"generator_power"`
	IslandStatus          string     `json:"island_status"           yaml:"island_status"`
	StormModeActive       bool       `json:"storm_mode_active"       yaml:"storm_mode_active"`
	Timestamp             *Timestamp `json:"timestamp"               yaml:"timestamp"`
}

// EnergySiteInfo is the static configuration of an energy site.
type EnergySiteInfo struct {
	ID                   string     `json:"id"                     yaml:"id"`
	SiteName             string     `json:"site_name"              yaml:"site_name"`
	SiteNumber           string     `json:"site_number"            yaml:"site_number"`
	InstallationDate     *Timestamp `json:"installation_date"      yaml:"installation_date"`
	Version              string     `json:"version"                yaml:"version"`
	BatteryCount         int        `json:"battery_count"          yaml:"battery_count"`
	NameplatePower       float64    `json:"nameplate_power"        yaml:"nameplate_power"`
	NameplateEnergy      float64    `json:"nameplate_energy"       yaml:"nameplate_energy"`
	BackupReservePercent float64    `json:"backup_reserve_percent" yaml:"backup_reserve_percent"`
	DefaultRealMode      string     `json:"default_real_mode"      yaml:"default_real_mode"`
}

// EnergySiteHistory is the aggregated energy-flow history of a site.
type EnergySiteHistory struct {
	SerialNumber string                  `json:"serial_number" yaml:"serial_number"`
	Period       HistoryPeriod           `json:"period"        yaml:"period"`
	TimeSeries   []EnergySiteHistoryTick `json:"time_series"   yaml:"time_series"`
}

// EnergySiteHistoryTick is one aggregation bucket of site history.
type EnergySiteHistoryTick struct {
	Timestamp                  Timestamp `json:"timestamp"                     yaml:"timestamp"`
	SolarEnergyExported        float64   `json:"solar_energy_exported"         yaml:"solar_energy_exported"`
	GridEnergyImported         float64   `json:"grid_energy_imported"          yaml:"grid_energy_imported"`
	GridEnergyExportedFromSolar float64  `json:"grid_energy_exported_from_solar" yaml:"grid_energy_exported_from_solar"`
	BatteryEnergyExported      float64   `json:"battery_energy_exported"       yaml:"battery_energy_exported"`
	BatteryEnergyImportedFromGrid float64 `json:"battery_energy_imported_from_grid" yaml:"battery_energy_imported_from_grid"`
	BatteryEnergyImportedFromSolar float64 `json:"battery_energy_imported_from_solar" yaml:"battery_energy_imported_from_solar"`
	ConsumerEnergyImportedFromGrid float64 `json:"consumer_energy_imported_from_grid" yaml:"consumer_energy_imported_from_grid"`
	ConsumerEnergyImportedFromSolar float64 `json:"consumer_energy_imported_from_solar" yaml:"consumer_energy_imported_from_solar"`
	ConsumerEnergyImportedFromBattery float64 `json:"consumer_energy_imported_from_battery" yaml:"consumer_energy_imported_from_battery"`
}

// BatteryStatus is the summary status of a Powerwall.
type BatteryStatus struct {
	SiteName          string  `json:"site_name"          yaml:"site_name"`
	ID                string  `json:"id"                 yaml:"id"`
	EnergyLeft        float64 `json:"energy_left"        yaml:"energy_left"`
	TotalPackEnergy   float64 `json:"total_pack_energy"  yaml:"total_pack_energy"`
	PercentageCharged float64 `json:"percentage_charged" yaml:"percentage_charged"`
	BatteryPower      float64 `json:"battery_power"      yaml:"battery_power"`
}

// BatteryData is the detailed Powerwall record.
type BatteryData struct {
	BatteryStatus

	GridStatus           string  `json:"grid_status"            yaml:"grid_status"`
	Backup               *struct {
		BackupReservePercent float64 `json:"backup_reserve_percent" yaml:"backup_reserve_percent"`
	} `json:"backup" yaml:"backup"`
	DefaultRealMode      string  `json:"default_real_mode"      yaml:"default_real_mode"`
	OperationMode        string  `json:"operation"              yaml:"operation"`
	InstalledVersion     string  `json:"version"                yaml:"version"`
	BatteryCount         int     `json:"battery_count"          yaml:"battery_count"`
	SolarPower           float64 `json:"solar_power"            yaml:"solar_power"`
	LoadPower            float64 `json:"load_power"             yaml:"load_power"`
	GridPower            float64 `json:"grid_power"             yaml:"grid_power"`
}

// BatteryPowerHistory is the time series of Powerwall power flows.
type BatteryPowerHistory struct {
	SerialNumber string             `json:"serial_number" yaml:"serial_number"`
	TimeSeries   []BatteryPowerTick `json:"time_series"   yaml:"time_series"`
}

// BatteryPowerTick is one sample of Powerwall power flow.
type BatteryPowerTick struct {
	Timestamp    Timestamp `json:"timestamp"     yaml:"timestamp"`
	SolarPower   float64   `json:"solar_power"   yaml:"solar_power"`
	BatteryPower float64   `json:"battery_power" yaml:"battery_power"`
	GridPower    float64   `json:"grid_power"    yaml:"grid_power"`
}
