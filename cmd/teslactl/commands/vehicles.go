package commands

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/voltwise-io/teslago/pkg/tesla"
)

// NewVehiclesCommand creates the vehicles listing command.
func NewVehiclesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "vehicles",
		Short: "List vehicles on the account",
		Long:  "List all vehicles registered to the authenticated account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			vehicles, err := client.Vehicles().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list vehicles: %w", err)
			}

			handled, err := renderStructured(vehicles)
			if handled {
				return err
			}

			if len(vehicles) == 0 {
				_, _ = fmt.Fprintln(os.Stdout, "No vehicles found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "VIN", "Name", "State")

			for _, vehicle := range vehicles {
				err := table.Append([]string{
					strconv.FormatInt(vehicle.ID, 10),
					vehicle.VIN,
					vehicle.DisplayName,
					vehicle.State,
				})
				if err != nil {
					return fmt.Errorf("failed to append vehicle to table: %w", err)
				}
			}

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render vehicles table: %w", err)
			}

			return nil
		},
	}
}

// NewVehicleCommand creates the vehicle command group.
func NewVehicleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Inspect and command a single vehicle",
		Long:  "Commands addressing one vehicle by its numeric ID",
	}

	cmd.AddCommand(newVehicleGetCommand())
	cmd.AddCommand(newVehicleDataCommand())
	cmd.AddCommand(newVehicleWakeCommand())
	cmd.AddCommand(newVehicleMobileAccessCommand())
	cmd.AddCommand(newVehicleChargingSitesCommand())
	cmd.AddCommand(newVehicleChargeHistoryCommand())
	cmd.AddCommand(newVehicleCommandCommand())

	return cmd
}

func newVehicleGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get VEHICLE_ID",
		Short: "Show a vehicle summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			vehicle, err := client.Vehicles().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get vehicle: %w", err)
			}

			handled, err := renderStructured(vehicle)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")

			rows := [][]string{
				{"ID", strconv.FormatInt(vehicle.ID, 10)},
				{"VIN", vehicle.VIN},
				{"Name", vehicle.DisplayName},
				{"State", vehicle.State},
				{"In Service", strconv.FormatBool(vehicle.InService)},
			}

			for _, row := range rows {
				err := table.Append(row)
				if err != nil {
					return fmt.Errorf("failed to append row to table: %w", err)
				}
			}

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render vehicle table: %w", err)
			}

			return nil
		},
	}
}

func newVehicleDataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "data VEHICLE_ID",
		Short: "Show the full vehicle state snapshot",
		Long:  "Fetch the full state snapshot (charge, climate, drive, config) for a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			data, err := client.Vehicles().Data(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get vehicle data: %w", err)
			}

			handled, err := renderStructured(data)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")

			rows := [][]string{
				{"Name", data.DisplayName},
				{"State", data.State},
			}

			if data.ChargeState != nil {
				rows = append(rows,
					[]string{"Battery Level", fmt.Sprintf("%d%%", data.ChargeState.BatteryLevel)},
					[]string{"Charging State", data.ChargeState.ChargingState},
					[]string{"Battery Range", fmt.Sprintf("%.1f mi", data.ChargeState.BatteryRange)},
				)
			}

			if data.ClimateState != nil {
				rows = append(rows,
					[]string{"Inside Temp", fmt.Sprintf("%.1f C", data.ClimateState.InsideTemperature)},
					[]string{"Outside Temp", fmt.Sprintf("%.1f C", data.ClimateState.OutsideTemperature)},
				)
			}

			for _, row := range rows {
				err := table.Append(row)
				if err != nil {
					return fmt.Errorf("failed to append row to table: %w", err)
				}
			}

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render vehicle data table: %w", err)
			}

			return nil
		},
	}
}

func newVehicleWakeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "wake VEHICLE_ID",
		Short: "Wake a sleeping vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			vehicle, err := client.Vehicles().WakeUp(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to wake vehicle: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Vehicle '%s' is %s\n", vehicle.DisplayName, vehicle.State)

			return nil
		},
	}
}

func newVehicleMobileAccessCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mobile-access VEHICLE_ID",
		Short: "Show whether mobile access is enabled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			enabled, err := client.Vehicles().MobileAccess(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get mobile access state: %w", err)
			}

			if enabled {
				_, _ = fmt.Fprintln(os.Stdout, "Mobile access is enabled")
			} else {
				_, _ = fmt.Fprintln(os.Stdout, "Mobile access is disabled")
			}

			return nil
		},
	}
}

func newVehicleChargingSitesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "charging-sites VEHICLE_ID",
		Short: "List charging sites near the vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			sites, err := client.Vehicles().NearbyChargingSites(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get nearby charging sites: %w", err)
			}

			handled, err := renderStructured(sites)
			if handled {
				return err
			}

			if len(sites.Superchargers) == 0 {
				_, _ = fmt.Fprintln(os.Stdout, "No superchargers nearby")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "Distance (mi)", "Available", "Total")

			for _, site := range sites.Superchargers {
				err := table.Append([]string{
					site.Name,
					fmt.Sprintf("%.1f", site.DistanceMiles),
					strconv.Itoa(site.AvailableStalls),
					strconv.Itoa(site.TotalStalls),
				})
				if err != nil {
					return fmt.Errorf("failed to append site to table: %w", err)
				}
			}

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render charging sites table: %w", err)
			}

			return nil
		},
	}
}

func newVehicleChargeHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "charge-history VEHICLE_ID",
		Short: "Show the vehicle's charging history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			history, err := client.Vehicles().ChargeHistory(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get charge history: %w", err)
			}

			handled, err := renderStructured(history)
			if handled {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "%s\n", history.ScreenTitle)
			_, _ = fmt.Fprintf(os.Stdout, "Total charged: %s %s\n",
				history.TotalCharged.Value, history.TotalCharged.AfterAdornment)
			_, _ = fmt.Fprintf(os.Stdout, "  Home:         %s %s\n",
				history.TotalChargedBreakdown.Home.Value, history.TotalChargedBreakdown.Home.AfterAdornment)
			_, _ = fmt.Fprintf(os.Stdout, "  Supercharger: %s %s\n",
				history.TotalChargedBreakdown.SuperCharger.Value, history.TotalChargedBreakdown.SuperCharger.AfterAdornment)
			_, _ = fmt.Fprintf(os.Stdout, "  Other:        %s %s\n",
				history.TotalChargedBreakdown.Other.Value, history.TotalChargedBreakdown.Other.AfterAdornment)

			return nil
		},
	}
}

// vehicleCommands maps CLI command names to their wire commands. Only
// commands without payloads are exposed here; payload commands get their
// own flags below.
var vehicleCommands = map[string]tesla.Command{
	"flash-lights":     tesla.FlashLightsCommand{},
	"honk-horn":        tesla.HonkHornCommand{},
	"lock":             tesla.LockDoorsCommand{},
	"unlock":           tesla.UnlockDoorsCommand{},
	"open-charge-port": tesla.OpenChargePortCommand{},
	"start-charging":   tesla.StartChargingCommand{},
	"stop-charging":    tesla.StopChargingCommand{},
	"climate-on":       tesla.StartAutoConditioningCommand{},
	"climate-off":      tesla.StopAutoConditioningCommand{},
}

func newVehicleCommandCommand() *cobra.Command {
	var chargeLimit int

	cmd := &cobra.Command{
		Use:       "command VEHICLE_ID COMMAND",
		Short:     "Send a command to a vehicle",
		Long:      "Send a named command to a vehicle. Run without a command to list the available names.",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: commandNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && !cmd.Flags().Changed("charge-limit") {
				_, _ = fmt.Fprintln(os.Stdout, "Available commands:")
				for _, name := range commandNames() {
					_, _ = fmt.Fprintf(os.Stdout, "  - %s\n", name)
				}
				_, _ = fmt.Fprintln(os.Stdout, "  - --charge-limit <percent>")

				return nil
			}

			client, _, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			var command tesla.Command

			switch {
			case cmd.Flags().Changed("charge-limit"):
				command = tesla.ChargeLimitPercentageCommand{Limit: chargeLimit}
			default:
				var ok bool

				command, ok = vehicleCommands[args[1]]
				if !ok {
					return fmt.Errorf("%w: %s", tesla.ErrInvalidOptionsForCommand, args[1])
				}
			}

			result, err := client.Vehicles().SendCommand(cmd.Context(), args[0], command)
			if err != nil {
				return fmt.Errorf("failed to send command: %w", err)
			}

			if result.Result {
				_, _ = fmt.Fprintln(os.Stdout, "Command accepted")
			} else {
				_, _ = fmt.Fprintf(os.Stdout, "Command rejected: %s\n", result.Reason)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&chargeLimit, "charge-limit", 0, "set the charge limit percentage instead of a named command")

	return cmd
}

func commandNames() []string {
	names := make([]string, 0, len(vehicleCommands))
	for name := range vehicleCommands {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
