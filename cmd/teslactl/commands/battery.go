package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewBatteryCommand creates the Powerwall command group.
func NewBatteryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "battery",
		Short: "Inspect Powerwall batteries",
		Long:  "Commands addressing one Powerwall by its battery ID",
	}

	cmd.AddCommand(newBatteryStatusCommand())
	cmd.AddCommand(newBatteryDataCommand())
	cmd.AddCommand(newBatteryPowerHistoryCommand())

	return cmd
}

func newBatteryStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status BATTERY_ID",
		Short: "Show a Powerwall's summary status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			status, err := client.Powerwalls().Status(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get battery status: %w", err)
			}

			handled, err := renderStructured(status)
			if handled {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "%s: %.1f%% charged, %.0f Wh of %.0f Wh\n",
				status.SiteName, status.PercentageCharged, status.EnergyLeft, status.TotalPackEnergy)

			return nil
		},
	}
}

func newBatteryDataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "data BATTERY_ID",
		Short: "Show the detailed Powerwall record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			data, err := client.Powerwalls().Data(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get battery data: %w", err)
			}

			handled, err := renderStructured(data)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")

			rows := [][]string{
				{"Site Name", data.SiteName},
				{"Charged", fmt.Sprintf("%.1f%%", data.PercentageCharged)},
				{"Grid Status", data.GridStatus},
				{"Operation Mode", data.OperationMode},
				{"Version", data.InstalledVersion},
				{"Batteries", fmt.Sprintf("%d", data.BatteryCount)},
			}

			if data.Backup != nil {
				rows = append(rows, []string{"Backup Reserve", fmt.Sprintf("%.0f%%", data.Backup.BackupReservePercent)})
			}

			for _, row := range rows {
				err := table.Append(row)
				if err != nil {
					return fmt.Errorf("failed to append row to table: %w", err)
				}
			}

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render battery data table: %w", err)
			}

			return nil
		},
	}
}

func newBatteryPowerHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "power-history BATTERY_ID",
		Short: "Show the Powerwall power-flow series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			history, err := client.Powerwalls().PowerHistory(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get battery power history: %w", err)
			}

			handled, err := renderStructured(history)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Timestamp", "Solar (W)", "Battery (W)", "Grid (W)")

			for _, tick := range history.TimeSeries {
				err := table.Append([]string{
					tick.Timestamp.Format("2006-01-02 15:04"),
					fmt.Sprintf("%.0f", tick.SolarPower),
					fmt.Sprintf("%.0f", tick.BatteryPower),
					fmt.Sprintf("%.0f", tick.GridPower),
				})
				if err != nil {
					return fmt.Errorf("failed to append tick to table: %w", err)
				}
			}

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render power history table: %w", err)
			}

			return nil
		},
	}
}
