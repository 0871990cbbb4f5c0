package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/voltwise-io/teslago/pkg/tesla"
)

// NewEnergyCommand creates the energy site command group.
func NewEnergyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Inspect energy sites",
		Long:  "Commands addressing one energy site by its numeric ID",
	}

	cmd.AddCommand(newEnergyStatusCommand())
	cmd.AddCommand(newEnergyLiveCommand())
	cmd.AddCommand(newEnergyInfoCommand())
	cmd.AddCommand(newEnergyHistoryCommand())

	return cmd
}

func newEnergyStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status SITE_ID",
		Short: "Show an energy site's summary status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			status, err := client.EnergySites().Status(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get energy site status: %w", err)
			}

			handled, err := renderStructured(status)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")

			rows := [][]string{
				{"Site Name", status.SiteName},
				{"Charged", fmt.Sprintf("%.1f%%", status.PercentageCharged)},
				{"Energy Left", fmt.Sprintf("%.0f Wh", status.EnergyLeft)},
				{"Pack Energy", fmt.Sprintf("%.0f Wh", status.TotalPackEnergy)},
				{"Battery Power", fmt.Sprintf("%.0f W", status.BatteryPower)},
			}

			for _, row := range rows {
				err := table.Append(row)
				if err != nil {
					return fmt.Errorf("failed to append row to table: %w", err)
				}
			}

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render energy status table: %w", err)
			}

			return nil
		},
	}
}

func newEnergyLiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "live SITE_ID",
		Short: "Show an energy site's live power flows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			live, err := client.EnergySites().LiveStatus(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get energy site live status: %w", err)
			}

			handled, err := renderStructured(live)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Flow", "Power (W)")

			rows := [][]string{
				{"Solar", fmt.Sprintf("%.0f", live.SolarPower)},
				{"Battery", fmt.Sprintf("%.0f", live.BatteryPower)},
				{"Load", fmt.Sprintf("%.0f", live.LoadPower)},
				{"Grid", fmt.Sprintf("%.0f", live.GridPower)},
			}

			for _, row := range rows {
				err := table.Append(row)
				if err != nil {
					return fmt.Errorf("failed to append row to table: %w", err)
				}
			}

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render live status table: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Grid status: %s, charged %.1f%%\n", live.GridStatus, live.PercentageCharged)

			return nil
		},
	}
}

func newEnergyInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info SITE_ID",
		Short: "Show an energy site's static configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			info, err := client.EnergySites().Info(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get energy site info: %w", err)
			}

			handled, err := renderStructured(info)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")

			rows := [][]string{
				{"Site Name", info.SiteName},
				{"Version", info.Version},
				{"Batteries", fmt.Sprintf("%d", info.BatteryCount)},
				{"Nameplate Power", fmt.Sprintf("%.0f W", info.NameplatePower)},
				{"Nameplate Energy", fmt.Sprintf("%.0f Wh", info.NameplateEnergy)},
				{"Backup Reserve", fmt.Sprintf("%.0f%%", info.BackupReservePercent)},
			}

			for _, row := range rows {
				err := table.Append(row)
				if err != nil {
					return fmt.Errorf("failed to append row to table: %w", err)
				}
			}

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render site info table: %w", err)
			}

			return nil
		},
	}
}

func newEnergyHistoryCommand() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "history SITE_ID",
		Short: "Show an energy site's aggregated energy history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			history, err := client.EnergySites().History(cmd.Context(), args[0], tesla.HistoryPeriod(period))
			if err != nil {
				return fmt.Errorf("failed to get energy site history: %w", err)
			}

			handled, err := renderStructured(history)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Timestamp", "Solar (Wh)", "Grid Import (Wh)", "Battery Export (Wh)")

			for _, tick := range history.TimeSeries {
				err := table.Append([]string{
					tick.Timestamp.Format("2006-01-02 15:04"),
					fmt.Sprintf("%.0f", tick.SolarEnergyExported),
					fmt.Sprintf("%.0f", tick.GridEnergyImported),
					fmt.Sprintf("%.0f", tick.BatteryEnergyExported),
				})
				if err != nil {
					return fmt.Errorf("failed to append tick to table: %w", err)
				}
			}

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render history table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "day", "aggregation period (day, week, month, year, lifetime)")

	return cmd
}
