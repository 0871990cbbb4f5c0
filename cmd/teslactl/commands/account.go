package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAccountCommand creates the account command group.
func NewAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect the authenticated account",
	}

	cmd.AddCommand(newAccountMeCommand())
	cmd.AddCommand(newAccountRegionCommand())

	return cmd
}

func newAccountMeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the account profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			me, err := client.Users().Me(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get account profile: %w", err)
			}

			handled, err := renderStructured(me)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Email", me.Email)
			_ = table.Append("Full Name", me.FullName)
			_ = table.Append("Profile Image", me.ProfileImageURL)

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render account table: %w", err)
			}

			return nil
		},
	}
}

func newAccountRegionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "region",
		Short: "Show the account's fleet region assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			region, err := client.Users().Region(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get account region: %w", err)
			}

			handled, err := renderStructured(region)
			if handled {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Region: %s\nFleet API: %s\n", region.Region, region.FleetAPIBaseURL)

			return nil
		},
	}
}
