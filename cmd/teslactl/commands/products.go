package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/voltwise-io/teslago/internal/constants"
	"github.com/voltwise-io/teslago/pkg/tesla"
)

// NewProductsCommand creates the products listing command.
func NewProductsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List all products on the account",
		Long:  "List vehicles and energy products registered to the authenticated account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			products, err := client.Products(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			handled, err := renderStructured(products)
			if handled {
				return err
			}

			if len(products) == 0 {
				_, _ = fmt.Fprintln(os.Stdout, "No products found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Type", "ID", "Name", "State")

			for _, product := range products {
				err := table.Append(productRow(product))
				if err != nil {
					return fmt.Errorf("failed to append product to table: %w", err)
				}
			}

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render products table: %w", err)
			}

			return nil
		},
	}
}

func productRow(product tesla.Product) []string {
	// Energy products carry an energy site id, vehicles a VIN.
	if product.EnergySiteID != nil {
		return []string{
			stringOrNA(product.ResourceType),
			strconv.FormatInt(*product.EnergySiteID, 10),
			stringOrNA(product.SiteName),
			fmt.Sprintf("%.0f%% charged", product.PercentageCharged),
		}
	}

	id := constants.NotAvailable
	if product.ID != nil {
		id = strconv.FormatInt(*product.ID, 10)
	}

	return []string{
		"vehicle",
		id,
		stringOrNA(product.DisplayName),
		stringOrNA(product.State),
	}
}
