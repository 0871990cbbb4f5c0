package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/voltwise-io/teslago/internal/constants"
)

// NewTokenCommand creates the token command group.
func NewTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the session token",
		Long:  "Commands for inspecting, refreshing and revoking the stored session token",
	}

	cmd.AddCommand(newTokenStatusCommand())
	cmd.AddCommand(newTokenRefreshCommand())
	cmd.AddCommand(newTokenRevokeCommand())

	return cmd
}

func newTokenStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show token status and expiration",
		Long:  "Display information about the stored session token including expiration time",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			status := buildTokenStatus(config)

			handled, err := renderStructured(status)
			if handled {
				return err
			}

			return displayTokenStatusTable(status)
		},
	}
}

func newTokenRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Manually refresh the session token",
		Long:  "Force a refresh of the session token using the stored refresh token",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, config, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			if config.Token.RefreshToken == "" {
				return constants.ErrNoRefreshToken
			}

			token, err := client.Refresh(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to refresh token: %w", err)
			}

			err = saveToken(token, config.Email)
			if err != nil {
				return fmt.Errorf("failed to save refreshed token: %w", err)
			}

			_, _ = fmt.Fprintln(os.Stdout, "Token refreshed successfully!")

			expiresAt := token.CreatedAt.Add(time.Duration(token.ExpiresIn) * time.Second)
			_, _ = fmt.Fprintf(os.Stdout, "New token expires at: %s\n", expiresAt.Format(time.RFC3339))

			return nil
		},
	}
}

func newTokenRevokeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke",
		Short: "Revoke the session token",
		Long:  "Clear the stored session token and ask the server to revoke it",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, config, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			revoked, err := client.Revoke(cmd.Context())
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: server-side revoke failed: %v\n", err)
			}

			config.Token = nil

			saveErr := saveConfigStruct(config)
			if saveErr != nil {
				return saveErr
			}

			if revoked {
				_, _ = fmt.Fprintln(os.Stdout, "Token revoked")
			} else {
				_, _ = fmt.Fprintln(os.Stdout, "Token cleared locally")
			}

			return nil
		},
	}
}

func buildTokenStatus(config *Config) map[string]interface{} {
	status := map[string]interface{}{
		"surface": config.Surface,
	}

	if config.Token == nil || config.Token.AccessToken == "" {
		status["status"] = "No token"
		status["authenticated"] = false

		return status
	}

	status["status"] = "Token present"
	status["refresh_token_available"] = config.Token.RefreshToken != ""

	if config.Email != "" {
		status["email"] = config.Email
	}

	if config.Token.ExpiresIn > 0 && !config.Token.CreatedAt.IsZero() {
		expiresAt := config.Token.CreatedAt.Add(time.Duration(config.Token.ExpiresIn) * time.Second)
		status["expires_at"] = expiresAt.Format(time.RFC3339)

		timeUntilExpiry := time.Until(expiresAt)
		status["time_until_expiry"] = timeUntilExpiry.String()

		switch {
		case timeUntilExpiry <= 0:
			status["expiry_status"] = "Expired"
		case timeUntilExpiry <= 5*time.Minute:
			status["expiry_status"] = "Expires soon"
		default:
			status["expiry_status"] = "Valid"
		}

		status["authenticated"] = timeUntilExpiry > 0
	} else {
		status["expiry_status"] = "Unknown expiration"
		status["authenticated"] = true
	}

	return status
}

func displayTokenStatusTable(status map[string]interface{}) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	rows := []string{
		"surface", "status", "authenticated", "email",
		"expiry_status", "expires_at", "time_until_expiry", "refresh_token_available",
	}

	for _, key := range rows {
		value, ok := status[key]
		if !ok {
			continue
		}

		err := table.Append([]string{key, fmt.Sprintf("%v", value)})
		if err != nil {
			return fmt.Errorf("failed to append %s to table: %w", key, err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render token status table: %w", err)
	}

	return nil
}
