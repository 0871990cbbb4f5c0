package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/voltwise-io/teslago/internal/constants"
	"github.com/voltwise-io/teslago/pkg/tesla"
	"github.com/voltwise-io/teslago/pkg/teslaclient"
)

// promptWebLogin implements tesla.WebLogin by sending the user to the
// browser and reading the redirect URL back from stdin.
type promptWebLogin struct{}

func (promptWebLogin) Authorize(_ context.Context, authorizationURL string) (string, error) {
	_, _ = fmt.Fprintln(os.Stdout, "Open the following URL in a browser and sign in:")
	_, _ = fmt.Fprintln(os.Stdout)
	_, _ = fmt.Fprintln(os.Stdout, "  "+authorizationURL)
	_, _ = fmt.Fprintln(os.Stdout)
	_, _ = fmt.Fprint(os.Stdout, "Paste the full redirect URL here: ")

	reader := bufio.NewReader(os.Stdin)

	redirectURL, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading redirect URL: %w", err)
	}

	redirectURL = strings.TrimSpace(redirectURL)
	if !strings.Contains(redirectURL, "code=") {
		return "", constants.ErrNoRedirectCode
	}

	return redirectURL, nil
}

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		fleet        bool
		region       string
		clientID     string
		clientSecret string
		redirectURI  string
		email        string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with a Tesla account",
		Long: `Authenticate with a Tesla account using the browser-based login flow.

By default the legacy owner API is used. Pass --fleet together with
--region and --client-id to log in against the fleet API instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if fleet {
				if clientID == "" {
					return constants.ErrClientIDRequired
				}

				if region == "" {
					return constants.ErrRegionRequired
				}

				if clientSecret == "" {
					secret, err := promptSecret("Client secret: ")
					if err != nil {
						return err
					}

					clientSecret = secret
				}

				config.Surface = surfaceFleet
				config.Region = region
				config.ClientID = clientID
				config.ClientSecret = clientSecret
				config.RedirectURI = redirectURI
			} else {
				config.Surface = surfaceOwner
			}

			if email != "" {
				config.Email = email
			}

			api, err := config.api()
			if err != nil {
				return err
			}

			client, err := teslaclient.New(&tesla.Config{API: api})
			if err != nil {
				return err
			}

			token, err := client.AuthenticateWeb(cmd.Context(), promptWebLogin{})
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			if config.Email == "" {
				if claims, err := token.IdentityClaims(); err == nil {
					config.Email = claims.Email
				}
			}

			config.Token = &StoredToken{
				AccessToken:  token.AccessToken,
				TokenType:    token.TokenType,
				RefreshToken: token.RefreshToken,
				IDToken:      token.IDToken,
				CreatedAt:    token.CreatedAt.Time,
				ExpiresIn:    token.ExpiresIn,
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(os.Stdout, "Successfully logged in")

			return nil
		},
	}

	cmd.Flags().BoolVar(&fleet, "fleet", false, "use the fleet API instead of the owner API")
	cmd.Flags().StringVar(&region, "region", "", "fleet region (na, eu)")
	cmd.Flags().StringVar(&clientID, "client-id", "", "registered fleet application client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "registered fleet application client secret")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "registered fleet application redirect URI")
	cmd.Flags().StringVar(&email, "email", "", "account email")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	var revoke bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out of the current account",
		Long:  "Drop the stored session token, optionally revoking it server-side first",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.Token == nil {
				_, _ = fmt.Fprintln(os.Stdout, "Not logged in")

				return nil
			}

			if revoke {
				client, _, err := createAuthenticatedClient()
				if err != nil {
					return err
				}

				revoked, err := client.Revoke(cmd.Context())
				if err != nil {
					_, _ = fmt.Fprintf(os.Stderr, "Warning: server-side revoke failed: %v\n", err)
				} else if revoked {
					_, _ = fmt.Fprintln(os.Stdout, "Token revoked server-side")
				}
			}

			config.Token = nil

			err := saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(os.Stdout, "Logged out")

			return nil
		},
	}

	cmd.Flags().BoolVar(&revoke, "revoke", false, "revoke the token server-side before discarding it")

	return cmd
}

func promptSecret(prompt string) (string, error) {
	_, _ = fmt.Fprint(os.Stdout, prompt)

	secret, err := term.ReadPassword(int(syscall.Stdin))

	_, _ = fmt.Fprintln(os.Stdout)

	if err != nil {
		return "", fmt.Errorf("reading secret: %w", err)
	}

	return strings.TrimSpace(string(secret)), nil
}
