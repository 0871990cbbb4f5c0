// Package commands implements the teslactl subcommands.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/voltwise-io/teslago/internal/constants"
	"github.com/voltwise-io/teslago/pkg/tesla"
	"github.com/voltwise-io/teslago/pkg/teslaclient"
)

// Config is the persisted CLI configuration.
type Config struct {
	// Surface is "owner" or "fleet".
	Surface string `json:"surface,omitempty" yaml:"surface,omitempty"`

	// Fleet API settings. Unused on the owner surface.
	Region       string `json:"region,omitempty"        yaml:"region,omitempty"`
	ClientID     string `json:"client_id,omitempty"     yaml:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty" yaml:"client_secret,omitempty"`
	RedirectURI  string `json:"redirect_uri,omitempty"  yaml:"redirect_uri,omitempty"`

	Email string       `json:"email,omitempty" yaml:"email,omitempty"`
	Token *StoredToken `json:"token,omitempty" yaml:"token,omitempty"`

	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// StoredToken is the on-disk session token representation.
type StoredToken struct {
	AccessToken  string    `json:"access_token"            yaml:"access_token"`
	TokenType    string    `json:"token_type,omitempty"    yaml:"token_type,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty" yaml:"refresh_token,omitempty"`
	IDToken      string    `json:"id_token,omitempty"      yaml:"id_token,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"    yaml:"created_at,omitempty"`
	ExpiresIn    int64     `json:"expires_in,omitempty"    yaml:"expires_in,omitempty"`
}

const (
	surfaceOwner = "owner"
	surfaceFleet = "fleet"
)

func loadConfig() *Config {
	config := &Config{
		Surface:      viper.GetString("surface"),
		Region:       viper.GetString("region"),
		ClientID:     viper.GetString("client_id"),
		ClientSecret: viper.GetString("client_secret"),
		RedirectURI:  viper.GetString("redirect_uri"),
		Email:        viper.GetString("email"),
		Output:       viper.GetString("output"),
	}

	if config.Surface == "" {
		config.Surface = surfaceOwner
	}

	if token := viper.GetStringMap("token"); len(token) > 0 {
		config.Token = &StoredToken{
			AccessToken:  viper.GetString("token.access_token"),
			TokenType:    viper.GetString("token.token_type"),
			RefreshToken: viper.GetString("token.refresh_token"),
			IDToken:      viper.GetString("token.id_token"),
			CreatedAt:    viper.GetTime("token.created_at"),
			ExpiresIn:    viper.GetInt64("token.expires_in"),
		}
	}

	return config
}

func saveConfigStruct(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".teslactl")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// saveToken persists a session token into the config file.
func saveToken(token *tesla.Token, email string) error {
	config := loadConfig()

	config.Token = &StoredToken{
		AccessToken:  token.AccessToken,
		TokenType:    token.TokenType,
		RefreshToken: token.RefreshToken,
		IDToken:      token.IDToken,
		CreatedAt:    token.CreatedAt.Time,
		ExpiresIn:    token.ExpiresIn,
	}

	if email != "" {
		config.Email = email
	}

	return saveConfigStruct(config)
}

func (c *Config) sessionToken() *tesla.Token {
	if c.Token == nil {
		return nil
	}

	return &tesla.Token{
		AccessToken:  c.Token.AccessToken,
		TokenType:    c.Token.TokenType,
		RefreshToken: c.Token.RefreshToken,
		IDToken:      c.Token.IDToken,
		CreatedAt:    tesla.NewTimestamp(c.Token.CreatedAt),
		ExpiresIn:    c.Token.ExpiresIn,
	}
}

func (c *Config) api() (tesla.API, error) {
	if c.Surface != surfaceFleet {
		return tesla.OwnerAPI(), nil
	}

	if c.ClientID == "" {
		return tesla.API{}, constants.ErrClientIDRequired
	}

	var region tesla.Region

	switch c.Region {
	case "na", "north-america", "":
		region = tesla.RegionNorthAmericaAsiaPacific
	case "eu", "europe":
		region = tesla.RegionEuropeMiddleEastAfrica
	default:
		return tesla.API{}, fmt.Errorf("%w: %s", constants.ErrUnknownRegion, c.Region)
	}

	return tesla.FleetAPI(region, c.ClientID, c.ClientSecret, c.RedirectURI), nil
}

// createClient builds a library client from the persisted configuration.
func createClient() (tesla.Client, *Config, error) {
	config := loadConfig()

	api, err := config.api()
	if err != nil {
		return nil, nil, err
	}

	clientConfig := &tesla.Config{
		API:   api,
		Token: config.sessionToken(),
		Email: config.Email,
	}

	if viper.GetBool("verbose") {
		clientConfig.Debug = true
		clientConfig.Logger = newZerologAdapter()
	}

	client, err := teslaclient.New(clientConfig)
	if err != nil {
		return nil, nil, err
	}

	return client, config, nil
}

// createAuthenticatedClient is createClient plus a guard that a session
// token is present.
func createAuthenticatedClient() (tesla.Client, *Config, error) {
	client, config, err := createClient()
	if err != nil {
		return nil, nil, err
	}

	if config.Token == nil {
		return nil, nil, constants.ErrNotLoggedIn
	}

	return client, config, nil
}
