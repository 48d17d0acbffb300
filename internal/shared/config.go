package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
//
// It doubles as the credential store: the trakt section is written back to disk after every
// mutation (token acquisition, username change, list selection) so a crash loses at most the
// in-flight step.
type Config struct {
	Trakt    TraktConfig    `toml:"trakt"`
	Database DatabaseConfig `toml:"database"`
}

// TraktConfig contains Trakt API credentials and per-user state.
type TraktConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	AccessToken  string `toml:"access_token"`
	Username     string `toml:"username"`
	ListName     string `toml:"list_name"`
	RedirectURI  string `toml:"redirect_uri"`
}

// DatabaseConfig contains search cache database settings.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// HasClientCredentials reports whether both client id and secret are present.
func (t TraktConfig) HasClientCredentials() bool {
	return t.ClientID != "" && t.ClientSecret != ""
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %v", ErrMissingConfig, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	return &config, nil
}

// SaveConfig writes the configuration back to the given path.
//
// Called after every credential mutation, not batched at process exit.
func SaveConfig(config *Config, path string) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
