package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Trakt.RedirectURI != "urn:ietf:wg:oauth:2.0:oob" {
		t.Errorf("expected out-of-band redirect URI, got %q", config.Trakt.RedirectURI)
	}

	if config.Database.Path != "traktlist.db" {
		t.Errorf("expected default database path traktlist.db, got %q", config.Database.Path)
	}

	if config.Trakt.HasClientCredentials() {
		t.Error("default config should not carry client credentials")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		config := DefaultConfig()
		config.Trakt.ClientID = "client-id"
		config.Trakt.ClientSecret = "client-secret"
		config.Trakt.AccessToken = "token"
		config.Trakt.Username = "alice"
		config.Trakt.ListName = "My Watchlist"

		if err := SaveConfig(config, path); err != nil {
			t.Fatalf("failed to save config: %v", err)
		}

		loaded, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if loaded.Trakt.ClientID != "client-id" {
			t.Errorf("expected client id to survive the round trip, got %q", loaded.Trakt.ClientID)
		}
		if loaded.Trakt.ListName != "My Watchlist" {
			t.Errorf("expected list name to survive the round trip, got %q", loaded.Trakt.ListName)
		}
		if !loaded.Trakt.HasClientCredentials() {
			t.Error("loaded config should carry client credentials")
		}
	})

	t.Run("saved file is owner-only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := SaveConfig(DefaultConfig(), path); err != nil {
			t.Fatalf("failed to save config: %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("failed to stat config: %v", err)
		}

		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("expected mode 0600, got %o", perm)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
		if !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("not [valid toml"), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestCreateConfigFile(t *testing.T) {
	t.Run("creates from embedded example", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("created file should parse: %v", err)
		}

		if config.Database.Path != "traktlist.db" {
			t.Errorf("expected example database path, got %q", config.Database.Path)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if err := CreateConfigFile(path); err == nil {
			t.Error("expected an error when the file already exists")
		}
	})
}
