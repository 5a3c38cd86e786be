package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kastheco/tickdo/log"
)

const ConfigFileName = "config.json"

// GetConfigDir returns the path to the application's configuration
// directory, ~/.config/tickdo on XDG platforms.
func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "tickdo"), nil
}

// Config represents the application configuration
type Config struct {
	// ClientID/ClientSecret override the TICKDO_CLIENT_ID/SECRET env vars.
	ClientID     string `json:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
	// BaseURL overrides the task service endpoint, mainly for testing.
	BaseURL string `json:"base_url,omitempty"`
	// DefaultView is the tab shown at startup: "today", "week", or "inbox".
	DefaultView string `json:"default_view,omitempty"`
	// TelemetryEnabled controls whether crash reporting via Sentry is active.
	// Defaults to true when not set.
	TelemetryEnabled *bool `json:"telemetry_enabled,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultView: "today",
	}
}

// LoadConfig loads the configuration from disk, falling back to defaults
// when the file is missing or unreadable.
func LoadConfig() *Config {
	dir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}
	return loadConfigFrom(filepath.Join(dir, ConfigFileName))
}

func loadConfigFrom(path string) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WarningLog.Printf("failed to read config file: %v", err)
		}
		return DefaultConfig()
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		log.ErrorLog.Printf("failed to parse config file: %v", err)
		return DefaultConfig()
	}
	if cfg.DefaultView == "" {
		cfg.DefaultView = "today"
	}
	return cfg
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0o644)
}

// IsTelemetryEnabled returns whether crash reporting is enabled.
// Defaults to true when the field is not set.
func (c *Config) IsTelemetryEnabled() bool {
	if c.TelemetryEnabled == nil {
		return true
	}
	return *c.TelemetryEnabled
}
