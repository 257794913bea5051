// Package config loads optional user settings for pm from the XDG config
// directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/choplin/pm/internal/logging"
)

// Output formats accepted by `pm list`.
const (
	FormatPlain = "plain"
	FormatTable = "table"
	FormatJSON  = "json"
)

// DefaultClipTimeout is how long a copied password stays on the clipboard.
const DefaultClipTimeout = 10 * time.Second

// Config holds user settings. Zero values are replaced by defaults on load.
type Config struct {
	// ClipTimeout is the delay before the clipboard is cleared. A negative
	// value leaves the password on the clipboard.
	ClipTimeout time.Duration `yaml:"clip_timeout"`
	ListFormat  string        `yaml:"list_format"`
	LogLevel    string        `yaml:"log_level"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		ClipTimeout: DefaultClipTimeout,
		ListFormat:  FormatPlain,
		LogLevel:    "warn",
	}
}

// GetConfigDir resolves the pm config directory under XDG_CONFIG_HOME,
// falling back to ~/.config.
func GetConfigDir() string {
	xdg.Reload()

	configHome := xdg.ConfigHome
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "pm")
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "pm")
}

// GetConfigPath returns the path of the settings file.
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// Load reads settings from path. A missing file is not an error and yields
// Default().
func Load(path string) (Config, error) {
	cfg := Default()

	//nolint:gosec // G304: path comes from the XDG config directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every setting holds an accepted value.
func (c Config) Validate() error {
	if err := ValidateFormat(c.ListFormat); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// ValidateFormat checks a list output format name.
func ValidateFormat(format string) error {
	switch format {
	case FormatPlain, FormatTable, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid values: plain, table, json)", format)
	}
}
