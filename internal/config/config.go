// Package config manages envprep configuration from files and environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds envprep configuration.
type Config struct {
	// Inherit controls whether the prepared environment starts from the
	// environment envprep itself was started with.
	Inherit bool `mapstructure:"inherit"`

	// Prepend lists directories placed at the front of the search path
	// before any --prepend flags.
	Prepend []string `mapstructure:"prepend"`

	// ProfileDir overrides where saved profiles live.
	// Defaults to $XDG_DATA_HOME/envprep/profiles.
	ProfileDir string `mapstructure:"profile_dir"`

	// LogLevel is the minimum level written to stderr (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Shell is the default format for export when none is given.
	Shell string `mapstructure:"shell"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Inherit:    true,
		Prepend:    nil,
		ProfileDir: "",
		LogLevel:   "warn",
		Shell:      "bash",
	}
}

// Load reads configuration from file and environment variables.
// Configuration is loaded from (in order of precedence):
//  1. Environment variables (ENVPREP_*)
//  2. Config file ($XDG_CONFIG_HOME/envprep/config.toml or ~/.config/envprep/config.toml)
//  3. Default values
func Load() (*Config, error) {
	v := newViper()

	// Set defaults for all config keys
	v.SetDefault("inherit", true)
	v.SetDefault("prepend", []string{})
	v.SetDefault("profile_dir", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("shell", "bash")

	// Environment variable overrides
	v.SetEnvPrefix("ENVPREP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore error if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns the path to the config file that was loaded, or empty if none.
func ConfigFile() string {
	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		return ""
	}
	return v.ConfigFileUsed()
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	// Add config paths in order of precedence
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		v.AddConfigPath(filepath.Join(xdgConfig, "envprep"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "envprep"))
	}

	return v
}

// ParseLogLevel converts a level name to a slog.Level.
// An empty name means warn.
func ParseLogLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
