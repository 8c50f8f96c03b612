// Package config provides configuration management for zedkit using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/zedkit/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "zedkit"

// Config represents the top-level configuration structure.
type Config struct {
	Version int          `mapstructure:"version" yaml:"version"`
	Search  SearchConfig `mapstructure:"search" yaml:"search"`
	Zed     ZedConfig    `mapstructure:"zed" yaml:"zed"`
}

// SearchConfig controls how installation discovery probes the system.
type SearchConfig struct {
	// ExtraPaths are additional candidate paths probed after the
	// built-in per-OS list.
	ExtraPaths []string `mapstructure:"extra_paths" yaml:"extra_paths"`
}

// ZedConfig overrides which Zed installation zedkit launches.
type ZedConfig struct {
	// Path pins the installation used by `zedkit open`, bypassing
	// discovery and the interactive picker.
	Path string `mapstructure:"path" yaml:"path"`
}

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{Version: 1}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Clear any state left over from a previous Init/Load cycle.
	viper.Reset()

	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence). ZEDKIT_CONFIG_DIR pins the
	// search to a single directory.
	if dir := os.Getenv("ZEDKIT_CONFIG_DIR"); dir != "" {
		viper.AddConfigPath(dir)
	} else {
		viper.AddConfigPath(".") // Current directory
		viper.AddConfigPath(paths.AppConfigDir())
	}

	// Environment variable support
	viper.SetEnvPrefix("ZEDKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Defaults. Registering every key here also makes the keys visible
	// to Unmarshal when only an environment variable supplies them.
	viper.SetDefault("version", 1)
	viper.SetDefault("search.extra_paths", []string{})
	viper.SetDefault("zed.path", "")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, fmt.Errorf("validating config: %w", errors.Join(errs...))
	}

	return &cfg, nil
}
