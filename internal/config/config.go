// Package config provides configuration management for the Showroom
// application. It supports loading configuration from YAML files and
// environment variables, with validation and sensible defaults. The package
// follows XDG Base Directory specification for locating configuration files.
package config

import (
	"path/filepath"
	"time"
)

// Config represents the application configuration.
// Configuration values can be set via YAML file or environment variables,
// with environment variables taking precedence.
type Config struct {
	// General settings
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
	Verbose  bool   `yaml:"verbose"`
	Quiet    bool   `yaml:"quiet"`
	NoColor  bool   `yaml:"no_color"`

	// Directories
	ConfigDir string `yaml:"config_dir"`
	CacheDir  string `yaml:"cache_dir"`

	// Dealer gateway
	GatewayURL  string `yaml:"gateway_url"`  // base URL the kiosk calls
	GatewayAddr string `yaml:"gateway_addr"` // bind address for the serve command
	Offline     bool   `yaml:"offline"`      // skip the gateway, use the local cache only

	// Kiosk presentation
	DealerName string `yaml:"dealer_name"`
	Theme      string `yaml:"theme"`

	// Timeouts
	InventoryTimeout time.Duration `yaml:"inventory_timeout"`
	DealerTimeout    time.Duration `yaml:"dealer_timeout"`
}

// ConfigPath returns the path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.ConfigDir, "config.yaml")
}

// InventoryDBPath returns the path to the local inventory cache database.
func (c *Config) InventoryDBPath() string {
	return filepath.Join(c.CacheDir, "inventory.db")
}

// CachePath returns a path within the cache directory.
func (c *Config) CachePath(name string) string {
	return filepath.Join(c.CacheDir, name)
}

// IsVerbose returns true if verbose output is enabled and quiet is not.
func (c *Config) IsVerbose() bool {
	return c.Verbose && !c.Quiet
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
