package config

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/crestline/showroom/internal/errors"
)

const (
	// EnvPrefix is the prefix for environment variables.
	EnvPrefix = "SHOWROOM_"
)

// Loader handles configuration loading from multiple sources.
// It loads configuration in order: defaults -> file -> environment variables,
// with later sources overriding earlier ones.
type Loader struct {
	configPath string
	envPrefix  string
}

// NewLoader creates a new configuration loader.
// If configPath is empty, only defaults and environment variables are used.
func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
		envPrefix:  EnvPrefix,
	}
}

// Load loads configuration from file and environment.
// The loading order is: defaults -> file -> environment variables.
// Returns an error if the file exists but cannot be parsed.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if l.configPath != "" {
		if err := l.loadFromFile(cfg); err != nil {
			return nil, err
		}
	}

	l.loadFromEnv(cfg)

	return cfg, nil
}

// LoadAndValidate loads configuration and validates it.
// This is a convenience method that combines Load and Validate.
func (l *Loader) LoadAndValidate() (*Config, error) {
	cfg, err := l.Load()
	if err != nil {
		return nil, err
	}

	validator := NewValidator()
	if err := validator.ValidateOrError(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile loads config from YAML file.
func (l *Loader) loadFromFile(cfg *Config) error {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, use defaults - this is not an error
			return nil
		}
		return errors.Wrap(errors.Configuration, "failed to read config file", err).
			WithOp("config.loadFromFile")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(errors.Configuration, "failed to parse config file", err).
			WithOp("config.loadFromFile")
	}

	return nil
}

// loadFromEnv loads config from environment variables.
// Environment variables take precedence over file config.
func (l *Loader) loadFromEnv(cfg *Config) {
	if v := os.Getenv(l.envPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(l.envPrefix + "LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(l.envPrefix + "VERBOSE"); v != "" {
		cfg.Verbose = parseBool(v)
	}
	if v := os.Getenv(l.envPrefix + "QUIET"); v != "" {
		cfg.Quiet = parseBool(v)
	}
	if v := os.Getenv(l.envPrefix + "NO_COLOR"); v != "" {
		cfg.NoColor = parseBool(v)
	}
	if v := os.Getenv(l.envPrefix + "CONFIG_DIR"); v != "" {
		cfg.ConfigDir = v
	}
	if v := os.Getenv(l.envPrefix + "CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv(l.envPrefix + "GATEWAY_URL"); v != "" {
		cfg.GatewayURL = v
	}
	if v := os.Getenv(l.envPrefix + "GATEWAY_ADDR"); v != "" {
		cfg.GatewayAddr = v
	}
	if v := os.Getenv(l.envPrefix + "OFFLINE"); v != "" {
		cfg.Offline = parseBool(v)
	}
	if v := os.Getenv(l.envPrefix + "DEALER_NAME"); v != "" {
		cfg.DealerName = v
	}
	if v := os.Getenv(l.envPrefix + "THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv(l.envPrefix + "INVENTORY_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.InventoryTimeout = d
		}
	}
	if v := os.Getenv(l.envPrefix + "DEALER_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.DealerTimeout = d
		}
	}
}

// parseBool parses a string as a boolean value.
// Accepts: true, 1, yes, on (case-insensitive) as true.
// All other values are treated as false.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// LoadDefaultConfig loads configuration from the default location.
// It looks for config.yaml in the XDG config directory.
func LoadDefaultConfig() (*Config, error) {
	configPath := DefaultConfig().ConfigPath()
	loader := NewLoader(configPath)
	return loader.Load()
}
