package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// AppName is the application name used for directory paths.
	AppName = "showroom"

	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"

	// DefaultGatewayURL is where the kiosk expects the dealer gateway.
	DefaultGatewayURL = "http://127.0.0.1:8480"

	// DefaultGatewayAddr is the default bind address for the serve command.
	DefaultGatewayAddr = "127.0.0.1:8480"

	// DefaultDealerName is the showroom branding shown in the kiosk header.
	DefaultDealerName = "Crestline Chevrolet"

	// DefaultInventoryTimeout bounds the inventory count fetch.
	DefaultInventoryTimeout = 5 * time.Second

	// DefaultDealerTimeout bounds VIN decode, estimate, and appraisal calls.
	DefaultDealerTimeout = 10 * time.Second
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:         DefaultLogLevel,
		LogFile:          "",
		Verbose:          false,
		Quiet:            false,
		NoColor:          false,
		ConfigDir:        defaultConfigDir(),
		CacheDir:         defaultCacheDir(),
		GatewayURL:       DefaultGatewayURL,
		GatewayAddr:      DefaultGatewayAddr,
		Offline:          false,
		DealerName:       DefaultDealerName,
		Theme:            "crestline-dark",
		InventoryTimeout: DefaultInventoryTimeout,
		DealerTimeout:    DefaultDealerTimeout,
	}
}

// defaultConfigDir returns the XDG config directory for showroom.
// Falls back to ~/.config/showroom if XDG_CONFIG_HOME is not set.
func defaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return filepath.Join(".", ".config", AppName)
	}
	return filepath.Join(home, ".config", AppName)
}

// defaultCacheDir returns the XDG cache directory for showroom.
// Falls back to ~/.cache/showroom if XDG_CACHE_HOME is not set.
func defaultCacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".cache", AppName)
	}
	return filepath.Join(home, ".cache", AppName)
}
