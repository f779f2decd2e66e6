package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/crestline/showroom/internal/errors"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation: %s: %s", e.Field, e.Message)
}

// Validator validates configuration.
type Validator struct {
	validLogLevels map[string]bool
}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{
		validLogLevels: map[string]bool{
			"debug": true,
			"info":  true,
			"warn":  true,
			"error": true,
		},
	}
}

// Validate validates the configuration and returns all errors.
// This allows collecting all validation errors at once rather than
// failing on the first error.
func (v *Validator) Validate(cfg *Config) []error {
	var errs []error

	if !v.validLogLevels[strings.ToLower(cfg.LogLevel)] {
		errs = append(errs, &ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("invalid log level %q: must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	if cfg.InventoryTimeout <= 0 {
		errs = append(errs, &ValidationError{
			Field:   "inventory_timeout",
			Message: "inventory timeout must be positive",
		})
	}
	if cfg.DealerTimeout <= 0 {
		errs = append(errs, &ValidationError{
			Field:   "dealer_timeout",
			Message: "dealer timeout must be positive",
		})
	}

	if cfg.Verbose && cfg.Quiet {
		errs = append(errs, &ValidationError{
			Field:   "verbose/quiet",
			Message: "verbose and quiet cannot both be true",
		})
	}

	// An online kiosk needs somewhere to send dealer calls.
	if !cfg.Offline {
		if cfg.GatewayURL == "" {
			errs = append(errs, &ValidationError{
				Field:   "gateway_url",
				Message: "gateway URL cannot be empty unless offline mode is enabled",
			})
		} else if u, err := url.Parse(cfg.GatewayURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, &ValidationError{
				Field:   "gateway_url",
				Message: fmt.Sprintf("invalid gateway URL: %s", cfg.GatewayURL),
			})
		}
	}

	if cfg.GatewayAddr == "" {
		errs = append(errs, &ValidationError{
			Field:   "gateway_addr",
			Message: "gateway bind address cannot be empty",
		})
	}

	if cfg.ConfigDir == "" {
		errs = append(errs, &ValidationError{
			Field:   "config_dir",
			Message: "config directory cannot be empty",
		})
	}
	if cfg.CacheDir == "" {
		errs = append(errs, &ValidationError{
			Field:   "cache_dir",
			Message: "cache directory cannot be empty",
		})
	}

	return errs
}

// ValidateOrError validates and returns a single wrapped error.
// If there are no validation errors, nil is returned.
func (v *Validator) ValidateOrError(cfg *Config) error {
	errs := v.Validate(cfg)
	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}

	return errors.New(errors.Configuration, strings.Join(msgs, "; ")).
		WithOp("config.Validate")
}

// IsValid returns true if the configuration is valid.
func (v *Validator) IsValid(cfg *Config) bool {
	return len(v.Validate(cfg)) == 0
}
