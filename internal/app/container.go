// Package app provides application initialization, lifecycle management,
// and dependency injection for the Showroom kiosk and its gateway.
package app

import (
	"sync"

	"github.com/crestline/showroom/internal/config"
	"github.com/crestline/showroom/internal/errors"
	"github.com/crestline/showroom/internal/inventory"
	"github.com/crestline/showroom/internal/logging"
	"github.com/crestline/showroom/internal/tradein"
	"github.com/crestline/showroom/internal/ui"
)

// Container holds all application dependencies.
// It provides thread-safe access to shared components and ensures
// proper initialization order during application startup.
type Container struct {
	mu      sync.RWMutex
	Config  *config.Config
	Logger  logging.Logger
	Gateway ui.DealerGateway
	Store   *inventory.Store
	Counter *inventory.Counter
	Camera  tradein.Camera
}

// NewContainer creates a new dependency container.
func NewContainer() *Container {
	return &Container{}
}

// SetConfig sets the configuration.
func (c *Container) SetConfig(cfg *config.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Config = cfg
}

// SetLogger sets the logger.
func (c *Container) SetLogger(l logging.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Logger = l
}

// SetGateway sets the dealer gateway the kiosk talks to.
func (c *Container) SetGateway(g ui.DealerGateway) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Gateway = g
}

// SetStore sets the local inventory cache.
func (c *Container) SetStore(s *inventory.Store) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Store = s
}

// SetCounter sets the inventory counter.
func (c *Container) SetCounter(ct *inventory.Counter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Counter = ct
}

// SetCamera sets the kiosk camera.
func (c *Container) SetCamera(cam tradein.Camera) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Camera = cam
}

// GetConfig returns the configuration.
func (c *Container) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Config
}

// GetLogger returns the logger.
func (c *Container) GetLogger() logging.Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Logger
}

// GetGateway returns the dealer gateway.
func (c *Container) GetGateway() ui.DealerGateway {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Gateway
}

// GetStore returns the local inventory cache.
func (c *Container) GetStore() *inventory.Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Store
}

// GetCounter returns the inventory counter.
func (c *Container) GetCounter() *inventory.Counter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Counter
}

// GetCamera returns the kiosk camera.
func (c *Container) GetCamera() tradein.Camera {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Camera
}

// Validate checks that all required dependencies are set.
// Returns an error if any required dependency is missing.
// Note: the gateway, store, counter and camera are optional at startup.
func (c *Container) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Config == nil {
		return errors.New(errors.Configuration, "config not initialized")
	}
	if c.Logger == nil {
		return errors.New(errors.Configuration, "logger not initialized")
	}
	return nil
}
