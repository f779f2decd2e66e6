package app

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/crestline/showroom/internal/config"
	"github.com/crestline/showroom/internal/constants"
	"github.com/crestline/showroom/internal/dealer"
	"github.com/crestline/showroom/internal/errors"
	"github.com/crestline/showroom/internal/gateway"
	"github.com/crestline/showroom/internal/inventory"
	"github.com/crestline/showroom/internal/logging"
	"github.com/crestline/showroom/internal/tradein"
	"github.com/crestline/showroom/internal/ui"
)

// App represents the showroom application with its dependencies and lifecycle.
// The same App backs both the kiosk and the serve command; Initialize wires
// what each needs and RunKiosk/RunServe pick it up from the container.
type App struct {
	container *Container
	lifecycle *Lifecycle
	version   string
	buildTime string
	gitCommit string
}

// Options configures the application.
type Options struct {
	Version         string
	BuildTime       string
	GitCommit       string
	ConfigPath      string
	ShutdownTimeout time.Duration
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		Version:         "unknown",
		BuildTime:       "unknown",
		GitCommit:       "unknown",
		ShutdownTimeout: constants.GatewayShutdownTimeout,
	}
}

// New creates a new application with the given options.
func New(opts Options) *App {
	return &App{
		container: NewContainer(),
		lifecycle: NewLifecycle(opts.ShutdownTimeout),
		version:   opts.Version,
		buildTime: opts.BuildTime,
		gitCommit: opts.GitCommit,
	}
}

// Initialize sets up all application components in the correct order.
// The initialization order is:
// 1. Configuration
// 2. Logger
// 3. Inventory cache
// 4. Dealer gateway client (or the offline stand-in)
// 5. Inventory counter
// 6. Kiosk camera
func (a *App) Initialize(ctx context.Context, configPath string) error {
	cfg, err := a.loadConfig(configPath)
	if err != nil {
		return errors.Wrap(errors.Configuration, "failed to load config", err)
	}
	return a.InitializeWithConfig(ctx, cfg)
}

// InitializeWithConfig wires the application from an already loaded
// configuration. The CLI uses this after layering flag overrides on top of
// the config file.
func (a *App) InitializeWithConfig(ctx context.Context, cfg *config.Config) error {
	a.container.SetConfig(cfg)

	logger, err := a.initLogger(cfg)
	if err != nil {
		return errors.Wrap(errors.Configuration, "failed to initialize logger", err)
	}
	a.container.SetLogger(logger)

	logger.Info("starting application",
		"version", a.version,
		"build_time", a.buildTime,
		"git_commit", a.gitCommit,
		"offline", cfg.Offline,
	)

	// The kiosk still runs without a cache; counts just come back empty
	// when the gateway is also unreachable.
	store := a.initStore(cfg, logger)
	if store != nil {
		a.container.SetStore(store)
		a.lifecycle.OnShutdown(func(ctx context.Context) error {
			return store.Close()
		})
	}

	gw := a.initGateway(cfg, store, logger)
	a.container.SetGateway(gw)

	counter := inventory.NewCounter(gw,
		inventory.WithStore(store),
		inventory.WithCountTimeout(cfg.InventoryTimeout),
		inventory.WithCountLogger(logger.WithPrefix("inventory")),
	)
	a.container.SetCounter(counter)

	camera := tradein.NewFileCamera(cfg.CachePath("camera-spool"), cfg.CachePath("photos"))
	a.container.SetCamera(camera)

	if err := a.container.Validate(); err != nil {
		return err
	}

	logger.Info("application initialized successfully")
	return nil
}

// RunKiosk runs the showroom TUI until the customer quits, with panic
// recovery so a crashed session never leaves the terminal raw.
func (a *App) RunKiosk(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = a.handlePanic(r)
		}
	}()

	model := ui.NewWithContext(ctx, ui.Deps{
		Config:  a.container.GetConfig(),
		Gateway: a.container.GetGateway(),
		Counter: a.container.GetCounter(),
		Camera:  a.container.GetCamera(),
		Logger:  a.container.GetLogger().WithPrefix("ui"),
		Version: a.version,
	})
	defer model.Shutdown()

	program := tea.NewProgram(model)
	a.lifecycle.OnShutdown(func(ctx context.Context) error {
		program.Quit()
		return nil
	})

	if _, err := program.Run(); err != nil {
		return errors.Wrap(errors.Unknown, "kiosk session failed", err).
			WithOp("app.RunKiosk")
	}
	return nil
}

// RunServe runs the dealer gateway until a shutdown signal arrives. A fresh
// inventory database is seeded with the demo fleet so new installs have a
// lot to show.
func (a *App) RunServe(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = a.handlePanic(r)
		}
	}()

	cfg := a.container.GetConfig()
	logger := a.container.GetLogger()
	store := a.container.GetStore()
	if store == nil {
		return errors.New(errors.Configuration, "serve requires an inventory database").
			WithOp("app.RunServe")
	}

	if err := gateway.SeedStore(ctx, store); err != nil {
		return err
	}

	srv := gateway.New(cfg, logger.WithPrefix("gateway"), store)
	a.lifecycle.OnShutdown(func(ctx context.Context) error {
		return srv.Shutdown(ctx)
	})

	serveErr := make(chan error, 1)
	go func() {
		startErr := srv.Start()
		serveErr <- startErr
		if startErr != nil {
			_ = a.lifecycle.Shutdown()
		}
	}()

	sig := a.lifecycle.WaitForSignal()
	if sig != nil {
		logger.Info("received signal", "signal", sig.String())
	}
	if err := a.Shutdown(); err != nil {
		return err
	}

	select {
	case err := <-serveErr:
		return err
	default:
		return nil
	}
}

// Shutdown gracefully shuts down the application.
func (a *App) Shutdown() error {
	return a.lifecycle.Shutdown()
}

// Container returns the dependency container.
func (a *App) Container() *Container {
	return a.container
}

// Lifecycle returns the lifecycle manager.
func (a *App) Lifecycle() *Lifecycle {
	return a.lifecycle
}

// Version returns the application version.
func (a *App) Version() string {
	return a.version
}

// BuildTime returns the application build time.
func (a *App) BuildTime() string {
	return a.buildTime
}

// GitCommit returns the application git commit.
func (a *App) GitCommit() string {
	return a.gitCommit
}

func (a *App) loadConfig(path string) (*config.Config, error) {
	loader := config.NewLoader(path)
	return loader.Load()
}

func (a *App) initLogger(cfg *config.Config) (logging.Logger, error) {
	level := logging.ParseLevel(cfg.LogLevel)

	if cfg.LogFile != "" {
		return logging.NewFileLogger(cfg.LogFile, level)
	}

	opts := logging.DefaultOptions()
	opts.Level = level
	return logging.New(opts), nil
}

func (a *App) initStore(cfg *config.Config, logger logging.Logger) *inventory.Store {
	if cfg.CacheDir == "" {
		logger.Warn("no cache directory configured, running without inventory cache")
		return nil
	}
	if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
		logger.Warn("failed to create cache directory", "dir", cfg.CacheDir, "error", err)
		return nil
	}

	store, err := inventory.Open(cfg.InventoryDBPath(), logger.WithPrefix("inventory"))
	if err != nil {
		logger.Warn("failed to open inventory cache", "path", cfg.InventoryDBPath(), "error", err)
		return nil
	}
	return store
}

func (a *App) initGateway(cfg *config.Config, store *inventory.Store, logger logging.Logger) ui.DealerGateway {
	if cfg.Offline {
		logger.Info("offline mode, serving from the local cache")
		return newOfflineGateway(store)
	}
	return dealer.NewClient(cfg.GatewayURL,
		dealer.WithTimeout(cfg.DealerTimeout),
		dealer.WithLogger(logger.WithPrefix("dealer")),
	)
}

// handlePanic handles a recovered panic and returns an error.
// It logs the panic with a stack trace if a logger is available.
func (a *App) handlePanic(r interface{}) error {
	stack := debug.Stack()
	logger := a.container.GetLogger()

	if logger != nil {
		logger.Error("panic recovered",
			"panic", fmt.Sprintf("%v", r),
			"stack", string(stack),
		)
	} else {
		fmt.Fprintf(os.Stderr, "PANIC: %v\n%s\n", r, stack)
	}

	return errors.Newf(errors.Unknown, "panic: %v", r)
}

// RecoverPanic is a helper function that can be deferred to recover from panics.
// It logs the panic with a stack trace.
func (a *App) RecoverPanic() {
	if r := recover(); r != nil {
		_ = a.handlePanic(r)
	}
}
