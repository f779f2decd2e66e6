// Package gateway is the dealer-side HTTP service the kiosks talk to. It
// fronts the store's inventory snapshot, VIN decoding, trade-in valuation
// and appraisal booking. In a real store it would proxy the DMS; here it
// serves from the local inventory database and a valuation table.
package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/crestline/showroom/internal/config"
	"github.com/crestline/showroom/internal/errors"
	"github.com/crestline/showroom/internal/inventory"
	"github.com/crestline/showroom/internal/logging"
)

// Server wraps the echo instance and its bind address.
type Server struct {
	echo   *echo.Echo
	addr   string
	logger logging.Logger
}

// New assembles the gateway with its routes and dependencies.
func New(cfg *config.Config, logger logging.Logger, store *inventory.Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))

	h := &Handler{
		store:  store,
		valuer: NewValuer(),
		book:   NewAppraisalBook(),
		logger: logger,
		dealer: cfg.DealerName,
	}

	registerRoutes(e, h, estimateRateLimiter())

	return &Server{echo: e, addr: cfg.GatewayAddr, logger: logger}
}

// Start serves until Shutdown or a listener error.
func (s *Server) Start() error {
	s.logger.Info("dealer gateway listening", "addr", s.addr)
	if err := s.echo.Start(s.addr); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(errors.Network, "gateway server failed", err).
			WithOp("gateway.Start")
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func registerRoutes(e *echo.Echo, h *Handler, estimateLimiter echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")
	api.GET("/inventory", h.ListInventory)
	api.GET("/vin/:vin", h.DecodeVIN)

	trade := api.Group("/tradein", estimateLimiter)
	trade.POST("/estimate", h.Estimate)

	api.POST("/appraisals", h.CreateAppraisal, estimateLimiter)
}

// estimateRateLimiter bounds valuation traffic per kiosk IP. Walk-ups move
// slowly; anything faster is a stuck client in a retry loop.
func estimateRateLimiter() echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(1),
		Burst:     10,
		ExpiresIn: time.Minute,
	})
	return middleware.RateLimiter(store)
}

func requestLogger(logger logging.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			args := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				args = append(args, "error", v.Error)
				logger.Error("request failed", args...)
				return nil
			}
			logger.Info("request completed", args...)
			return nil
		},
	})
}
