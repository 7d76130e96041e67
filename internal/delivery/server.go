package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"

	"quickeats/config"
	"quickeats/internal/delivery/middleware"
	"quickeats/internal/domain/lifecycle"
	"quickeats/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// NewEcho returns an echo instance with server timeouts from cfg and the
// shared chain: panic recovery, request ID, request log.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	// Request IDs must exist before the request log line is written.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
	)

	return e
}

// HTTPServer runs an echo instance until the fx app stops.
type HTTPServer struct {
	name   string
	port   int
	h2c    *http2.Server
	logger *slog.Logger
	echo   *echo.Echo
}

// NewHTTPServer wraps e and registers its graceful shutdown on lc. With h2c
// set, cleartext HTTP/2 is accepted alongside HTTP/1.1.
func NewHTTPServer(lc fx.Lifecycle, name string, cfg *config.Config, logger *slog.Logger, e *echo.Echo, h2c bool) *HTTPServer {
	s := &HTTPServer{
		name:   name,
		port:   cfg.HTTP.Port,
		logger: logger.With(slog.String("server", name)),
		echo:   e,
	}
	if h2c {
		s.h2c = &http2.Server{IdleTimeout: cfg.HTTP.Timeouts.IdleTimeout}
	}
	lc.Append(fx.Hook{OnStop: s.shutdown})

	return s
}

// Serve blocks until the server is shut down.
func (s *HTTPServer) Serve(_ context.Context) error {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("HTTP server listening", slog.String("addr", addr), slog.Bool("h2c", s.h2c != nil))

	var err error
	if s.h2c != nil {
		err = s.echo.StartH2CServer(addr, s.h2c)
	} else {
		err = s.echo.Start(addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server", s.name)
	}

	return nil
}

func (s *HTTPServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("HTTP server shutting down")

	return errors.WithStack(s.echo.Shutdown(ctx))
}

// ServeAllParams collects every transport registered in the "deliveries" group.
type ServeAllParams struct {
	fx.In
	fx.Shutdowner

	Ctx        context.Context
	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// ServeAll starts each transport in its own goroutine. The first one that
// fails stops the whole app so every OnStop hook still runs.
func ServeAll(params ServeAllParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(params.Ctx)
			if err == nil {
				return
			}
			params.Logger.Error("Server stopped unexpectedly", slog.Any("error", err))
			if err := params.Shutdown(fx.ExitCode(1)); err != nil {
				params.Logger.Error("Graceful shutdown failed", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
