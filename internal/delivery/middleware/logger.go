package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"quickeats/config"
	deliverycontext "quickeats/internal/delivery/context"
	domainerrors "quickeats/internal/domain/errors"
	"quickeats/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one line per request. Outside debug mode only
// failed requests are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{logger: logger, debug: cfg.Env.Debug}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err == nil && !m.debug && c.Response().Status < http.StatusInternalServerError {
			return err
		}

		req := c.Request()
		status := responseStatus(c, err)
		attrs := []slog.Attr{
			slog.String("request_id", deliverycontext.GetRequestID(c)),
			slog.String("method", req.Method),
			slog.String("uri", req.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("remote_ip", c.RealIP()),
			slog.String("user_agent", req.UserAgent()),
		}
		if customerID, ok := deliverycontext.GetCustomerID(c); ok {
			attrs = append(attrs, slog.Int64("customer_id", customerID))
		}
		if req.URL.RawQuery != "" {
			attrs = append(attrs, slog.String("query", req.URL.RawQuery))
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
		}

		m.logger.LogAttrs(req.Context(), levelFor(status), "HTTP request", attrs...)

		return err
	}
}

// responseStatus predicts the status the error handler will render, since
// it runs after this middleware returns.
func responseStatus(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
