package worker

import (
	"log/slog"
	"net/http"

	"quickeats/config"
	"quickeats/internal/delivery"
	"quickeats/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
	Metrics     delivery.MetricsHandler `optional:"true"`
}

// NewServer exposes the Pub/Sub push endpoint of the notifier.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := delivery.NewEcho(params.Cfg, params.Logger)
	registerRoutes(e, params.PushHandler, params.Metrics)

	return delivery.NewHTTPServer(params.Lc, "notifier", params.Cfg, params.Logger, e, false), nil
}

func registerRoutes(e *echo.Echo, push *handler.PushHandler, metrics delivery.MetricsHandler) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	}
	e.POST("/push", push.HandlePush)
}
