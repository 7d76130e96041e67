package api

import (
	"log/slog"
	"net/http"

	"quickeats/config"
	"quickeats/internal/delivery"
	apimiddleware "quickeats/internal/delivery/api/middleware"
	"quickeats/internal/delivery/api/router"
	"quickeats/internal/delivery/api/validator"
	deliverycontext "quickeats/internal/delivery/context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the customer-facing API.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := NewEcho(params.Cfg, params.Logger)
	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return delivery.NewHTTPServer(params.Lc, "api", params.Cfg, params.Logger, e, true), nil
}

// NewEcho returns the API echo instance without routes.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := delivery.NewEcho(cfg, logger)
	e.Use(
		echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, deliverycontext.HeaderXRequestID},
			ExposeHeaders: []string{deliverycontext.HeaderXRequestID},
		}),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}
