package distance

import (
	"log/slog"
	"net/http"

	"quickeats/config"
	"quickeats/internal/domain/constants"
	"quickeats/internal/domain/service"
	"quickeats/internal/errors"

	"go.uber.org/fx"
)

// ServiceParams defines dependencies for the distance service provider.
type ServiceParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics service.DistanceMetrics
}

// NewDistanceService selects the provider named by distance.provider and wraps
// it with the configured timeout and latency metrics.
func NewDistanceService(params ServiceParams) (service.DistanceService, error) {
	cfg := params.Config.Distance
	if cfg == nil {
		return nil, errors.New("distance config is required")
	}

	var provider service.DistanceService
	switch cfg.Provider {
	case constants.DistanceProviderGoogle, "":
		if cfg.APIKey == "" {
			return nil, errors.New("distance.apiKey is required for the google provider")
		}
		provider = NewGoogleMatrixService(cfg.BaseURL, cfg.APIKey, &http.Client{})
	case constants.DistanceProviderHaversine:
		provider = NewHaversineService(cfg.DefaultSpeedKmh)
	default:
		return nil, errors.Errorf("unknown distance provider %q", cfg.Provider)
	}

	params.Logger.Info("Distance provider configured", slog.String("provider", provider.Name()))

	return NewInstrumentedService(provider, cfg.Timeout, params.Metrics, params.Logger), nil
}
