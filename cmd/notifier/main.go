package main

import (
	"context"

	"quickeats/config"
	"quickeats/internal/delivery"
	"quickeats/internal/delivery/worker"
	"quickeats/internal/delivery/worker/handler"
	"quickeats/internal/domain/service"
	"quickeats/internal/errors"
	logs "quickeats/internal/infra/log"
	"quickeats/internal/infra/metrics"
	"quickeats/internal/infra/notification"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(delivery.ServeAll),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		fx.Annotate(
			metrics.New,
			fx.As(new(service.DispatchMetrics)),
			fx.As(new(delivery.MetricsHandler)),
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newFirebaseService,
		),
	)
}

// newFirebaseService creates the FCM client the worker delivers pushes with.
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase config is required for the notifier")
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}
