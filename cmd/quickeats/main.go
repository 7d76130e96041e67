package main

import (
	"context"

	"quickeats/config"
	"quickeats/internal/delivery"
	"quickeats/internal/delivery/api"
	"quickeats/internal/delivery/api/middleware"
	"quickeats/internal/delivery/api/router/handler"
	"quickeats/internal/domain/service"
	"quickeats/internal/infra/auth"
	"quickeats/internal/infra/distance"
	logs "quickeats/internal/infra/log"
	"quickeats/internal/infra/metrics"
	"quickeats/internal/infra/notification"
	"quickeats/internal/infra/persistence/postgres"
	"quickeats/internal/infra/pubsub"
	"quickeats/internal/infra/sms"
	"quickeats/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(delivery.ServeAll),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		fx.Annotate(
			metrics.New,
			fx.As(new(service.SettlementMetrics)),
			fx.As(new(service.DistanceMetrics)),
			fx.As(new(service.DispatchMetrics)),
			fx.As(new(delivery.MetricsHandler)),
			fx.As(new(postgres.PoolStatsRegistrar)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCustomerRepository,
			postgres.NewOTPRepository,
			postgres.NewShopRepository,
			postgres.NewCategoryRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewDeliveryFeeRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			sms.NewClickSendService,
			distance.NewDistanceService,
			pubsub.NewEventPublisher,
			fx.Annotate(
				notification.NewDispatcher,
				fx.As(new(service.OrderNotifier)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCustomerService,
			impl.NewCatalogService,
			impl.NewDeliveryFeeService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCustomerHandler,
			handler.NewShopHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}
