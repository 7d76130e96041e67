// Package pubsub publishes order events to the notification worker.
package pubsub

import (
	"context"
	"log/slog"

	"quickeats/config"
	"quickeats/internal/domain/constants"
	"quickeats/internal/domain/service"
	"quickeats/internal/errors"
	"quickeats/internal/infra/notification"

	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishOrderCreated(ctx context.Context, event *service.OrderCreatedEvent) error {
	p.logger.DebugContext(ctx, "Event publishing disabled", slog.Int64("order_id", event.OrderID))

	return nil
}

func (p *noopPublisher) Close() error { return nil }

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Metrics service.DispatchMetrics
}

// NewEventPublisher selects the publisher named by pubsub.provider and
// closes it when the app stops.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Pub/Sub not configured, order events are dropped")

		return &noopPublisher{logger: params.Logger}, nil
	}

	publisher, err := buildPublisher(params, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "pubsub provider %q", cfg.Provider)
	}
	params.Logger.Info("Order event publisher ready", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return publisher.Close() },
	})

	return publisher, nil
}

func buildPublisher(params PublisherParams, cfg *config.PubSubConfig) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("localEndpoint is required")
		}

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, params.Logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("projectId and topicId are required")
		}

		return NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, params.Logger)

	case constants.PubSubProviderDirect:
		if params.Config.Firebase == nil {
			return nil, errors.New("firebase config is required")
		}
		fcm, err := notification.NewFirebaseService(params.Ctx, params.Config.Firebase.CredentialsPath)
		if err != nil {
			return nil, err
		}
		var clickAction string
		if params.Config.Notification != nil {
			clickAction = params.Config.Notification.ClickAction
		}

		return NewDirectPublisher(fcm, clickAction, params.Metrics, params.Logger), nil

	default:
		return nil, errors.New("unknown provider")
	}
}
