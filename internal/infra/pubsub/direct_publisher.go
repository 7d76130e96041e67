package pubsub

import (
	"context"
	"log/slog"

	"quickeats/internal/domain/service"
	"quickeats/internal/errors"
	"quickeats/internal/infra/notification"
)

// directPublisher sends the shop push in-process, skipping the worker.
type directPublisher struct {
	notifier    service.NotificationService
	clickAction string
	metrics     service.DispatchMetrics
	logger      *slog.Logger
}

// NewDirectPublisher creates a publisher that calls FCM itself.
func NewDirectPublisher(notifier service.NotificationService, clickAction string, metrics service.DispatchMetrics, logger *slog.Logger) service.EventPublisher {
	return &directPublisher{
		notifier:    notifier,
		clickAction: clickAction,
		metrics:     metrics,
		logger:      logger,
	}
}

func (p *directPublisher) PublishOrderCreated(ctx context.Context, event *service.OrderCreatedEvent) error {
	if event.ShopPushToken == "" {
		p.logger.DebugContext(ctx, "[DirectPush] Shop has no push token, skipping", slog.Int64("order_id", event.OrderID))
		p.record(service.PushOutcomeSkipped)

		return nil
	}

	err := p.notifier.SendSingleNotification(ctx, notification.NewOrderCreatedMessage(event, p.clickAction))
	switch {
	case err == nil:
		p.record(service.PushOutcomeSent)
	case errors.Is(err, service.ErrInvalidPushToken):
		p.record(service.PushOutcomeInvalidToken)
	default:
		p.record(service.PushOutcomeFailed)
	}

	return err
}

func (p *directPublisher) record(outcome string) {
	if p.metrics != nil {
		p.metrics.PushSent(outcome)
	}
}

func (p *directPublisher) Close() error {
	return nil
}
