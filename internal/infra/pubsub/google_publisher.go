package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	deliverycontext "quickeats/internal/delivery/context"
	"quickeats/internal/domain/service"
	"quickeats/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// cloudPublisher sends order events to a Cloud Pub/Sub topic that the
// notifier subscribes to with a push subscription.
type cloudPublisher struct {
	client *pubsub.Client
	topic  *pubsub.Publisher
	logger *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID
// does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	name := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: name}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "look up topic %s", name)
	}

	return &cloudPublisher{client: client, topic: client.Publisher(topicID), logger: logger}, nil
}

// PublishOrderCreated blocks until Pub/Sub acknowledges the message.
func (p *cloudPublisher) PublishOrderCreated(ctx context.Context, event *service.OrderCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode order event")
	}

	msgID, err := p.topic.Publish(ctx, &pubsub.Message{Data: data, Attributes: eventAttributes(event)}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish order %d", event.OrderID)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).DebugContext(ctx, "Order event published",
		slog.Int64("order_id", event.OrderID),
		slog.String("message_id", msgID),
	)

	return nil
}

func (p *cloudPublisher) Close() error {
	p.topic.Stop()

	return errors.WithStack(p.client.Close())
}

// eventAttributes lets subscriptions filter on shop and trace by request.
func eventAttributes(event *service.OrderCreatedEvent) map[string]string {
	attrs := map[string]string{
		"event_id": event.EventID,
		"order_id": strconv.FormatInt(event.OrderID, 10),
		"shop_id":  strconv.FormatInt(event.ShopID, 10),
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	return attrs
}
