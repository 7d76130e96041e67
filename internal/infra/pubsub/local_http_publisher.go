package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "quickeats/internal/delivery/context"
	"quickeats/internal/domain/service"
	"quickeats/internal/errors"
)

const (
	localSubscription = "projects/local/subscriptions/order-events-sub"
	localPostTimeout  = 10 * time.Second
)

// PushEnvelope mirrors the JSON body Pub/Sub delivers to push subscribers.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func newPushEnvelope(event *service.OrderCreatedEvent, publishedAt time.Time) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode order event")
	}

	env := &PushEnvelope{Subscription: localSubscription}
	env.Message.Data = base64.StdEncoding.EncodeToString(data)
	env.Message.Attributes = eventAttributes(event)
	env.Message.MessageID = event.EventID
	env.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return env, nil
}

// localHTTPPublisher stands in for Pub/Sub during development by posting
// push envelopes straight to the notifier.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher posts order events to a notifier push endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPostTimeout},
		logger:   logger,
	}
}

func (p *localHTTPPublisher) PublishOrderCreated(ctx context.Context, event *service.OrderCreatedEvent) error {
	env, err := newPushEnvelope(event, time.Now())
	if err != nil {
		return err
	}
	body, err := json.Marshal(env)
	if err != nil {
		return errors.Wrap(err, "encode push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "post order %d to notifier", event.OrderID)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("notifier answered %d for order %d", resp.StatusCode, event.OrderID)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).DebugContext(ctx, "Order event posted to notifier",
		slog.Int64("order_id", event.OrderID),
		slog.String("endpoint", p.endpoint),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
