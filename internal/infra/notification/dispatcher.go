package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"quickeats/config"
	deliverycontext "quickeats/internal/delivery/context"
	"quickeats/internal/domain/service"
	"quickeats/internal/errors"

	"github.com/jpillora/backoff"
	"go.uber.org/fx"
)

const (
	defaultQueueSize      = 256
	defaultPublishTimeout = 10 * time.Second
	maxPublishAttempts    = 3
)

type queuedEvent struct {
	ctx   context.Context
	event *service.OrderCreatedEvent
}

// Dispatcher hands order events to the EventPublisher from a single goroutine.
// Enqueueing never blocks: when the queue is full the event is dropped.
type Dispatcher struct {
	publisher      service.EventPublisher
	metrics        service.DispatchMetrics
	logger         *slog.Logger
	publishTimeout time.Duration
	retryMin       time.Duration
	retryMax       time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan queuedEvent
	done   chan struct{}
}

// DispatcherParams defines dependencies for the dispatcher.
type DispatcherParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Publisher service.EventPublisher
	Metrics   service.DispatchMetrics
}

// NewDispatcher creates the dispatcher and binds its worker to the fx lifecycle.
func NewDispatcher(params DispatcherParams) *Dispatcher {
	size := defaultQueueSize
	if params.Config.Notification != nil && params.Config.Notification.QueueSize > 0 {
		size = params.Config.Notification.QueueSize
	}

	d := newDispatcher(params.Publisher, params.Metrics, params.Logger, size)

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})

	return d
}

func newDispatcher(publisher service.EventPublisher, metrics service.DispatchMetrics, logger *slog.Logger, size int) *Dispatcher {
	return &Dispatcher{
		publisher:      publisher,
		metrics:        metrics,
		logger:         logger,
		publishTimeout: defaultPublishTimeout,
		retryMin:       200 * time.Millisecond,
		retryMax:       2 * time.Second,
		queue:          make(chan queuedEvent, size),
		done:           make(chan struct{}),
	}
}

// Start launches the worker goroutine.
func (d *Dispatcher) Start() {
	go d.run()
}

// Stop refuses new events and waits until the queued ones are published or
// ctx expires.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "notification queue not drained")
	}
}

// NotifyOrderCreated enqueues event without blocking.
func (d *Dispatcher) NotifyOrderCreated(ctx context.Context, event *service.OrderCreatedEvent) bool {
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		logger.Warn("Notification dispatcher stopped, dropping event", slog.Int64("order_id", event.OrderID))

		return false
	}

	select {
	case d.queue <- queuedEvent{ctx: context.WithoutCancel(ctx), event: event}:
		return true
	default:
		if d.metrics != nil {
			d.metrics.NotificationDropped()
		}
		logger.Warn("Notification queue full, dropping event",
			slog.Int64("order_id", event.OrderID),
			slog.Int("queue_size", cap(d.queue)),
		)

		return false
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for item := range d.queue {
		d.publish(item)
	}
}

func (d *Dispatcher) publish(item queuedEvent) {
	logger := deliverycontext.GetLoggerOrDefault(item.ctx, d.logger)
	retry := &backoff.Backoff{Min: d.retryMin, Max: d.retryMax, Factor: 2, Jitter: true}

	ctx, cancel := context.WithTimeout(item.ctx, d.publishTimeout)
	defer cancel()

	for attempt := 1; ; attempt++ {
		err := d.publisher.PublishOrderCreated(ctx, item.event)
		if err == nil {
			return
		}

		permanent := errors.Is(err, service.ErrInvalidPushToken)
		if permanent || attempt >= maxPublishAttempts {
			logger.Error("Failed to publish order event",
				slog.Int64("order_id", item.event.OrderID),
				slog.Int("attempts", attempt),
				slog.Bool("permanent", permanent),
				slog.Any("error", err),
			)

			return
		}

		wait := retry.Duration()
		logger.Warn("Publishing order event failed, retrying",
			slog.Int64("order_id", item.event.OrderID),
			slog.Int("attempt", attempt),
			slog.Duration("retry_in", wait),
			slog.Any("error", err),
		)

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			logger.Error("Gave up publishing order event",
				slog.Int64("order_id", item.event.OrderID),
				slog.Any("error", ctx.Err()),
			)

			return
		}
	}
}
