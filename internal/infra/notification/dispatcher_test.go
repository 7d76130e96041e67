package notification

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"quickeats/internal/domain/service"
	"quickeats/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	mu        sync.Mutex
	published []int64
	calls     int
	failures  []error // Returned in order before succeeding.
}

func (p *fakePublisher) PublishOrderCreated(_ context.Context, event *service.OrderCreatedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	if len(p.failures) > 0 {
		err := p.failures[0]
		p.failures = p.failures[1:]

		return err
	}
	p.published = append(p.published, event.OrderID)

	return nil
}

func (p *fakePublisher) Close() error { return nil }

func (p *fakePublisher) snapshot() ([]int64, int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]int64(nil), p.published...), p.calls
}

type countingDispatchMetrics struct {
	mu      sync.Mutex
	dropped int
}

func (m *countingDispatchMetrics) NotificationDropped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dropped++
}

func (m *countingDispatchMetrics) PushSent(string) {}

func newTestDispatcher(publisher service.EventPublisher, metrics service.DispatchMetrics, size int) *Dispatcher {
	d := newDispatcher(publisher, metrics, slog.New(slog.NewTextHandler(io.Discard, nil)), size)
	d.retryMin = time.Millisecond
	d.retryMax = 2 * time.Millisecond

	return d
}

func TestDispatcher_PublishesAndDrainsOnStop(t *testing.T) {
	publisher := &fakePublisher{}
	d := newTestDispatcher(publisher, nil, 8)

	// Queue before starting so Stop has to drain.
	for id := int64(1); id <= 3; id++ {
		require.True(t, d.NotifyOrderCreated(context.Background(), &service.OrderCreatedEvent{OrderID: id}))
	}
	d.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))

	published, _ := publisher.snapshot()
	assert.Equal(t, []int64{1, 2, 3}, published)
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	metrics := &countingDispatchMetrics{}
	d := newTestDispatcher(&fakePublisher{}, metrics, 1)

	assert.True(t, d.NotifyOrderCreated(context.Background(), &service.OrderCreatedEvent{OrderID: 1}))
	assert.False(t, d.NotifyOrderCreated(context.Background(), &service.OrderCreatedEvent{OrderID: 2}))
	assert.Equal(t, 1, metrics.dropped)
}

func TestDispatcher_RejectsAfterStop(t *testing.T) {
	d := newTestDispatcher(&fakePublisher{}, nil, 1)
	d.Start()
	require.NoError(t, d.Stop(context.Background()))

	assert.False(t, d.NotifyOrderCreated(context.Background(), &service.OrderCreatedEvent{OrderID: 1}))
	// A second stop is harmless.
	require.NoError(t, d.Stop(context.Background()))
}

func TestDispatcher_RetriesTransientFailures(t *testing.T) {
	publisher := &fakePublisher{failures: []error{errors.New("unavailable")}}
	d := newTestDispatcher(publisher, nil, 1)
	d.Start()

	require.True(t, d.NotifyOrderCreated(context.Background(), &service.OrderCreatedEvent{OrderID: 9}))
	require.NoError(t, d.Stop(context.Background()))

	published, calls := publisher.snapshot()
	assert.Equal(t, []int64{9}, published)
	assert.Equal(t, 2, calls)
}

func TestDispatcher_GivesUpAfterMaxAttempts(t *testing.T) {
	transient := errors.New("unavailable")
	publisher := &fakePublisher{failures: []error{transient, transient, transient, transient}}
	d := newTestDispatcher(publisher, nil, 1)
	d.Start()

	require.True(t, d.NotifyOrderCreated(context.Background(), &service.OrderCreatedEvent{OrderID: 9}))
	require.NoError(t, d.Stop(context.Background()))

	published, calls := publisher.snapshot()
	assert.Empty(t, published)
	assert.Equal(t, maxPublishAttempts, calls)
}

func TestDispatcher_DoesNotRetryInvalidToken(t *testing.T) {
	publisher := &fakePublisher{failures: []error{errors.Wrap(service.ErrInvalidPushToken, "unregistered")}}
	d := newTestDispatcher(publisher, nil, 1)
	d.Start()

	require.True(t, d.NotifyOrderCreated(context.Background(), &service.OrderCreatedEvent{OrderID: 9}))
	require.NoError(t, d.Stop(context.Background()))

	_, calls := publisher.snapshot()
	assert.Equal(t, 1, calls)
}

func TestDispatcher_OutlivesRequestContext(t *testing.T) {
	publisher := &fakePublisher{}
	d := newTestDispatcher(publisher, nil, 1)

	ctx, cancel := context.WithCancel(context.Background())
	require.True(t, d.NotifyOrderCreated(ctx, &service.OrderCreatedEvent{OrderID: 4}))
	cancel()

	d.Start()
	require.NoError(t, d.Stop(context.Background()))

	published, _ := publisher.snapshot()
	assert.Equal(t, []int64{4}, published)
}

func TestNewOrderCreatedMessage(t *testing.T) {
	msg := NewOrderCreatedMessage(&service.OrderCreatedEvent{OrderID: 42, ShopPushToken: "shop-token"}, "FLUTTER_NOTIFICATION_CLICK")

	assert.Equal(t, "shop-token", msg.Token)
	assert.Equal(t, "New Order Received", msg.Title)
	assert.Equal(t, "You have a new order to process!", msg.Body)
	assert.Equal(t, map[string]string{
		"orderId":      "42",
		"type":         "new_order",
		"click_action": "FLUTTER_NOTIFICATION_CLICK",
	}, msg.Data)
}
