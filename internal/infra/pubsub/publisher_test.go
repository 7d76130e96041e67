package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quickeats/internal/domain/service"
	"quickeats/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.OrderCreatedEvent {
	return &service.OrderCreatedEvent{
		EventID:       "evt-1",
		RequestID:     "req-1",
		OrderID:       42,
		ShopID:        7,
		ShopPushToken: "shop-token",
		TotalPrice:    "470.00",
		PlacedAt:      time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PostsPushMessage(t *testing.T) {
	var received PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, discardLogger()).PublishOrderCreated(context.Background(), testEvent())
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "42", received.Message.Attributes["order_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.OrderCreatedEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *testEvent(), decoded)
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, discardLogger()).PublishOrderCreated(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

type fakeNotificationService struct {
	sent []*service.PushMessage
	err  error
}

func (f *fakeNotificationService) SendSingleNotification(_ context.Context, msg *service.PushMessage) error {
	f.sent = append(f.sent, msg)

	return f.err
}

type outcomeRecorder struct {
	outcomes []string
}

func (r *outcomeRecorder) NotificationDropped() {}

func (r *outcomeRecorder) PushSent(outcome string) {
	r.outcomes = append(r.outcomes, outcome)
}

func TestDirectPublisher(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		sendErr     error
		wantSent    int
		wantOutcome string
		wantErr     bool
	}{
		{name: "sent", token: "shop-token", wantSent: 1, wantOutcome: service.PushOutcomeSent},
		{name: "no token", token: "", wantSent: 0, wantOutcome: service.PushOutcomeSkipped},
		{name: "invalid token", token: "stale", sendErr: errors.Wrap(service.ErrInvalidPushToken, "unregistered"), wantSent: 1, wantOutcome: service.PushOutcomeInvalidToken, wantErr: true},
		{name: "gateway error", token: "shop-token", sendErr: errors.New("unavailable"), wantSent: 1, wantOutcome: service.PushOutcomeFailed, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &fakeNotificationService{err: tt.sendErr}
			recorder := &outcomeRecorder{}
			publisher := NewDirectPublisher(notifier, "FLUTTER_NOTIFICATION_CLICK", recorder, discardLogger())

			event := testEvent()
			event.ShopPushToken = tt.token
			err := publisher.PublishOrderCreated(context.Background(), event)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, notifier.sent, tt.wantSent)
			assert.Equal(t, []string{tt.wantOutcome}, recorder.outcomes)
		})
	}
}
