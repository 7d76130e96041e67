package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrInvalidPushToken is returned when the device token is unknown to the gateway.
// Retrying such a send never succeeds.
var ErrInvalidPushToken = errors.New("invalid or unregistered push token")

// PushMessage is a single push notification.
type PushMessage struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendSingleNotification sends one push message.
	SendSingleNotification(ctx context.Context, msg *PushMessage) error
}
