package service

import (
	"context"
	"time"
)

// OrderCreatedEvent announces a freshly placed order to the shop.
type OrderCreatedEvent struct {
	EventID       string    `json:"event_id"`
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID       int64     `json:"order_id"`
	ShopID        int64     `json:"shop_id"`
	ShopPushToken string    `json:"shop_push_token"`
	TotalPrice    string    `json:"total_price"`
	PlacedAt      time.Time `json:"placed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderCreated publishes an order-created event for async processing
	PublishOrderCreated(ctx context.Context, event *OrderCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// OrderNotifier accepts order-created events without blocking the caller.
type OrderNotifier interface {
	// NotifyOrderCreated enqueues event and reports whether it was accepted.
	NotifyOrderCreated(ctx context.Context, event *OrderCreatedEvent) bool
}
