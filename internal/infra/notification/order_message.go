// Package notification delivers order events to shops as push notifications.
package notification

import (
	"strconv"

	"quickeats/internal/domain/service"
)

const (
	orderCreatedTitle = "New Order Received"
	orderCreatedBody  = "You have a new order to process!"
	orderCreatedType  = "new_order"
)

// NewOrderCreatedMessage builds the push shown to a shop for a new order.
func NewOrderCreatedMessage(event *service.OrderCreatedEvent, clickAction string) *service.PushMessage {
	data := map[string]string{
		"orderId": strconv.FormatInt(event.OrderID, 10),
		"type":    orderCreatedType,
	}
	if clickAction != "" {
		data["click_action"] = clickAction
	}

	return &service.PushMessage{
		Token: event.ShopPushToken,
		Title: orderCreatedTitle,
		Body:  orderCreatedBody,
		Data:  data,
	}
}
