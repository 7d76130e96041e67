package repository

import (
	"context"

	"quickeats/internal/domain/entity"
)

// OrderRepository defines order persistence. Writes are only issued through a
// transaction-bound instance obtained from RepositoryFactory.
type OrderRepository interface {
	// CreateOrder inserts the order and fills in its ID and CreatedAt.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// CreateOrderLines inserts all lines of one order in a single statement.
	CreateOrderLines(ctx context.Context, lines []*entity.OrderLine) error

	// FindOrdersByCustomer lists a customer's orders, newest first, with lines,
	// products and variants loaded.
	FindOrdersByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error)

	// SearchOrdersByCustomer lists a customer's orders having a line whose product
	// or variant name contains text, case-insensitively.
	SearchOrdersByCustomer(ctx context.Context, customerID int64, text string) ([]*entity.Order, error)
}
