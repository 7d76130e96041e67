package repository

import (
	"context"

	"quickeats/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDeliveryFeeConfigNotFound is returned when the delivery_fee table is empty.
var ErrDeliveryFeeConfigNotFound = errors.New("delivery fee config not found")

// SettlementRepository persists the financial records of an order.
type SettlementRepository interface {
	// CreateIncome inserts the platform income row.
	CreateIncome(ctx context.Context, income *entity.Income) error

	// CreateShopWallet inserts the shop payout row.
	CreateShopWallet(ctx context.Context, wallet *entity.ShopWallet) error
}

// DeliveryFeeRepository reads the delivery pricing singleton.
type DeliveryFeeRepository interface {
	// GetDeliveryFeeConfig returns the first delivery_fee row.
	GetDeliveryFeeConfig(ctx context.Context) (*entity.DeliveryFeeConfig, error)
}
