package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is the platform's cut of one order.
type Income struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// ShopWallet is the shop's payout for one order.
type ShopWallet struct {
	ID        int64           `json:"id"`
	ShopID    int64           `json:"shop_id"`
	OrderID   int64           `json:"order_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// DeliveryFeeConfig holds the platform-wide delivery pricing.
type DeliveryFeeConfig struct {
	ID        int64
	BaseFee   decimal.Decimal // Flat fee per order.
	PerKm     decimal.Decimal // Rate per kilometre travelled.
	FixedTime int             // Minutes added to every ETA (preparation time).
}

// IncomeSplit divides an order's line subtotal between the platform and the shop.
type IncomeSplit struct {
	Subtotal       decimal.Decimal
	PlatformIncome decimal.Decimal
	ShopIncome     decimal.Decimal
}

// SplitIncome gives the platform commissionRate of the subtotal plus the base
// delivery fee and the shop the remainder. The delivery fee itself is not split.
// PlatformIncome is rounded to cents and ShopIncome absorbs the difference, so
// the two always sum to the subtotal.
func SplitIncome(subtotal, commissionRate, baseFee decimal.Decimal) IncomeSplit {
	platform := subtotal.Mul(commissionRate).Add(baseFee).Round(2)

	return IncomeSplit{
		Subtotal:       subtotal,
		PlatformIncome: platform,
		ShopIncome:     subtotal.Sub(platform),
	}
}
