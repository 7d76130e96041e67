package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPlaced       OrderStatus = "PLACED"
	OrderStatusShopAccept   OrderStatus = "SHOP_ACCEPT"
	OrderStatusProcessDone  OrderStatus = "PROCESS_DONE"
	OrderStatusDriverPickup OrderStatus = "DRIVER_PICKUP"
	OrderStatusDelivered    OrderStatus = "DELIVERED"
	OrderStatusReturn       OrderStatus = "RETURN"
)

// IsValid reports whether s is a known status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusShopAccept, OrderStatusProcessDone,
		OrderStatusDriverPickup, OrderStatusDelivered, OrderStatusReturn:
		return true
	}

	return false
}

// PaymentType is how the customer pays for an order.
type PaymentType string

const (
	PaymentTypeCOD  PaymentType = "COD"
	PaymentTypeCard PaymentType = "CARD"
)

// IsValid reports whether p is a supported payment type.
func (p PaymentType) IsValid() bool {
	return p == PaymentTypeCOD || p == PaymentTypeCard
}

// Order is a customer's checkout at one shop. It is created exactly once,
// together with its lines, income and shop wallet rows.
type Order struct {
	ID                  int64           `json:"id"`
	CustomerID          int64           `json:"customer_id"`
	ShopID              int64           `json:"shop_id"`
	PromotionID         *int64          `json:"promotion_id"`
	TotalPrice          decimal.Decimal `json:"total_price"` // Line subtotal plus delivery fee.
	DeliveryFee         decimal.Decimal `json:"delivery_fee"`
	TipAmount           decimal.Decimal `json:"tip_amount"`
	Status              OrderStatus     `json:"status"`
	PaymentType         PaymentType     `json:"type"`
	Address             string          `json:"address"`
	DriverNote          *string         `json:"driver_note"`
	StreetOrApartmentNo *string         `json:"street_or_apartment_no"`
	DeliveryInstruction *string         `json:"delivery_instruction"`
	SpatialInstruction  *string         `json:"spatial_instruction"`
	Latitude            float64         `json:"latitude"`
	Longitude           float64         `json:"longitude"`
	DeliveryTime        time.Time       `json:"delivery_time"`
	CreatedAt           time.Time       `json:"created_at"`
	Lines               []*OrderLine    `json:"order_product,omitempty"`
}

// OrderLine is one product (and optional variant) within an order.
// Price is the unit price captured at placement and is never recomputed.
type OrderLine struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	VariantID *int64          `json:"product_variant_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Product   *Product        `json:"product,omitempty"`
	Variant   *ProductVariant `json:"product_variant,omitempty"`
}

// Subtotal is the unit price multiplied by quantity.
func (l *OrderLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
