package usecase

import (
	"context"
	"fmt"
	"strings"

	"quickeats/internal/domain/entity"
	domainerrors "quickeats/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// OrderLineInput is one cart entry.
type OrderLineInput struct {
	ProductID int64
	VariantID *int64
	Quantity  int
}

// PlaceOrderInput defines a checkout request.
type PlaceOrderInput struct {
	ShopID              int64
	PromotionID         *int64
	TipAmount           *decimal.Decimal
	Status              entity.OrderStatus // Accepted for compatibility; orders always start PLACED.
	PaymentType         entity.PaymentType
	Address             string
	DriverNote          *string
	StreetOrApartmentNo *string
	DeliveryInstruction *string
	SpatialInstruction  *string
	Latitude            float64
	Longitude           float64
	Lines               []OrderLineInput
}

// Validate reports every invalid field at once.
func (in *PlaceOrderInput) Validate() error {
	var fields []domainerrors.FieldError
	add := func(field, message string) {
		fields = append(fields, domainerrors.FieldError{Field: field, Message: message})
	}

	if in.ShopID < 1 {
		add("shop_id", "shop_id must be a positive integer")
	}
	if len(in.Lines) == 0 {
		add("product", "product must contain at least one item")
	}
	for i, line := range in.Lines {
		if line.ProductID < 1 {
			add(fmt.Sprintf("product[%d].id", i), "id must be a positive integer")
		}
		if line.Quantity < 1 {
			add(fmt.Sprintf("product[%d].quantity", i), "quantity must be at least 1")
		}
		if line.VariantID != nil && *line.VariantID < 1 {
			add(fmt.Sprintf("product[%d].variantId", i), "variantId must be a positive integer")
		}
	}
	if !in.PaymentType.IsValid() {
		add("type", "type must be one of COD, CARD")
	}
	if !in.Status.IsValid() {
		add("status", "status is not a valid order status")
	}
	if strings.TrimSpace(in.Address) == "" {
		add("address", "address is required")
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		add("latitude", "latitude must be between -90 and 90")
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		add("longitude", "longitude must be between -180 and 180")
	}
	if in.TipAmount != nil && in.TipAmount.IsNegative() {
		add("tip_amount", "tip_amount must not be negative")
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}

// OrderUsecase defines checkout and order history.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, customerID int64, input *PlaceOrderInput) (*entity.Order, error)
	ListOrders(ctx context.Context, customerID int64) ([]*entity.Order, error)
	SearchOrders(ctx context.Context, customerID int64, text string) ([]*entity.Order, error)
}
