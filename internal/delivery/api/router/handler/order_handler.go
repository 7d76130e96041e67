package handler

import (
	"log/slog"
	"net/http"

	"quickeats/internal/delivery/api/middleware"
	"quickeats/internal/delivery/api/response"
	"quickeats/internal/domain/entity"
	"quickeats/internal/errors"
	"quickeats/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout and order history.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderLineRequest is one cart entry.
type OrderLineRequest struct {
	ID        int64  `json:"id" validate:"required,gt=0"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
	VariantID *int64 `json:"variantId" validate:"omitempty,gt=0"`
}

// PlaceOrderRequest is the body of POST /orders.
type PlaceOrderRequest struct {
	ShopID              int64              `json:"shop_id" validate:"required,gt=0"`
	PromotionID         *int64             `json:"promotion_id"`
	Product             []OrderLineRequest `json:"product" validate:"required,min=1,dive"`
	TipAmount           *decimal.Decimal   `json:"tip_amount" validate:"omitempty,gte=0"`
	Status              string             `json:"status" validate:"required,oneof=PLACED SHOP_ACCEPT PROCESS_DONE DRIVER_PICKUP DELIVERED RETURN"`
	Type                string             `json:"type" validate:"required,oneof=COD CARD"`
	Address             string             `json:"address" validate:"required"`
	DriverNote          *string            `json:"driver_note"`
	StreetOrApartmentNo *string            `json:"street_or_apartment_no"`
	DeliveryInstruction *string            `json:"delivery_instruction"`
	SpatialInstruction  *string            `json:"spatial_instruction"`
	Latitude            *float64           `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude           *float64           `json:"longitude" validate:"required,gte=-180,lte=180"`
}

func (r *PlaceOrderRequest) toInput() *usecase.PlaceOrderInput {
	lines := make([]usecase.OrderLineInput, 0, len(r.Product))
	for _, p := range r.Product {
		lines = append(lines, usecase.OrderLineInput{
			ProductID: p.ID,
			VariantID: p.VariantID,
			Quantity:  p.Quantity,
		})
	}

	return &usecase.PlaceOrderInput{
		ShopID:              r.ShopID,
		PromotionID:         r.PromotionID,
		TipAmount:           r.TipAmount,
		Status:              entity.OrderStatus(r.Status),
		PaymentType:         entity.PaymentType(r.Type),
		Address:             r.Address,
		DriverNote:          r.DriverNote,
		StreetOrApartmentNo: r.StreetOrApartmentNo,
		DeliveryInstruction: r.DeliveryInstruction,
		SpatialInstruction:  r.SpatialInstruction,
		Latitude:            *r.Latitude,
		Longitude:           *r.Longitude,
		Lines:               lines,
	}
}

// PlaceOrder settles a cart into an order.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	customerID, err := middleware.GetCustomerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), customerID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed")
}

// ListOrders returns the customer's order history.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	customerID, err := middleware.GetCustomerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "OK")
}

// SearchOrders matches the customer's orders by ?text=.
func (h *OrderHandler) SearchOrders(c echo.Context) error {
	customerID, err := middleware.GetCustomerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	orders, err := h.orderUC.SearchOrders(c.Request().Context(), customerID, c.QueryParam("text"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "OK")
}
