package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"quickeats/internal/delivery/api/response"
	domainerrors "quickeats/internal/domain/errors"
	"quickeats/internal/domain/repository"
	"quickeats/internal/errors"
	"quickeats/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	CatalogUC     usecase.CatalogUsecase
	DeliveryFeeUC usecase.DeliveryFeeUsecase
	Logger        *slog.Logger
}

// ShopHandler serves shop listings and delivery fee quotes.
type ShopHandler struct {
	catalogUC     usecase.CatalogUsecase
	deliveryFeeUC usecase.DeliveryFeeUsecase
	logger        *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler.
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		catalogUC:     params.CatalogUC,
		deliveryFeeUC: params.DeliveryFeeUC,
		logger:        params.Logger,
	}
}

// CalculateFeeRequest is the body of POST /shop/delivery/calculate-fee.
type CalculateFeeRequest struct {
	ShopID    int64    `json:"shopId" validate:"required,gt=0"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// FeeQuoteResponse is the quote as the app reads it.
type FeeQuoteResponse struct {
	DeliveryFee  float64 `json:"deliveryFee"`
	DistanceKm   float64 `json:"distanceKm"`
	EstimateTime int     `json:"estimateTime"` // Minutes.
}

// ListShops returns every shop.
func (h *ShopHandler) ListShops(c echo.Context) error {
	shops, err := h.catalogUC.ListShops(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shops, "OK")
}

// SearchShops matches shops by free text and an optional category.
func (h *ShopHandler) SearchShops(c echo.Context) error {
	categoryID, err := optionalIDParam(c, "category_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shops, err := h.catalogUC.SearchShops(c.Request().Context(), c.QueryParam("text"), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shops, "OK")
}

// ListRecommendedShops returns the shops flagged as recommended.
func (h *ShopHandler) ListRecommendedShops(c echo.Context) error {
	shops, err := h.catalogUC.ListRecommendedShops(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shops, "OK")
}

// ListSpecialOffers returns shops with running promotions.
func (h *ShopHandler) ListSpecialOffers(c echo.Context) error {
	shops, err := h.catalogUC.ListSpecialOffers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shops, "OK")
}

// ListCategories returns categories filtered by id, name or image.
func (h *ShopHandler) ListCategories(c echo.Context) error {
	id, err := optionalIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	categories, err := h.catalogUC.ListCategories(c.Request().Context(), repository.CategoryFilter{
		ID:    id,
		Name:  c.QueryParam("name"),
		Image: c.QueryParam("image"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "OK")
}

// GetShop returns one shop with its rating.
func (h *ShopHandler) GetShop(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shop, err := h.catalogUC.GetShop(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "OK")
}

// CalculateFee quotes the delivery fee from a shop to a point.
func (h *ShopHandler) CalculateFee(c echo.Context) error {
	var req CalculateFeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery fee input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	quote, err := h.deliveryFeeUC.CalculateFee(c.Request().Context(), req.ShopID, *req.Latitude, *req.Longitude)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, FeeQuoteResponse{
		DeliveryFee:  quote.Fee.InexactFloat64(),
		DistanceKm:   quote.DistanceKm.InexactFloat64(),
		EstimateTime: quote.EtaMinutes,
	}, "OK")
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   name,
			Message: name + " must be a positive integer",
		})
	}

	return id, nil
}

func optionalIDParam(c echo.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   name,
			Message: name + " must be a positive integer",
		})
	}

	return &id, nil
}

func requiredIDParam(c echo.Context, name string) (int64, error) {
	id, err := optionalIDParam(c, name)
	if err != nil {
		return 0, err
	}
	if id == nil {
		return 0, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   name,
			Message: name + " is required",
		})
	}

	return *id, nil
}
