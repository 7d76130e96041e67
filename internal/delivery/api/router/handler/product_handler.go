package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"quickeats/internal/delivery/api/response"
	domainerrors "quickeats/internal/domain/errors"
	"quickeats/internal/errors"
	"quickeats/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ProductHandler serves product listings and details.
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProducts returns the products of the shop given by ?shopId=.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	shopID, err := requiredIDParam(c, "shopId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "OK")
}

// SearchProducts matches products by ?name=.
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("name"))
	if name == "" {
		return response.HandleAppError(c, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "name",
			Message: "name is required",
		}))
	}

	products, err := h.catalogUC.SearchProducts(c.Request().Context(), name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "OK")
}

// GetProduct returns one product with its variants.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "OK")
}
