package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "quickeats/internal/delivery/context"
	"quickeats/internal/domain/entity"
	domainerrors "quickeats/internal/domain/errors"
	"quickeats/internal/domain/repository"
	"quickeats/internal/domain/service"
	"quickeats/internal/errors"
	"quickeats/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var metersPerKm = decimal.NewFromInt(1000)

// deliveryFeeService implements the DeliveryFeeUsecase interface.
type deliveryFeeService struct {
	shopRepo        repository.ShopRepository
	deliveryFeeRepo repository.DeliveryFeeRepository
	distanceService service.DistanceService
	logger          *slog.Logger
}

// DeliveryFeeServiceParams holds dependencies for DeliveryFeeService, injected by Fx.
type DeliveryFeeServiceParams struct {
	fx.In

	ShopRepo        repository.ShopRepository
	DeliveryFeeRepo repository.DeliveryFeeRepository
	DistanceService service.DistanceService
	Logger          *slog.Logger
}

// NewDeliveryFeeService is the constructor for deliveryFeeService.
func NewDeliveryFeeService(params DeliveryFeeServiceParams) usecase.DeliveryFeeUsecase {
	return &deliveryFeeService{
		shopRepo:        params.ShopRepo,
		deliveryFeeRepo: params.DeliveryFeeRepo,
		distanceService: params.DistanceService,
		logger:          params.Logger,
	}
}

func (srv *deliveryFeeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CalculateFee prices the trip from the shop to the customer with a single
// distance lookup. The fee is rounded to cents once, after summing.
func (srv *deliveryFeeService) CalculateFee(ctx context.Context, shopID int64, latitude, longitude float64) (*usecase.FeeQuote, error) {
	shop, err := srv.shopRepo.FindShopByID(ctx, shopID)
	if errors.Is(err, repository.ErrShopNotFound) {
		return nil, domainerrors.ErrShopNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	origin, err := shop.Coordinates()
	if err != nil {
		srv.log(ctx).Warn("Shop has unusable coordinates", slog.Int64("shopID", shopID), slog.Any("error", err))

		return nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "shop_id",
			Message: "shop location is invalid",
		})
	}

	feeConfig, err := srv.deliveryFeeRepo.GetDeliveryFeeConfig(ctx)
	if errors.Is(err, repository.ErrDeliveryFeeConfigNotFound) {
		srv.log(ctx).Error("Delivery fee configuration is missing")

		return nil, domainerrors.ErrDeliveryFeeConfigMissing
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read delivery fee config")
	}

	destination := entity.Coordinate{Latitude: latitude, Longitude: longitude}
	result, err := srv.distanceService.Lookup(ctx, origin, destination)
	if err != nil {
		var upstreamErr *service.UpstreamError
		if errors.As(err, &upstreamErr) {
			return nil, domainerrors.NewUpstreamFailureError(upstreamErr.Status)
		}

		return nil, domainerrors.NewUpstreamFailureError(service.UpstreamStatusUnknown)
	}

	return quoteDelivery(feeConfig, result), nil
}

func quoteDelivery(feeConfig *entity.DeliveryFeeConfig, result *service.DistanceResult) *usecase.FeeQuote {
	distanceKm := decimal.NewFromInt(result.DistanceMeters).Div(metersPerKm)
	fee := feeConfig.BaseFee.Add(distanceKm.Mul(feeConfig.PerKm)).Round(2)
	eta := int(math.Round(float64(result.DurationSeconds)/60)) + feeConfig.FixedTime

	return &usecase.FeeQuote{
		Fee:        fee,
		DistanceKm: distanceKm,
		EtaMinutes: eta,
		BaseFee:    feeConfig.BaseFee,
	}
}
