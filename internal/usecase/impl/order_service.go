package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"quickeats/config"
	deliverycontext "quickeats/internal/delivery/context"
	"quickeats/internal/domain/entity"
	domainerrors "quickeats/internal/domain/errors"
	"quickeats/internal/domain/repository"
	"quickeats/internal/domain/service"
	"quickeats/internal/errors"
	"quickeats/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Placement failure reasons reported to metrics.
const (
	failureValidation  = "validation"
	failureNotFound    = "not_found"
	failureUpstream    = "upstream"
	failureTransaction = "transaction"
	failureInternal    = "internal"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager      repository.TransactionManager
	customerRepo   repository.CustomerRepository
	shopRepo       repository.ShopRepository
	productRepo    repository.ProductRepository
	orderRepo      repository.OrderRepository
	feeCalculator  usecase.DeliveryFeeUsecase
	notifier       service.OrderNotifier
	metrics        service.SettlementMetrics
	commissionRate decimal.Decimal
	now            func() time.Time
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	CustomerRepo  repository.CustomerRepository
	ShopRepo      repository.ShopRepository
	ProductRepo   repository.ProductRepository
	OrderRepo     repository.OrderRepository
	FeeCalculator usecase.DeliveryFeeUsecase
	Notifier      service.OrderNotifier
	Metrics       service.SettlementMetrics
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) (usecase.OrderUsecase, error) {
	rate, err := decimal.NewFromString(params.Config.Settlement.PlatformCommissionRate)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid settlement.platformCommissionRate %q", params.Config.Settlement.PlatformCommissionRate)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, errors.Errorf("settlement.platformCommissionRate %s must be between 0 and 1", rate)
	}

	return &orderService{
		txManager:      params.TxManager,
		customerRepo:   params.CustomerRepo,
		shopRepo:       params.ShopRepo,
		productRepo:    params.ProductRepo,
		orderRepo:      params.OrderRepo,
		feeCalculator:  params.FeeCalculator,
		notifier:       params.Notifier,
		metrics:        params.Metrics,
		commissionRate: rate,
		now:            time.Now,
		logger:         params.Logger,
	}, nil
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder prices the cart, persists the order with its lines and
// settlement rows atomically, then notifies the shop.
func (srv *orderService) PlaceOrder(ctx context.Context, customerID int64, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	order, err := srv.placeOrder(ctx, customerID, input)
	if err != nil {
		reason := placementFailureReason(err)
		srv.metrics.OrderPlacementFailed(reason)
		srv.log(ctx).Warn("Order placement failed",
			slog.Int64("customerID", customerID),
			slog.String("reason", reason),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.metrics.OrderPlaced(string(order.PaymentType))
	srv.log(ctx).Info("Order placed",
		slog.Int64("orderID", order.ID),
		slog.Int64("shopID", order.ShopID),
		slog.String("totalPrice", order.TotalPrice.StringFixed(2)),
	)

	srv.notifyShop(ctx, order)

	return order, nil
}

func (srv *orderService) placeOrder(ctx context.Context, customerID int64, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := srv.ensureCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	if _, err := srv.shopRepo.FindShopByID(ctx, input.ShopID); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	lines, err := srv.resolveLines(ctx, input.ShopID, input.Lines)
	if err != nil {
		return nil, err
	}

	quote, err := srv.feeCalculator.CalculateFee(ctx, input.ShopID, input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Subtotal())
	}
	split := entity.SplitIncome(subtotal, srv.commissionRate, quote.BaseFee)

	tip := decimal.Zero
	if input.TipAmount != nil {
		tip = *input.TipAmount
	}

	now := srv.now()
	order := &entity.Order{
		CustomerID:          customerID,
		ShopID:              input.ShopID,
		PromotionID:         input.PromotionID,
		TotalPrice:          subtotal.Add(quote.Fee),
		DeliveryFee:         quote.Fee,
		TipAmount:           tip,
		Status:              entity.OrderStatusPlaced,
		PaymentType:         input.PaymentType,
		Address:             strings.TrimSpace(input.Address),
		DriverNote:          input.DriverNote,
		StreetOrApartmentNo: input.StreetOrApartmentNo,
		DeliveryInstruction: input.DeliveryInstruction,
		SpatialInstruction:  input.SpatialInstruction,
		Latitude:            input.Latitude,
		Longitude:           input.Longitude,
		DeliveryTime:        now.Add(time.Duration(quote.EtaMinutes) * time.Minute),
		Lines:               lines,
	}

	if err := srv.persist(ctx, order, split); err != nil {
		return nil, err
	}

	return order, nil
}

func (srv *orderService) ensureCustomer(ctx context.Context, customerID int64) error {
	customer, err := srv.customerRepo.FindCustomerByID(ctx, customerID)
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return domainerrors.ErrCustomerNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find customer")
	}
	if !customer.CanSignIn() {
		return domainerrors.ErrCustomerNotFound
	}

	return nil
}

// resolveLines looks up every cart entry concurrently and snapshots its unit
// price. The first failure cancels the remaining lookups.
func (srv *orderService) resolveLines(ctx context.Context, shopID int64, inputs []usecase.OrderLineInput) ([]*entity.OrderLine, error) {
	lines := make([]*entity.OrderLine, len(inputs))
	g, gctx := errgroup.WithContext(ctx)

	for i, in := range inputs {
		g.Go(func() error {
			line, err := srv.resolveLine(gctx, shopID, in)
			if err != nil {
				return err
			}
			lines[i] = line

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return lines, nil
}

func (srv *orderService) resolveLine(ctx context.Context, shopID int64, in usecase.OrderLineInput) (*entity.OrderLine, error) {
	product, err := srv.productRepo.FindProductByID(ctx, in.ProductID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WithDetails(productDetails(in.ProductID))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find product %d", in.ProductID)
	}
	if product.ShopID != shopID {
		return nil, domainerrors.ErrProductNotInShop.WithDetails(productDetails(in.ProductID))
	}

	line := &entity.OrderLine{
		ProductID: product.ID,
		Quantity:  in.Quantity,
		Price:     product.Price,
		Product:   product,
	}

	if in.VariantID != nil {
		variant, err := srv.productRepo.FindVariantByID(ctx, *in.VariantID)
		if errors.Is(err, repository.ErrVariantNotFound) {
			return nil, domainerrors.ErrVariantNotFound
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to find product variant %d", *in.VariantID)
		}
		if variant.ProductID != product.ID {
			return nil, domainerrors.ErrVariantNotFound
		}

		line.VariantID = &variant.ID
		line.Price = variant.Price
		line.Variant = variant
	}

	return line, nil
}

// persist writes the order, its lines, the platform income and the shop
// wallet in one transaction.
func (srv *orderService) persist(ctx context.Context, order *entity.Order, split entity.IncomeSplit) error {
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orderRepo := factory.NewOrderRepository()
		settlementRepo := factory.NewSettlementRepository()

		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		for _, line := range order.Lines {
			line.OrderID = order.ID
		}
		if err := orderRepo.CreateOrderLines(ctx, order.Lines); err != nil {
			return errors.Wrap(err, "failed to create order lines")
		}

		if err := settlementRepo.CreateIncome(ctx, &entity.Income{
			OrderID: order.ID,
			Amount:  split.PlatformIncome,
		}); err != nil {
			return errors.Wrap(err, "failed to create income")
		}

		if err := settlementRepo.CreateShopWallet(ctx, &entity.ShopWallet{
			ShopID:  order.ShopID,
			OrderID: order.ID,
			Amount:  split.ShopIncome,
		}); err != nil {
			return errors.Wrap(err, "failed to create shop wallet")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Order transaction rolled back", slog.Int64("shopID", order.ShopID), slog.Any("error", err))

		return domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	return nil
}

// notifyShop hands the new order to the dispatcher. Failures never affect the order.
func (srv *orderService) notifyShop(ctx context.Context, order *entity.Order) {
	token, err := srv.shopRepo.FindShopPushToken(ctx, order.ShopID)
	if err != nil {
		srv.log(ctx).Warn("Failed to read shop push token", slog.Int64("shopID", order.ShopID), slog.Any("error", err))

		return
	}
	if token == "" {
		srv.log(ctx).Debug("Shop has no push token, skipping notification", slog.Int64("shopID", order.ShopID))

		return
	}

	event := &service.OrderCreatedEvent{
		EventID:       uuid.NewString(),
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:       order.ID,
		ShopID:        order.ShopID,
		ShopPushToken: token,
		TotalPrice:    order.TotalPrice.StringFixed(2),
		PlacedAt:      order.CreatedAt,
	}
	if !srv.notifier.NotifyOrderCreated(ctx, event) {
		srv.log(ctx).Warn("Order notification not queued", slog.Int64("orderID", order.ID))
	}
}

// ListOrders returns the customer's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindOrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// SearchOrders returns the customer's orders containing a product or variant
// whose name matches text. A blank text matches nothing.
func (srv *orderService) SearchOrders(ctx context.Context, customerID int64, text string) ([]*entity.Order, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []*entity.Order{}, nil
	}

	orders, err := srv.orderRepo.SearchOrdersByCustomer(ctx, customerID, text)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search orders")
	}

	return orders, nil
}

func placementFailureReason(err error) string {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return failureInternal
	}

	switch {
	case errors.Is(err, domainerrors.ErrTransactionFailed):
		return failureTransaction
	case errors.Is(err, domainerrors.ErrUpstreamFailure):
		return failureUpstream
	case appErr.HTTPCode() == domainerrors.StatusValidationFailed:
		return failureValidation
	case errors.Is(err, domainerrors.ErrShopNotFound),
		errors.Is(err, domainerrors.ErrCustomerNotFound),
		errors.Is(err, domainerrors.ErrProductNotFound),
		errors.Is(err, domainerrors.ErrVariantNotFound):
		return failureNotFound
	}

	return failureInternal
}

func productDetails(id int64) string {
	return "product_id=" + strconv.FormatInt(id, 10)
}
