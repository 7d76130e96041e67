package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"quickeats/internal/domain/entity"
	domainerrors "quickeats/internal/domain/errors"
	"quickeats/internal/domain/repository"
	"quickeats/internal/domain/service"
	"quickeats/internal/errors"
	mockRepo "quickeats/internal/mocks/repository"
	mockSvc "quickeats/internal/mocks/service"
	"quickeats/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryStore is a TransactionManager that only keeps the rows of committed
// transactions.
type memoryStore struct {
	mu       sync.Mutex
	nextID   int64
	orders   []*entity.Order
	lines    []*entity.OrderLine
	incomes  []*entity.Income
	wallets  []*entity.ShopWallet
	failOn   string
	executed int
}

func (s *memoryStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.executed++
	tx := &memoryTx{store: s}
	if err := fn(tx); err != nil {
		return err
	}

	s.orders = append(s.orders, tx.orders...)
	s.lines = append(s.lines, tx.lines...)
	s.incomes = append(s.incomes, tx.incomes...)
	s.wallets = append(s.wallets, tx.wallets...)

	return nil
}

func (s *memoryStore) rowCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.orders) + len(s.lines) + len(s.incomes) + len(s.wallets)
}

type memoryTx struct {
	store   *memoryStore
	orders  []*entity.Order
	lines   []*entity.OrderLine
	incomes []*entity.Income
	wallets []*entity.ShopWallet
}

func (tx *memoryTx) NewOrderRepository() repository.OrderRepository           { return tx }
func (tx *memoryTx) NewSettlementRepository() repository.SettlementRepository { return tx }

func (tx *memoryTx) fail(step string) error {
	if tx.store.failOn == step {
		return errors.New(step + " failed")
	}

	return nil
}

func (tx *memoryTx) CreateOrder(_ context.Context, order *entity.Order) error {
	if err := tx.fail("order"); err != nil {
		return err
	}
	tx.store.nextID++
	order.ID = tx.store.nextID
	order.CreatedAt = time.Now()
	tx.orders = append(tx.orders, order)

	return nil
}

func (tx *memoryTx) CreateOrderLines(_ context.Context, lines []*entity.OrderLine) error {
	if err := tx.fail("lines"); err != nil {
		return err
	}
	tx.lines = append(tx.lines, lines...)

	return nil
}

func (tx *memoryTx) FindOrdersByCustomer(context.Context, int64) ([]*entity.Order, error) {
	return nil, nil
}

func (tx *memoryTx) SearchOrdersByCustomer(context.Context, int64, string) ([]*entity.Order, error) {
	return nil, nil
}

func (tx *memoryTx) CreateIncome(_ context.Context, income *entity.Income) error {
	if err := tx.fail("income"); err != nil {
		return err
	}
	tx.incomes = append(tx.incomes, income)

	return nil
}

func (tx *memoryTx) CreateShopWallet(_ context.Context, wallet *entity.ShopWallet) error {
	if err := tx.fail("wallet"); err != nil {
		return err
	}
	tx.wallets = append(tx.wallets, wallet)

	return nil
}

type orderServiceMocks struct {
	store        *memoryStore
	customerRepo *mockRepo.MockCustomerRepository
	shopRepo     *mockRepo.MockShopRepository
	productRepo  *mockRepo.MockProductRepository
	orderRepo    *mockRepo.MockOrderRepository
	feeRepo      *mockRepo.MockDeliveryFeeRepository
	distance     *mockSvc.MockDistanceService
	notifier     *mockSvc.MockOrderNotifier
	metrics      *mockSvc.MockSettlementMetrics
}

// createTestOrderService wires a real fee calculator so placement exercises
// the full pricing path.
func createTestOrderService(t *testing.T) (*orderService, *orderServiceMocks) {
	t.Helper()

	mocks := &orderServiceMocks{
		store:        &memoryStore{},
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		shopRepo:     mockRepo.NewMockShopRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		feeRepo:      mockRepo.NewMockDeliveryFeeRepository(t),
		distance:     mockSvc.NewMockDistanceService(t),
		notifier:     mockSvc.NewMockOrderNotifier(t),
		metrics:      mockSvc.NewMockSettlementMetrics(t),
	}

	feeCalculator := NewDeliveryFeeService(DeliveryFeeServiceParams{
		ShopRepo:        mocks.shopRepo,
		DeliveryFeeRepo: mocks.feeRepo,
		DistanceService: mocks.distance,
		Logger:          newDiscardLogger(),
	})

	srv, err := NewOrderService(OrderServiceParams{
		TxManager:     mocks.store,
		CustomerRepo:  mocks.customerRepo,
		ShopRepo:      mocks.shopRepo,
		ProductRepo:   mocks.productRepo,
		OrderRepo:     mocks.orderRepo,
		FeeCalculator: feeCalculator,
		Notifier:      mocks.notifier,
		Metrics:       mocks.metrics,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})
	require.NoError(t, err)

	return srv.(*orderService), mocks
}

func burger() *entity.Product {
	return &entity.Product{ID: 1, ShopID: 1, Name: "Cheese Burger", Price: decimal.NewFromInt(50)}
}

func kottu() *entity.Product {
	return &entity.Product{ID: 2, ShopID: 1, Name: "Chicken Kottu", Price: decimal.NewFromInt(30)}
}

func largeBurger() *entity.ProductVariant {
	return &entity.ProductVariant{ID: 10, ProductID: 1, Name: "Large", Price: decimal.NewFromInt(70)}
}

func placeOrderInput(lines ...usecase.OrderLineInput) *usecase.PlaceOrderInput {
	return &usecase.PlaceOrderInput{
		ShopID:      1,
		Status:      entity.OrderStatusDelivered,
		PaymentType: entity.PaymentTypeCOD,
		Address:     "12 Galle Road, Colombo",
		Latitude:    testCustomerPoint.Latitude,
		Longitude:   testCustomerPoint.Longitude,
		Lines:       lines,
	}
}

func (m *orderServiceMocks) expectCustomerAndShop(ctx context.Context) {
	m.customerRepo.EXPECT().FindCustomerByID(ctx, int64(7)).Return(activeCustomer(), nil)
	m.shopRepo.EXPECT().FindShopByID(ctx, int64(1)).Return(testShop(), nil)
}

// expectFiveKmQuote prices the trip at 70.00 with base fee 20.
func (m *orderServiceMocks) expectFiveKmQuote(ctx context.Context) {
	m.feeRepo.EXPECT().GetDeliveryFeeConfig(ctx).Return(testFeeConfig(), nil)
	m.distance.EXPECT().Lookup(ctx, testShopOrigin, testCustomerPoint).
		Return(&service.DistanceResult{DistanceMeters: 5000, DurationSeconds: 1200}, nil)
}

func TestOrderService_PlaceOrder_SettlesAndNotifies(t *testing.T) {
	ctx := context.Background()
	srv, mocks := createTestOrderService(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	srv.now = func() time.Time { return now }

	mocks.expectCustomerAndShop(ctx)
	mocks.productRepo.EXPECT().FindProductByID(mock.Anything, int64(1)).Return(burger(), nil)
	mocks.productRepo.EXPECT().FindProductByID(mock.Anything, int64(2)).Return(kottu(), nil)
	mocks.productRepo.EXPECT().FindVariantByID(mock.Anything, int64(10)).Return(largeBurger(), nil)
	mocks.expectFiveKmQuote(ctx)
	mocks.metrics.EXPECT().OrderPlaced("COD").Return()
	mocks.shopRepo.EXPECT().FindShopPushToken(ctx, int64(1)).Return("shop-token", nil)
	mocks.notifier.EXPECT().NotifyOrderCreated(ctx, mock.AnythingOfType("*service.OrderCreatedEvent")).
		Run(func(_ context.Context, event *service.OrderCreatedEvent) {
			assert.Equal(t, int64(1), event.ShopID)
			assert.Equal(t, "shop-token", event.ShopPushToken)
			assert.Equal(t, "270.00", event.TotalPrice)
			assert.NotEmpty(t, event.EventID)
		}).
		Return(true)

	// 2 x Large (70) + 2 x Kottu (30) = 200
	order, err := srv.PlaceOrder(ctx, 7, placeOrderInput(
		usecase.OrderLineInput{ProductID: 1, VariantID: ptr(int64(10)), Quantity: 2},
		usecase.OrderLineInput{ProductID: 2, Quantity: 2},
	))

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPlaced, order.Status)
	assert.Equal(t, "70.00", order.DeliveryFee.StringFixed(2))
	assert.Equal(t, "270.00", order.TotalPrice.StringFixed(2))
	assert.True(t, order.TipAmount.IsZero())
	assert.Equal(t, now.Add(35*time.Minute), order.DeliveryTime)

	require.Len(t, mocks.store.lines, 2)
	assert.Equal(t, "70", mocks.store.lines[0].Price.String())
	assert.Equal(t, int64(10), *mocks.store.lines[0].VariantID)
	assert.Equal(t, "30", mocks.store.lines[1].Price.String())
	for _, line := range mocks.store.lines {
		assert.Equal(t, order.ID, line.OrderID)
	}

	require.Len(t, mocks.store.incomes, 1)
	require.Len(t, mocks.store.wallets, 1)
	assert.Equal(t, "56", mocks.store.incomes[0].Amount.String())
	assert.Equal(t, "144", mocks.store.wallets[0].Amount.String())
	assert.Equal(t, int64(1), mocks.store.wallets[0].ShopID)
	assert.True(t, mocks.store.incomes[0].Amount.Add(mocks.store.wallets[0].Amount).Equal(decimal.NewFromInt(200)))
}

func TestOrderService_PlaceOrder_WritesOneRowPerLine(t *testing.T) {
	ctx := context.Background()
	srv, mocks := createTestOrderService(t)

	mocks.expectCustomerAndShop(ctx)
	mocks.productRepo.EXPECT().FindProductByID(mock.Anything, int64(1)).Return(burger(), nil)
	mocks.productRepo.EXPECT().FindProductByID(mock.Anything, int64(2)).Return(kottu(), nil)
	mocks.expectFiveKmQuote(ctx)
	mocks.metrics.EXPECT().OrderPlaced("CARD").Return()
	mocks.shopRepo.EXPECT().FindShopPushToken(ctx, int64(1)).Return("", nil)

	input := placeOrderInput(
		usecase.OrderLineInput{ProductID: 1, Quantity: 1},
		usecase.OrderLineInput{ProductID: 2, Quantity: 3},
		usecase.OrderLineInput{ProductID: 1, Quantity: 2},
		usecase.OrderLineInput{ProductID: 2, Quantity: 1},
	)
	input.PaymentType = entity.PaymentTypeCard
	input.TipAmount = ptr(decimal.NewFromInt(25))

	order, err := srv.PlaceOrder(ctx, 7, input)

	require.NoError(t, err)
	assert.Len(t, mocks.store.lines, 4)
	assert.Equal(t, "25", order.TipAmount.String())
	// 50 + 90 + 100 + 30 = 270, income 270 * 0.18 + 20 = 68.60
	assert.Equal(t, "68.6", mocks.store.incomes[0].Amount.String())
	assert.Equal(t, "201.4", mocks.store.wallets[0].Amount.String())
	assert.Equal(t, "340.00", order.TotalPrice.StringFixed(2))
}

func TestOrderService_PlaceOrder_UpstreamFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	srv, mocks := createTestOrderService(t)

	mocks.expectCustomerAndShop(ctx)
	mocks.productRepo.EXPECT().FindProductByID(mock.Anything, int64(1)).Return(burger(), nil)
	mocks.feeRepo.EXPECT().GetDeliveryFeeConfig(ctx).Return(testFeeConfig(), nil)
	mocks.distance.EXPECT().Lookup(ctx, testShopOrigin, testCustomerPoint).
		Return(nil, &service.UpstreamError{Provider: "google", Status: "ZERO_RESULTS"})
	mocks.metrics.EXPECT().OrderPlacementFailed(failureUpstream).Return()

	_, err := srv.PlaceOrder(ctx, 7, placeOrderInput(usecase.OrderLineInput{ProductID: 1, Quantity: 1}))

	require.ErrorIs(t, err, domainerrors.ErrUpstreamFailure)
	assert.Contains(t, err.Error(), "ZERO_RESULTS")
	assert.Zero(t, mocks.store.executed)
	assert.Zero(t, mocks.store.rowCount())
}

func TestOrderService_PlaceOrder_TransactionFailureRollsBack(t *testing.T) {
	for _, step := range []string{"order", "lines", "income", "wallet"} {
		t.Run(step, func(t *testing.T) {
			ctx := context.Background()
			srv, mocks := createTestOrderService(t)
			mocks.store.failOn = step

			mocks.expectCustomerAndShop(ctx)
			mocks.productRepo.EXPECT().FindProductByID(mock.Anything, int64(1)).Return(burger(), nil)
			mocks.expectFiveKmQuote(ctx)
			mocks.metrics.EXPECT().OrderPlacementFailed(failureTransaction).Return()

			_, err := srv.PlaceOrder(ctx, 7, placeOrderInput(usecase.OrderLineInput{ProductID: 1, Quantity: 1}))

			assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
			assert.Zero(t, mocks.store.rowCount())
		})
	}
}

func TestOrderService_PlaceOrder_LineResolutionFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown product", func(t *testing.T) {
		srv, mocks := createTestOrderService(t)

		mocks.expectCustomerAndShop(ctx)
		mocks.productRepo.EXPECT().FindProductByID(mock.Anything, int64(99)).Return(nil, repository.ErrProductNotFound)
		mocks.metrics.EXPECT().OrderPlacementFailed(failureNotFound).Return()

		_, err := srv.PlaceOrder(ctx, 7, placeOrderInput(usecase.OrderLineInput{ProductID: 99, Quantity: 1}))

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
		assert.Zero(t, mocks.store.executed)
	})

	t.Run("product from another shop", func(t *testing.T) {
		srv, mocks := createTestOrderService(t)

		foreign := burger()
		foreign.ShopID = 2
		mocks.expectCustomerAndShop(ctx)
		mocks.productRepo.EXPECT().FindProductByID(mock.Anything, int64(1)).Return(foreign, nil)
		mocks.metrics.EXPECT().OrderPlacementFailed(failureValidation).Return()

		_, err := srv.PlaceOrder(ctx, 7, placeOrderInput(usecase.OrderLineInput{ProductID: 1, Quantity: 1}))

		assert.ErrorIs(t, err, domainerrors.ErrProductNotInShop)
	})

	t.Run("variant of another product", func(t *testing.T) {
		srv, mocks := createTestOrderService(t)

		variant := largeBurger()
		variant.ProductID = 2
		mocks.expectCustomerAndShop(ctx)
		mocks.productRepo.EXPECT().FindProductByID(mock.Anything, int64(1)).Return(burger(), nil)
		mocks.productRepo.EXPECT().FindVariantByID(mock.Anything, int64(10)).Return(variant, nil)
		mocks.metrics.EXPECT().OrderPlacementFailed(failureNotFound).Return()

		_, err := srv.PlaceOrder(ctx, 7, placeOrderInput(usecase.OrderLineInput{ProductID: 1, VariantID: ptr(int64(10)), Quantity: 1}))

		assert.ErrorIs(t, err, domainerrors.ErrVariantNotFound)
	})
}

func TestOrderService_PlaceOrder_Preconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted customer", func(t *testing.T) {
		srv, mocks := createTestOrderService(t)

		deleted := activeCustomer()
		deleted.Deleted = true
		mocks.customerRepo.EXPECT().FindCustomerByID(ctx, int64(7)).Return(deleted, nil)
		mocks.metrics.EXPECT().OrderPlacementFailed(failureNotFound).Return()

		_, err := srv.PlaceOrder(ctx, 7, placeOrderInput(usecase.OrderLineInput{ProductID: 1, Quantity: 1}))

		assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	})

	t.Run("missing shop", func(t *testing.T) {
		srv, mocks := createTestOrderService(t)

		mocks.customerRepo.EXPECT().FindCustomerByID(ctx, int64(7)).Return(activeCustomer(), nil)
		mocks.shopRepo.EXPECT().FindShopByID(ctx, int64(1)).Return(nil, repository.ErrShopNotFound)
		mocks.metrics.EXPECT().OrderPlacementFailed(failureNotFound).Return()

		_, err := srv.PlaceOrder(ctx, 7, placeOrderInput(usecase.OrderLineInput{ProductID: 1, Quantity: 1}))

		assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
	})

	t.Run("invalid input reports every field", func(t *testing.T) {
		srv, mocks := createTestOrderService(t)

		mocks.metrics.EXPECT().OrderPlacementFailed(failureValidation).Return()

		_, err := srv.PlaceOrder(ctx, 7, &usecase.PlaceOrderInput{Latitude: 91, Lines: []usecase.OrderLineInput{{ProductID: 0, Quantity: 0}}})

		var validationErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		fields := make([]string, 0, len(validationErr.Fields()))
		for _, f := range validationErr.Fields() {
			fields = append(fields, f.Field)
		}
		assert.ElementsMatch(t, []string{
			"shop_id", "product[0].id", "product[0].quantity", "type", "status", "address", "latitude",
		}, fields)
	})
}

func TestOrderService_PlaceOrder_NotificationDoesNotFailOrder(t *testing.T) {
	ctx := context.Background()
	srv, mocks := createTestOrderService(t)

	mocks.expectCustomerAndShop(ctx)
	mocks.productRepo.EXPECT().FindProductByID(mock.Anything, int64(1)).Return(burger(), nil)
	mocks.expectFiveKmQuote(ctx)
	mocks.metrics.EXPECT().OrderPlaced("COD").Return()
	mocks.shopRepo.EXPECT().FindShopPushToken(ctx, int64(1)).Return("shop-token", nil)
	mocks.notifier.EXPECT().NotifyOrderCreated(ctx, mock.Anything).Return(false)

	order, err := srv.PlaceOrder(ctx, 7, placeOrderInput(usecase.OrderLineInput{ProductID: 1, Quantity: 1}))

	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, 4, mocks.store.rowCount())
}

func TestOrderService_History(t *testing.T) {
	ctx := context.Background()
	srv, mocks := createTestOrderService(t)

	orders := []*entity.Order{{ID: 2}, {ID: 1}}
	mocks.orderRepo.EXPECT().FindOrdersByCustomer(ctx, int64(7)).Return(orders, nil)
	mocks.orderRepo.EXPECT().SearchOrdersByCustomer(ctx, int64(7), "burger").Return(orders[:1], nil)

	listed, err := srv.ListOrders(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, orders, listed)

	found, err := srv.SearchOrders(ctx, 7, " burger ")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	empty, err := srv.SearchOrders(ctx, 7, "  ")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestNewOrderService_RejectsBadCommissionRate(t *testing.T) {
	cfg := newTestConfig()
	cfg.Settlement.PlatformCommissionRate = "1.5"

	_, err := NewOrderService(OrderServiceParams{Config: cfg, Logger: newDiscardLogger()})

	assert.Error(t, err)
}
