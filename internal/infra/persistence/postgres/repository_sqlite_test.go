package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"quickeats/internal/domain/entity"
	"quickeats/internal/domain/repository"
	"quickeats/internal/errors"
	"quickeats/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "quickeats.db")), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.CustomerModel{},
		&model.CategoryModel{},
		&model.ShopModel{},
		&model.ShopFeedbackModel{},
		&model.ShopCategoryModel{},
		&model.ProductModel{},
		&model.ProductVariantModel{},
		&model.PromotionModel{},
		&model.ProductPromotionModel{},
		&model.OrderModel{},
		&model.OrderLineModel{},
		&model.IncomeModel{},
		&model.ShopWalletModel{},
		&model.DeliveryFeeModel{},
		&model.OTPModel{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func strPtr(s string) *string { return &s }

// seedCatalog creates two shops; shop 1 sells a burger with a large variant.
func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	pizza := &model.CategoryModel{Name: "Pizza"}
	rice := &model.CategoryModel{Name: "Rice & Curry", Image: strPtr("rice.png")}
	require.NoError(t, db.Create(pizza).Error)
	require.NoError(t, db.Create(rice).Error)

	shops := []*model.ShopModel{
		{Name: "Burger Hub", Email: "hub@example.com", Mobile: "94771234567", Address: "Colombo 03", Latitude: "6.9271", Longitude: "79.8612", Recommended: true, FCMToken: strPtr("shop-token")},
		{Name: "Curry Corner", Email: "curry@example.com", Mobile: "94770000000", Address: "Kandy", Description: strPtr("Best lamprais"), Latitude: "7.2906", Longitude: "80.6337"},
		{Name: "Closed Down", Email: "gone@example.com", Mobile: "94779999999", Address: "Galle", Latitude: "6.0", Longitude: "80.2", Deleted: true},
	}
	for _, s := range shops {
		require.NoError(t, db.Create(s).Error)
	}

	require.NoError(t, db.Create(&model.ShopCategoryModel{ShopID: shops[0].ID, CategoryID: pizza.ID}).Error)
	require.NoError(t, db.Create(&model.ShopCategoryModel{ShopID: shops[1].ID, CategoryID: rice.ID}).Error)
	require.NoError(t, db.Create(&model.ShopFeedbackModel{ShopID: shops[0].ID, CustomerID: 1, Rating: 4}).Error)
	require.NoError(t, db.Create(&model.ShopFeedbackModel{ShopID: shops[0].ID, CustomerID: 2, Rating: 5}).Error)

	burger := &model.ProductModel{ShopID: shops[0].ID, CategoryID: pizza.ID, Name: "Cheese Burger", Price: decimal.NewFromInt(50)}
	require.NoError(t, db.Create(burger).Error)
	require.NoError(t, db.Create(&model.ProductVariantModel{ProductID: burger.ID, Name: "Large", Price: decimal.NewFromInt(70), Stock: 10}).Error)

	kottu := &model.ProductModel{ShopID: shops[1].ID, CategoryID: rice.ID, Name: "Chicken Kottu", Price: decimal.NewFromInt(30)}
	require.NoError(t, db.Create(kottu).Error)

	promo := &model.PromotionModel{Title: "Half price", Type: "PERCENT", Value: decimal.NewFromInt(50)}
	require.NoError(t, db.Create(promo).Error)
	require.NoError(t, db.Create(&model.ProductPromotionModel{ProductID: kottu.ID, PromotionID: promo.ID}).Error)

	require.NoError(t, db.Create(&model.DeliveryFeeModel{BaseFee: decimal.NewFromInt(100), PerKm: decimal.NewFromInt(50), FixedTime: 15}).Error)
}

func newTestOrder(customerID, shopID int64) *entity.Order {
	return &entity.Order{
		CustomerID:   customerID,
		ShopID:       shopID,
		TotalPrice:   decimal.NewFromInt(470),
		DeliveryFee:  decimal.NewFromInt(200),
		TipAmount:    decimal.Zero,
		Status:       entity.OrderStatusPlaced,
		PaymentType:  entity.PaymentTypeCOD,
		Address:      "12 Galle Road",
		Latitude:     6.9,
		Longitude:    79.86,
		DeliveryTime: time.Now().UTC().Add(time.Hour),
	}
}

func TestTransactionManager_CommitsOrderWithSettlement(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	ctx := context.Background()

	order := newTestOrder(7, 1)
	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		orders := f.NewOrderRepository()
		if err := orders.CreateOrder(ctx, order); err != nil {
			return err
		}

		variantID := int64(1)
		lines := []*entity.OrderLine{
			{OrderID: order.ID, ProductID: 1, VariantID: &variantID, Quantity: 2, Price: decimal.NewFromInt(70)},
			{OrderID: order.ID, ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(50)},
		}
		if err := orders.CreateOrderLines(ctx, lines); err != nil {
			return err
		}

		settlement := f.NewSettlementRepository()
		if err := settlement.CreateIncome(ctx, &entity.Income{OrderID: order.ID, Amount: decimal.RequireFromString("135.20")}); err != nil {
			return err
		}

		return settlement.CreateShopWallet(ctx, &entity.ShopWallet{ShopID: 1, OrderID: order.ID, Amount: decimal.RequireFromString("54.80")})
	})
	require.NoError(t, err)
	assert.NotZero(t, order.ID)

	orders, err := NewOrderRepository(db).FindOrdersByCustomer(ctx, 7)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Lines, 2)
	assert.True(t, orders[0].TotalPrice.Equal(decimal.NewFromInt(470)))
	assert.Equal(t, "Cheese Burger", orders[0].Lines[0].Product.Name)
	require.NotNil(t, orders[0].Lines[0].Variant)
	assert.Equal(t, "Large", orders[0].Lines[0].Variant.Name)
	assert.Nil(t, orders[0].Lines[1].Variant)

	var income model.IncomeModel
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&income).Error)
	assert.True(t, income.Amount.Equal(decimal.RequireFromString("135.20")))

	var wallet model.ShopWalletModel
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&wallet).Error)
	assert.True(t, wallet.Amount.Equal(decimal.RequireFromString("54.80")))
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	ctx := context.Background()

	failure := errors.New("income insert failed")
	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		order := newTestOrder(7, 1)
		if err := f.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return err
		}
		if err := f.NewOrderRepository().CreateOrderLines(ctx, []*entity.OrderLine{
			{OrderID: order.ID, ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(50)},
		}); err != nil {
			return err
		}

		return failure
	})
	require.ErrorIs(t, err, failure)

	for _, m := range []any{&model.OrderModel{}, &model.OrderLineModel{}, &model.IncomeModel{}, &model.ShopWalletModel{}} {
		var count int64
		require.NoError(t, db.Model(m).Count(&count).Error)
		assert.Zero(t, count)
	}
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.NewOrderRepository().CreateOrder(ctx, newTestOrder(7, 1)); err != nil {
				return err
			}
			panic("boom")
		})
	})

	var count int64
	require.NoError(t, db.Model(&model.OrderModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOrderRepository_SearchOrdersByCustomer(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	ctx := context.Background()
	repo := NewOrderRepository(db)

	burgerOrder := newTestOrder(7, 1)
	require.NoError(t, repo.CreateOrder(ctx, burgerOrder))
	require.NoError(t, repo.CreateOrderLines(ctx, []*entity.OrderLine{
		{OrderID: burgerOrder.ID, ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(50)},
	}))

	kottuOrder := newTestOrder(7, 2)
	require.NoError(t, repo.CreateOrder(ctx, kottuOrder))
	require.NoError(t, repo.CreateOrderLines(ctx, []*entity.OrderLine{
		{OrderID: kottuOrder.ID, ProductID: 2, Quantity: 3, Price: decimal.NewFromInt(30)},
	}))

	otherCustomer := newTestOrder(8, 1)
	require.NoError(t, repo.CreateOrder(ctx, otherCustomer))
	require.NoError(t, repo.CreateOrderLines(ctx, []*entity.OrderLine{
		{OrderID: otherCustomer.ID, ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(50)},
	}))

	found, err := repo.SearchOrdersByCustomer(ctx, 7, "burger")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, burgerOrder.ID, found[0].ID)

	found, err = repo.SearchOrdersByCustomer(ctx, 7, "LARGE")
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = repo.SearchOrdersByCustomer(ctx, 7, "kottu")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, kottuOrder.ID, found[0].ID)
}

func TestShopRepository_FindShops(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	ctx := context.Background()
	repo := NewShopRepository(db)

	all, err := repo.FindShops(ctx, repository.ShopFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Len(t, all[0].Feedback, 2)
	require.Len(t, all[0].Categories, 1)
	assert.Equal(t, "Pizza", all[0].Categories[0].Category.Name)

	byText, err := repo.FindShops(ctx, repository.ShopFilter{Text: "LAMPRAIS"})
	require.NoError(t, err)
	require.Len(t, byText, 1)
	assert.Equal(t, "Curry Corner", byText[0].Name)

	for _, wildcard := range []string{"%", "_", `\`} {
		none, err := repo.FindShops(ctx, repository.ShopFilter{Text: wildcard})
		require.NoError(t, err)
		assert.Empty(t, none, "%q must match literally", wildcard)
	}

	categoryID := int64(1)
	byCategory, err := repo.FindShops(ctx, repository.ShopFilter{CategoryID: &categoryID})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Burger Hub", byCategory[0].Name)

	recommended, err := repo.FindShops(ctx, repository.ShopFilter{RecommendedOnly: true})
	require.NoError(t, err)
	require.Len(t, recommended, 1)
	assert.True(t, recommended[0].Recommended)

	_, err = repo.FindShopByID(ctx, 3)
	assert.ErrorIs(t, err, repository.ErrShopNotFound)

	token, err := repo.FindShopPushToken(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "shop-token", token)

	token, err = repo.FindShopPushToken(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestShopRepository_FindShopsWithActiveOffers(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.ShopFeedbackModel{ShopID: 2, CustomerID: 1, Rating: 5}).Error)
	require.NoError(t, db.Create(&model.ShopFeedbackModel{ShopID: 2, CustomerID: 2, Rating: 3}).Error)

	shops, err := NewShopRepository(db).FindShopsWithActiveOffers(ctx)
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, "Curry Corner", shops[0].Name)
	require.Len(t, shops[0].Categories, 1)
	assert.Equal(t, "Rice & Curry", shops[0].Categories[0].Category.Name)

	rating := entity.NewShopRating(shops[0].Feedback)
	require.NotNil(t, rating.AverageRating)
	assert.Equal(t, "4.00", *rating.AverageRating)
	assert.Equal(t, 2, rating.FeedbackCount)

	require.Len(t, shops[0].Products, 1)
	require.Len(t, shops[0].Products[0].Promotions, 1)
	assert.Equal(t, "Half price", shops[0].Products[0].Promotions[0].Promotion.Title)
}

func TestCustomerRepository_CreateAndUpdate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCustomerRepository(db)

	customer := &entity.Customer{Name: "Nimal", Email: "nimal@example.com", Mobile: "94771112223", Active: true}
	require.NoError(t, repo.CreateCustomer(ctx, customer))
	assert.NotZero(t, customer.ID)

	err := repo.CreateCustomer(ctx, &entity.Customer{Name: "Copy", Email: "other@example.com", Mobile: "94771112223", Active: true})
	assert.ErrorIs(t, err, repository.ErrDuplicateCustomer)

	exists, err := repo.ExistsByEmailOrMobile(ctx, "nimal@example.com", "94700000000")
	require.NoError(t, err)
	assert.True(t, exists)

	taken, err := repo.EmailTakenByOther(ctx, "nimal@example.com", customer.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	customer.Name = "Nimal Perera"
	customer.Image = strPtr("https://cdn.example.com/nimal.png")
	require.NoError(t, repo.UpdateProfile(ctx, customer))
	require.NoError(t, repo.UpdateFCMToken(ctx, customer.ID, "device-token"))

	stored, err := repo.FindCustomerByMobile(ctx, "94771112223")
	require.NoError(t, err)
	assert.Equal(t, "Nimal Perera", stored.Name)
	require.NotNil(t, stored.FCMToken)
	assert.Equal(t, "device-token", *stored.FCMToken)

	_, err = repo.FindCustomerByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrCustomerNotFound)
}

func TestOTPRepository_ActiveCodes(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewOTPRepository(db)
	now := time.Now().UTC()

	require.NoError(t, repo.CreateOTP(ctx, &entity.OTP{Mobile: "94771112223", CodeHash: "old", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, repo.CreateOTP(ctx, &entity.OTP{Mobile: "94771112223", CodeHash: "fresh", ExpiresAt: now.Add(5 * time.Minute)}))

	active, err := repo.FindActiveOTPs(ctx, "94771112223", now)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "fresh", active[0].CodeHash)

	require.NoError(t, repo.DeleteOTPsByMobile(ctx, "94771112223"))
	active, err = repo.FindActiveOTPs(ctx, "94771112223", now)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestDeliveryFeeRepository_Missing(t *testing.T) {
	db := newTestDB(t)

	_, err := NewDeliveryFeeRepository(db).GetDeliveryFeeConfig(context.Background())
	assert.ErrorIs(t, err, repository.ErrDeliveryFeeConfigNotFound)
}
