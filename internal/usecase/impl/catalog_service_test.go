package impl

import (
	"context"
	"testing"

	"quickeats/internal/domain/entity"
	domainerrors "quickeats/internal/domain/errors"
	"quickeats/internal/domain/repository"
	mockRepo "quickeats/internal/mocks/repository"
	"quickeats/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogServiceMocks struct {
	shopRepo     *mockRepo.MockShopRepository
	categoryRepo *mockRepo.MockCategoryRepository
	productRepo  *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) (usecase.CatalogUsecase, *catalogServiceMocks) {
	t.Helper()

	mocks := &catalogServiceMocks{
		shopRepo:     mockRepo.NewMockShopRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
	}

	return NewCatalogService(CatalogServiceParams{
		ShopRepo:     mocks.shopRepo,
		CategoryRepo: mocks.categoryRepo,
		ProductRepo:  mocks.productRepo,
		Logger:       newDiscardLogger(),
	}), mocks
}

func TestCatalogService_ShopRatings(t *testing.T) {
	ctx := context.Background()
	srv, mocks := createTestCatalogService(t)

	rated := &entity.Shop{ID: 1, Name: "Burger Hub", Feedback: []*entity.ShopFeedback{{Rating: 5}, {Rating: 3}}}
	unrated := &entity.Shop{ID: 2, Name: "Curry Corner"}
	mocks.shopRepo.EXPECT().FindShops(ctx, repository.ShopFilter{}).Return([]*entity.Shop{rated, unrated}, nil)

	shops, err := srv.ListShops(ctx)

	require.NoError(t, err)
	require.Len(t, shops, 2)
	require.NotNil(t, shops[0].AverageRating)
	assert.Equal(t, "4.00", *shops[0].AverageRating)
	assert.Equal(t, 2, shops[0].FeedbackCount)
	assert.Nil(t, shops[1].AverageRating)
	assert.Equal(t, 0, shops[1].FeedbackCount)
}

func TestCatalogService_SearchAndRecommended(t *testing.T) {
	ctx := context.Background()
	srv, mocks := createTestCatalogService(t)
	categoryID := int64(3)

	mocks.shopRepo.EXPECT().
		FindShops(ctx, repository.ShopFilter{Text: "burger", CategoryID: &categoryID}).
		Return([]*entity.Shop{{ID: 1}}, nil)
	mocks.shopRepo.EXPECT().
		FindShops(ctx, repository.ShopFilter{RecommendedOnly: true}).
		Return([]*entity.Shop{{ID: 1}, {ID: 4}}, nil)

	found, err := srv.SearchShops(ctx, " burger ", &categoryID)
	require.NoError(t, err)
	assert.Len(t, found, 1)

	recommended, err := srv.ListRecommendedShops(ctx)
	require.NoError(t, err)
	assert.Len(t, recommended, 2)
}

func TestCatalogService_ListSpecialOffers(t *testing.T) {
	ctx := context.Background()
	srv, mocks := createTestCatalogService(t)

	shop := &entity.Shop{
		ID:       2,
		Feedback: []*entity.ShopFeedback{{Rating: 4}},
		Products: []*entity.Product{{ID: 5, Promotions: []*entity.ProductPromotion{{ID: 1, Promotion: &entity.Promotion{ID: 9, Active: true}}}}},
	}
	mocks.shopRepo.EXPECT().FindShopsWithActiveOffers(ctx).Return([]*entity.Shop{shop}, nil)

	offers, err := srv.ListSpecialOffers(ctx)

	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Len(t, offers[0].Products, 1)
	assert.Equal(t, "4.00", *offers[0].AverageRating)
}

func TestCatalogService_NotFound(t *testing.T) {
	ctx := context.Background()
	srv, mocks := createTestCatalogService(t)

	mocks.shopRepo.EXPECT().FindShopByID(ctx, int64(99)).Return(nil, repository.ErrShopNotFound)
	mocks.productRepo.EXPECT().FindProductByID(ctx, int64(99)).Return(nil, repository.ErrProductNotFound)
	mocks.productRepo.EXPECT().FindVariantByID(ctx, int64(99)).Return(nil, repository.ErrVariantNotFound)

	_, err := srv.GetShop(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)

	_, err = srv.GetProduct(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	_, err = srv.GetVariant(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrVariantNotFound)
}

func TestCatalogService_ListCategories(t *testing.T) {
	ctx := context.Background()
	srv, mocks := createTestCatalogService(t)

	mocks.categoryRepo.EXPECT().
		FindCategories(ctx, repository.CategoryFilter{Name: "piz"}).
		Return([]*entity.Category{{ID: 1, Name: "Pizza"}}, nil)

	categories, err := srv.ListCategories(ctx, repository.CategoryFilter{Name: " piz "})

	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Pizza", categories[0].Name)
}

func TestCatalogService_Products(t *testing.T) {
	ctx := context.Background()
	srv, mocks := createTestCatalogService(t)

	products := []*entity.Product{{ID: 1, ShopID: 1, Name: "Cheese Burger"}}
	mocks.productRepo.EXPECT().FindProductsByShop(ctx, int64(1)).Return(products, nil)
	mocks.productRepo.EXPECT().SearchProductsByName(ctx, "burger").Return(products, nil)

	listed, err := srv.ListProducts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, products, listed)

	searched, err := srv.SearchProducts(ctx, "burger ")
	require.NoError(t, err)
	assert.Equal(t, products, searched)
}
