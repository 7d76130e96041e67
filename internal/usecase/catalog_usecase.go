package usecase

import (
	"context"

	"quickeats/internal/domain/entity"
	"quickeats/internal/domain/repository"
)

// ShopSummary is a shop with its derived rating, the shape of every shop listing.
type ShopSummary struct {
	*entity.Shop
	entity.ShopRating
}

// NewShopSummary attaches the rating computed from the shop's feedback.
func NewShopSummary(shop *entity.Shop) *ShopSummary {
	return &ShopSummary{Shop: shop, ShopRating: entity.NewShopRating(shop.Feedback)}
}

// CatalogUsecase defines read access to shops, categories and products.
type CatalogUsecase interface {
	GetShop(ctx context.Context, id int64) (*ShopSummary, error)
	ListShops(ctx context.Context) ([]*ShopSummary, error)
	SearchShops(ctx context.Context, text string, categoryID *int64) ([]*ShopSummary, error)
	ListRecommendedShops(ctx context.Context) ([]*ShopSummary, error)
	ListSpecialOffers(ctx context.Context) ([]*ShopSummary, error)
	ListCategories(ctx context.Context, filter repository.CategoryFilter) ([]*entity.Category, error)

	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	GetVariant(ctx context.Context, id int64) (*entity.ProductVariant, error)
	ListProducts(ctx context.Context, shopID int64) ([]*entity.Product, error)
	SearchProducts(ctx context.Context, name string) ([]*entity.Product, error)
}
