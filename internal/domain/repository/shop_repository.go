package repository

import (
	"context"

	"quickeats/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrShopNotFound is returned when no non-deleted shop matches.
var ErrShopNotFound = errors.New("shop not found")

// ShopFilter narrows shop listings. Zero values mean "no restriction".
type ShopFilter struct {
	Text            string // Case-insensitive match on name, address, description, mobile or email.
	CategoryID      *int64 // Only shops linked to this category.
	RecommendedOnly bool
}

// ShopRepository defines read access to shops. Every method excludes deleted shops
// and loads feedback and categories unless stated otherwise.
type ShopRepository interface {
	// FindShopByID retrieves one shop.
	FindShopByID(ctx context.Context, id int64) (*entity.Shop, error)

	// FindShops lists shops matching filter.
	FindShops(ctx context.Context, filter ShopFilter) ([]*entity.Shop, error)

	// FindShopsWithActiveOffers lists shops with at least one product in an active
	// promotion. Products are loaded with only their active promotions.
	FindShopsWithActiveOffers(ctx context.Context) ([]*entity.Shop, error)

	// FindShopPushToken returns the shop's push token, or "" when it has none.
	FindShopPushToken(ctx context.Context, id int64) (string, error)
}

// CategoryFilter narrows category listings.
type CategoryFilter struct {
	ID    *int64
	Name  string // Substring match.
	Image string // Substring match.
}

// CategoryRepository defines read access to categories.
type CategoryRepository interface {
	// FindCategories lists categories matching filter.
	FindCategories(ctx context.Context, filter CategoryFilter) ([]*entity.Category, error)
}
