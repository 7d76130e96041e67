package repository

import (
	"context"

	"quickeats/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when no non-deleted product matches.
	ErrProductNotFound = errors.New("product not found")
	// ErrVariantNotFound is returned when no variant matches.
	ErrVariantNotFound = errors.New("product variant not found")
)

// ProductRepository defines read access to products and their variants.
type ProductRepository interface {
	// FindProductByID retrieves a product with its variants.
	FindProductByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindProductsByShop lists a shop's products with their variants.
	FindProductsByShop(ctx context.Context, shopID int64) ([]*entity.Product, error)

	// SearchProductsByName lists products whose name contains name, case-insensitively.
	SearchProductsByName(ctx context.Context, name string) ([]*entity.Product, error)

	// FindVariantByID retrieves a single variant.
	FindVariantByID(ctx context.Context, id int64) (*entity.ProductVariant, error)
}
