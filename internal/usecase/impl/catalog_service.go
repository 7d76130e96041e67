package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "quickeats/internal/delivery/context"
	"quickeats/internal/domain/entity"
	domainerrors "quickeats/internal/domain/errors"
	"quickeats/internal/domain/repository"
	"quickeats/internal/errors"
	"quickeats/internal/usecase"

	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	shopRepo     repository.ShopRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ShopRepo     repository.ShopRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		shopRepo:     params.ShopRepo,
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) GetShop(ctx context.Context, id int64) (*usecase.ShopSummary, error) {
	shop, err := srv.shopRepo.FindShopByID(ctx, id)
	if errors.Is(err, repository.ErrShopNotFound) {
		return nil, domainerrors.ErrShopNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	return usecase.NewShopSummary(shop), nil
}

func (srv *catalogService) ListShops(ctx context.Context) ([]*usecase.ShopSummary, error) {
	return srv.findShops(ctx, repository.ShopFilter{})
}

// SearchShops matches text against the shop's contact and description fields.
func (srv *catalogService) SearchShops(ctx context.Context, text string, categoryID *int64) ([]*usecase.ShopSummary, error) {
	return srv.findShops(ctx, repository.ShopFilter{Text: strings.TrimSpace(text), CategoryID: categoryID})
}

func (srv *catalogService) ListRecommendedShops(ctx context.Context) ([]*usecase.ShopSummary, error) {
	return srv.findShops(ctx, repository.ShopFilter{RecommendedOnly: true})
}

// ListSpecialOffers lists shops running at least one active promotion.
func (srv *catalogService) ListSpecialOffers(ctx context.Context) ([]*usecase.ShopSummary, error) {
	shops, err := srv.shopRepo.FindShopsWithActiveOffers(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list special offers", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list special offers")
	}

	return toShopSummaries(shops), nil
}

func (srv *catalogService) ListCategories(ctx context.Context, filter repository.CategoryFilter) ([]*entity.Category, error) {
	filter.Name = strings.TrimSpace(filter.Name)
	filter.Image = strings.TrimSpace(filter.Image)

	categories, err := srv.categoryRepo.FindCategories(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *catalogService) GetVariant(ctx context.Context, id int64) (*entity.ProductVariant, error) {
	variant, err := srv.productRepo.FindVariantByID(ctx, id)
	if errors.Is(err, repository.ErrVariantNotFound) {
		return nil, domainerrors.ErrVariantNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product variant")
	}

	return variant, nil
}

func (srv *catalogService) ListProducts(ctx context.Context, shopID int64) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindProductsByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) SearchProducts(ctx context.Context, name string) ([]*entity.Product, error) {
	products, err := srv.productRepo.SearchProductsByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

func (srv *catalogService) findShops(ctx context.Context, filter repository.ShopFilter) ([]*usecase.ShopSummary, error) {
	shops, err := srv.shopRepo.FindShops(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list shops", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list shops")
	}

	return toShopSummaries(shops), nil
}

func toShopSummaries(shops []*entity.Shop) []*usecase.ShopSummary {
	summaries := make([]*usecase.ShopSummary, 0, len(shops))
	for _, shop := range shops {
		summaries = append(summaries, usecase.NewShopSummary(shop))
	}

	return summaries
}
