package postgres

import (
	"context"

	"quickeats/internal/domain/entity"
	"quickeats/internal/domain/repository"
	"quickeats/internal/errors"
	"quickeats/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) withVariants(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("deleted = ?", false).
		Order("id")
}

// FindProductByID retrieves a product with its variants.
func (repo *productRepository) FindProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.withVariants(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindProductsByShop lists a shop's products.
func (repo *productRepository) FindProductsByShop(ctx context.Context, shopID int64) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	if err := repo.withVariants(ctx).Where("shop_id = ?", shopID).Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by shop")
	}

	return toProductDomains(productMs), nil
}

// SearchProductsByName lists products whose name contains name.
func (repo *productRepository) SearchProductsByName(ctx context.Context, name string) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	err := repo.withVariants(ctx).Where("LOWER(name)"+likeEscaped, containsPattern(name)).Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return toProductDomains(productMs), nil
}

// FindVariantByID retrieves a single variant.
func (repo *productRepository) FindVariantByID(ctx context.Context, id int64) (*entity.ProductVariant, error) {
	var variantM model.ProductVariantModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&variantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find product variant by id")
	}

	return toVariantDomain(&variantM), nil
}

// --- Mapper Functions ---

func toProductDomains(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, p := range data {
		products = append(products, toProductDomain(p))
	}

	return products
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:          data.ID,
		ShopID:      data.ShopID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		Active:      data.Active,
		Deleted:     data.Deleted,
	}
	for i := range data.Variants {
		product.Variants = append(product.Variants, toVariantDomain(&data.Variants[i]))
	}
	for i := range data.Promotions {
		pp := &data.Promotions[i]
		product.Promotions = append(product.Promotions, &entity.ProductPromotion{
			ID:        pp.ID,
			Promotion: toPromotionDomain(pp.Promotion),
		})
	}

	return product
}

func toVariantDomain(data *model.ProductVariantModel) *entity.ProductVariant {
	if data == nil {
		return nil
	}

	return &entity.ProductVariant{
		ID:        data.ID,
		ProductID: data.ProductID,
		Name:      data.Name,
		Price:     data.Price,
		Stock:     data.Stock,
		Active:    data.Active,
	}
}

func toPromotionDomain(data *model.PromotionModel) *entity.Promotion {
	if data == nil {
		return nil
	}

	return &entity.Promotion{
		ID:                data.ID,
		Title:             data.Title,
		Description:       data.Description,
		Code:              data.Code,
		Image:             data.Image,
		Type:              data.Type,
		Value:             data.Value,
		MinOrderAmount:    data.MinOrderAmount,
		MaxDiscountAmount: data.MaxDiscountAmount,
		StartDate:         data.StartDate,
		EndDate:           data.EndDate,
		Active:            data.Active,
	}
}
