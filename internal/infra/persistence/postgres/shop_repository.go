package postgres

import (
	"context"
	"strings"

	"quickeats/internal/domain/entity"
	"quickeats/internal/domain/repository"
	"quickeats/internal/errors"
	"quickeats/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// shopRepository implements the domain.ShopRepository interface using GORM.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// listing scopes a query to live shops with feedback and categories loaded.
func (repo *shopRepository) listing(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Feedback", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Categories").
		Preload("Categories.Category").
		Where("deleted = ?", false).
		Order("id")
}

// FindShopByID retrieves one shop with feedback and categories.
func (repo *shopRepository) FindShopByID(ctx context.Context, id int64) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := repo.listing(ctx).Where("id = ?", id).First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}

	return toShopDomain(&shopM), nil
}

// FindShops lists shops matching filter.
func (repo *shopRepository) FindShops(ctx context.Context, filter repository.ShopFilter) ([]*entity.Shop, error) {
	query := repo.listing(ctx)

	if text := strings.TrimSpace(filter.Text); text != "" {
		pattern := containsPattern(text)
		query = query.Where(
			"(LOWER(name)"+likeEscaped+" OR LOWER(address)"+likeEscaped+" OR LOWER(COALESCE(description, ''))"+likeEscaped+
				" OR LOWER(mobile)"+likeEscaped+" OR LOWER(email)"+likeEscaped+")",
			pattern, pattern, pattern, pattern, pattern,
		)
	}
	if filter.CategoryID != nil {
		query = query.Where("id IN (?)",
			repo.db.Model(&model.ShopCategoryModel{}).Select("shop_id").Where("category_id = ?", *filter.CategoryID),
		)
	}
	if filter.RecommendedOnly {
		query = query.Where("recommended = ?", true)
	}

	var shopMs []*model.ShopModel
	if err := query.Find(&shopMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return toShopDomains(shopMs), nil
}

// FindShopsWithActiveOffers lists shops having a product in an active promotion.
func (repo *shopRepository) FindShopsWithActiveOffers(ctx context.Context) ([]*entity.Shop, error) {
	activePromotions := repo.db.Model(&model.PromotionModel{}).Select("id").Where("active = ?", true)
	offeredProducts := repo.db.Model(&model.ProductPromotionModel{}).Select("product_id").
		Where("active = ? AND promotion_id IN (?)", true, activePromotions)
	offeringShops := repo.db.Model(&model.ProductModel{}).Select("shop_id").
		Where("deleted = ? AND id IN (?)", false, offeredProducts)

	var shopMs []*model.ShopModel
	err := repo.listing(ctx).
		Preload("Products", "deleted = ?", false).
		Preload("Products.Promotions", "active = ? AND promotion_id IN (?)", true, activePromotions).
		Preload("Products.Promotions.Promotion").
		Where("id IN (?)", offeringShops).
		Find(&shopMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops with offers")
	}

	return toShopDomains(shopMs), nil
}

// FindShopPushToken returns the shop's push token.
func (repo *shopRepository) FindShopPushToken(ctx context.Context, id int64) (string, error) {
	var shopM model.ShopModel
	err := repo.db.WithContext(ctx).Select("id", "fcm_token").Where("id = ?", id).First(&shopM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrShopNotFound
		}

		return "", errors.Wrap(err, "failed to find shop push token")
	}

	if shopM.FCMToken == nil {
		return "", nil
	}

	return *shopM.FCMToken, nil
}

// categoryRepository implements the domain.CategoryRepository interface using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// FindCategories lists categories matching filter.
func (repo *categoryRepository) FindCategories(ctx context.Context, filter repository.CategoryFilter) ([]*entity.Category, error) {
	query := repo.db.WithContext(ctx).Order("id")
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Name != "" {
		query = query.Where("LOWER(name)"+likeEscaped, containsPattern(filter.Name))
	}
	if filter.Image != "" {
		query = query.Where("image"+likeEscaped, "%"+likeReplacer.Replace(filter.Image)+"%")
	}

	var categoryMs []*model.CategoryModel
	if err := query.Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for _, c := range categoryMs {
		categories = append(categories, toCategoryDomain(c))
	}

	return categories, nil
}

// likeEscaped is a LIKE comparison whose pattern escapes wildcards with a backslash.
const likeEscaped = ` LIKE ? ESCAPE '\'`

var likeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a lower-cased LIKE pattern matching text literally
// anywhere. Matching is case-insensitive on both Postgres and SQLite.
func containsPattern(text string) string {
	return "%" + likeReplacer.Replace(strings.ToLower(text)) + "%"
}

// --- Mapper Functions ---

func toShopDomains(data []*model.ShopModel) []*entity.Shop {
	shops := make([]*entity.Shop, 0, len(data))
	for _, s := range data {
		shops = append(shops, toShopDomain(s))
	}

	return shops
}

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	shop := &entity.Shop{
		ID:          data.ID,
		Name:        data.Name,
		Email:       data.Email,
		Mobile:      data.Mobile,
		Address:     data.Address,
		Description: data.Description,
		OpeningTime: data.OpeningTime,
		ClosingTime: data.ClosingTime,
		ShopLogo:    data.ShopLogo,
		Banner:      data.Banner,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Recommended: data.Recommended,
		Active:      data.Active,
		Deleted:     data.Deleted,
		FCMToken:    data.FCMToken,
	}

	for i := range data.Feedback {
		f := &data.Feedback[i]
		shop.Feedback = append(shop.Feedback, &entity.ShopFeedback{
			ID:         f.ID,
			ShopID:     f.ShopID,
			CustomerID: f.CustomerID,
			OrderID:    f.OrderID,
			Rating:     f.Rating,
			Comment:    f.Comment,
			CreatedAt:  f.CreatedAt,
		})
	}
	for i := range data.Categories {
		c := &data.Categories[i]
		shop.Categories = append(shop.Categories, &entity.ShopCategory{
			ID:         c.ID,
			CategoryID: c.CategoryID,
			Category:   toCategoryDomain(c.Category),
		})
	}
	for i := range data.Products {
		shop.Products = append(shop.Products, toProductDomain(&data.Products[i]))
	}

	return shop
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Image:       data.Image,
	}
}
