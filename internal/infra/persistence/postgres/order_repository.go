package postgres

import (
	"context"

	"quickeats/internal/domain/entity"
	"quickeats/internal/domain/repository"
	"quickeats/internal/errors"
	"quickeats/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder inserts the order row only; lines are written by CreateOrderLines.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("Lines").Create(orderM).Error; err != nil {
		return translateWriteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// CreateOrderLines inserts all lines in one statement.
func (repo *orderRepository) CreateOrderLines(ctx context.Context, lines []*entity.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	lineMs := make([]*model.OrderLineModel, 0, len(lines))
	for _, l := range lines {
		lineMs = append(lineMs, fromOrderLineDomain(l))
	}

	if err := repo.db.WithContext(ctx).Omit("Product", "Variant").Create(&lineMs).Error; err != nil {
		return translateWriteError(err, "failed to create order lines")
	}

	for i, l := range lines {
		l.ID = lineMs[i].ID
	}

	return nil
}

func (repo *orderRepository) withLines(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Lines.Product").
		Preload("Lines.Variant").
		Order("created_at DESC").
		Order("id DESC")
}

// FindOrdersByCustomer lists a customer's orders, newest first.
func (repo *orderRepository) FindOrdersByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel
	if err := repo.withLines(ctx).Where("customer_id = ?", customerID).Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomains(orderMs), nil
}

// SearchOrdersByCustomer lists a customer's orders containing a product or
// variant whose name matches text.
func (repo *orderRepository) SearchOrdersByCustomer(ctx context.Context, customerID int64, text string) ([]*entity.Order, error) {
	pattern := containsPattern(text)
	matchingProducts := repo.db.Model(&model.ProductModel{}).Select("id").Where("LOWER(name)"+likeEscaped, pattern)
	matchingVariants := repo.db.Model(&model.ProductVariantModel{}).Select("id").Where("LOWER(name)"+likeEscaped, pattern)
	matchingOrders := repo.db.Model(&model.OrderLineModel{}).Select("order_id").
		Where("product_id IN (?) OR product_variant_id IN (?)", matchingProducts, matchingVariants)

	var orderMs []*model.OrderModel
	err := repo.withLines(ctx).
		Where("customer_id = ? AND id IN (?)", customerID, matchingOrders).
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search orders")
	}

	return toOrderDomains(orderMs), nil
}

// --- Mapper Functions ---

func toOrderDomains(data []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(data))
	for _, o := range data {
		orders = append(orders, toOrderDomain(o))
	}

	return orders
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:                  data.ID,
		CustomerID:          data.CustomerID,
		ShopID:              data.ShopID,
		PromotionID:         data.PromotionID,
		TotalPrice:          data.TotalPrice,
		DeliveryFee:         data.DeliveryFee,
		TipAmount:           data.TipAmount,
		Status:              entity.OrderStatus(data.Status),
		PaymentType:         entity.PaymentType(data.Type),
		Address:             data.Address,
		DriverNote:          data.DriverNote,
		StreetOrApartmentNo: data.StreetOrApartmentNo,
		DeliveryInstruction: data.DeliveryInstruction,
		SpatialInstruction:  data.SpatialInstruction,
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		DeliveryTime:        data.DeliveryTime,
		CreatedAt:           data.CreatedAt,
	}
	for i := range data.Lines {
		l := &data.Lines[i]
		order.Lines = append(order.Lines, &entity.OrderLine{
			ID:        l.ID,
			OrderID:   l.OrderID,
			ProductID: l.ProductID,
			VariantID: l.VariantID,
			Quantity:  l.Quantity,
			Price:     l.Price,
			Product:   toProductDomain(l.Product),
			Variant:   toVariantDomain(l.Variant),
		})
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:                  data.ID,
		CustomerID:          data.CustomerID,
		ShopID:              data.ShopID,
		PromotionID:         data.PromotionID,
		TotalPrice:          data.TotalPrice,
		DeliveryFee:         data.DeliveryFee,
		TipAmount:           data.TipAmount,
		Status:              string(data.Status),
		Type:                string(data.PaymentType),
		Address:             data.Address,
		DriverNote:          data.DriverNote,
		StreetOrApartmentNo: data.StreetOrApartmentNo,
		DeliveryInstruction: data.DeliveryInstruction,
		SpatialInstruction:  data.SpatialInstruction,
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		DeliveryTime:        data.DeliveryTime,
		CreatedAt:           data.CreatedAt,
	}
}

func fromOrderLineDomain(data *entity.OrderLine) *model.OrderLineModel {
	return &model.OrderLineModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		VariantID: data.VariantID,
		Quantity:  data.Quantity,
		Price:     data.Price,
	}
}
