package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID                  int64 `gorm:"primaryKey;autoIncrement"`
	CustomerID          int64 `gorm:"not null;index"`
	ShopID              int64 `gorm:"not null;index"`
	PromotionID         *int64
	TotalPrice          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TipAmount           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Status              string          `gorm:"type:varchar(32);not null"`
	Type                string          `gorm:"type:varchar(8);not null"`
	Address             string          `gorm:"type:text;not null"`
	DriverNote          *string         `gorm:"type:text"`
	StreetOrApartmentNo *string         `gorm:"type:text"`
	DeliveryInstruction *string         `gorm:"type:text"`
	SpatialInstruction  *string         `gorm:"type:text"`
	Latitude            float64         `gorm:"not null"`
	Longitude           float64         `gorm:"not null"`
	DeliveryTime        time.Time       `gorm:"not null"`
	CreatedAt           time.Time       `gorm:"index"`
	UpdatedAt           time.Time

	Lines []OrderLineModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel is the GORM-specific struct for the 'order_product' table.
type OrderLineModel struct {
	ID        int64                `gorm:"primaryKey;autoIncrement"`
	OrderID   int64                `gorm:"not null;index"`
	ProductID int64                `gorm:"not null;index"`
	VariantID *int64               `gorm:"column:product_variant_id"`
	Quantity  int                  `gorm:"not null"`
	Price     decimal.Decimal      `gorm:"type:numeric(12,2);not null"`
	Product   *ProductModel        `gorm:"foreignKey:ProductID"`
	Variant   *ProductVariantModel `gorm:"foreignKey:VariantID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_product"
}
