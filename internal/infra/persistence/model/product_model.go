package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'product' table.
type ProductModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	ShopID      int64           `gorm:"not null;index"`
	CategoryID  int64           `gorm:"not null;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description *string         `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Image       *string         `gorm:"type:text"`
	Active      bool            `gorm:"not null;default:true"`
	Deleted     bool            `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Variants   []ProductVariantModel   `gorm:"foreignKey:ProductID"`
	Promotions []ProductPromotionModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "product"
}

// ProductVariantModel is the GORM-specific struct for the 'product_variant' table.
type ProductVariantModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	ProductID int64           `gorm:"not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock     int             `gorm:"not null;default:0"`
	Active    bool            `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variant"
}

// PromotionModel is the GORM-specific struct for the 'promotion' table.
type PromotionModel struct {
	ID                int64            `gorm:"primaryKey;autoIncrement"`
	Title             string           `gorm:"type:varchar(255);not null"`
	Description       *string          `gorm:"type:text"`
	Code              *string          `gorm:"type:varchar(64)"`
	Image             *string          `gorm:"type:text"`
	Type              string           `gorm:"type:varchar(32);not null"`
	Value             decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	MinOrderAmount    *decimal.Decimal `gorm:"type:numeric(12,2)"`
	MaxDiscountAmount *decimal.Decimal `gorm:"type:numeric(12,2)"`
	StartDate         *time.Time
	EndDate           *time.Time
	Active            bool `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (PromotionModel) TableName() string {
	return "promotion"
}

// ProductPromotionModel is the GORM-specific struct for the 'product_promotion' join table.
type ProductPromotionModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	ProductID   int64           `gorm:"not null;index"`
	PromotionID int64           `gorm:"not null;index"`
	Active      bool            `gorm:"not null;default:true"`
	Promotion   *PromotionModel `gorm:"foreignKey:PromotionID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductPromotionModel) TableName() string {
	return "product_promotion"
}
