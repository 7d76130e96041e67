package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeModel is the GORM-specific struct for the 'income' table.
type IncomeModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;uniqueIndex"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (IncomeModel) TableName() string {
	return "income"
}

// ShopWalletModel is the GORM-specific struct for the 'shop_wallet' table.
type ShopWalletModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	ShopID    int64           `gorm:"not null;index"`
	OrderID   int64           `gorm:"not null;uniqueIndex"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopWalletModel) TableName() string {
	return "shop_wallet"
}

// DeliveryFeeModel is the GORM-specific struct for the 'delivery_fee' table.
// The table holds a single row.
type DeliveryFeeModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	BaseFee   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PerKm     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	FixedTime int             `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryFeeModel) TableName() string {
	return "delivery_fee"
}
