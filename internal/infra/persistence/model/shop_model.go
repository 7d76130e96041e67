package model

import "time"

// ShopModel is the GORM-specific struct for the 'shop' table.
type ShopModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Email       string  `gorm:"type:varchar(255);not null"`
	Mobile      string  `gorm:"type:varchar(20);not null"`
	Address     string  `gorm:"type:text;not null"`
	Description *string `gorm:"type:text"`
	OpeningTime *string `gorm:"type:varchar(16)"`
	ClosingTime *string `gorm:"type:varchar(16)"`
	ShopLogo    *string `gorm:"type:text"`
	Banner      *string `gorm:"type:text"`
	Latitude    string  `gorm:"type:varchar(32);not null"`
	Longitude   string  `gorm:"type:varchar(32);not null"`
	Recommended bool    `gorm:"not null;default:false"`
	Active      bool    `gorm:"not null;default:true"`
	Deleted     bool    `gorm:"not null;default:false;index"`
	FCMToken    *string `gorm:"column:fcm_token;type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Feedback   []ShopFeedbackModel `gorm:"foreignKey:ShopID"`
	Categories []ShopCategoryModel `gorm:"foreignKey:ShopID"`
	Products   []ProductModel      `gorm:"foreignKey:ShopID"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shop"
}

// ShopFeedbackModel is the GORM-specific struct for the 'shop_feedback' table.
type ShopFeedbackModel struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	ShopID     int64   `gorm:"not null;index"`
	CustomerID int64   `gorm:"not null"`
	OrderID    *int64  `gorm:"index"`
	Rating     int     `gorm:"not null"`
	Comment    *string `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopFeedbackModel) TableName() string {
	return "shop_feedback"
}

// ShopCategoryModel is the GORM-specific struct for the 'shop_category' join table.
type ShopCategoryModel struct {
	ID         int64          `gorm:"primaryKey;autoIncrement"`
	ShopID     int64          `gorm:"not null;index"`
	CategoryID int64          `gorm:"not null;index"`
	Category   *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ShopCategoryModel) TableName() string {
	return "shop_category"
}

// CategoryModel is the GORM-specific struct for the 'category' table.
type CategoryModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`
	Image       *string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "category"
}
