// Package model contains the GORM-specific structs mapped to database tables.
package model

import "time"

// CustomerModel is the GORM-specific struct for the 'customer' table.
type CustomerModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Email     string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Mobile    string  `gorm:"type:varchar(20);not null;uniqueIndex"`
	Image     *string `gorm:"type:text"`
	Active    bool    `gorm:"not null;default:true"`
	Deleted   bool    `gorm:"not null;default:false"`
	FCMToken  *string `gorm:"column:fcm_token;type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customer"
}
