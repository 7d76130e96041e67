package model

import "time"

// OTPModel is the GORM-specific struct for the 'otp' table.
type OTPModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Mobile    string    `gorm:"type:varchar(20);not null;index"`
	Email     string    `gorm:"type:varchar(255)"`
	CodeHash  string    `gorm:"type:varchar(255);not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OTPModel) TableName() string {
	return "otp"
}
