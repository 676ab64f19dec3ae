package model

import (
	"time"
)

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// It represents a user's device registered for push notifications.
type UserDeviceModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	FCMToken  string `gorm:"column:fcm_token;type:varchar(255);not null;uniqueIndex"`
	DeviceID  string `gorm:"type:varchar(255);not null"`
	Platform  string `gorm:"type:varchar(50);not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
