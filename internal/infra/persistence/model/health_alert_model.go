package model

import (
	"time"
)

// HealthAlertModel is the GORM-specific struct for the 'health_alerts' table.
// TotalSent and TotalFailed are filled in by the worker once delivery finishes.
type HealthAlertModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	PetID       uint   `gorm:"not null;index"`
	Source      string `gorm:"type:varchar(20);not null"`
	Condition   string `gorm:"type:text;not null"`
	Message     string `gorm:"type:text;not null"`
	TotalSent   int    `gorm:"not null;default:0"`
	TotalFailed int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	DeliveredAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (HealthAlertModel) TableName() string {
	return "health_alerts"
}
