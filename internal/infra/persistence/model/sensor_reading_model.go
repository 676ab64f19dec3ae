package model

import (
	"time"
)

// SensorReadingModel mirrors the 'sensor_data' table.
type SensorReadingModel struct {
	ID            uint      `gorm:"primaryKey"`
	PetID         uint      `gorm:"not null;index:idx_sensor_data_pet_time,priority:1"`
	Timestamp     time.Time `gorm:"not null;index:idx_sensor_data_pet_time,priority:2,sort:desc"`
	HeartRate     int       `gorm:"not null"`
	Temperature   float64   `gorm:"not null"`
	SpO2          int       `gorm:"column:spo2;not null"`
	ActivityLevel float64   `gorm:"not null"`
	Latitude      *float64
	Longitude     *float64
	BatteryLevel  *int
	CollarID      string `gorm:"type:varchar(50)"`
}

// TableName explicitly sets the table name for GORM.
func (SensorReadingModel) TableName() string {
	return "sensor_data"
}
