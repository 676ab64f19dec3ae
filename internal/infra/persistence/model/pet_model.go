package model

import (
	"time"
)

// PetModel mirrors the 'pets' table. UserID references users.id.
type PetModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Species   string    `gorm:"type:varchar(50);not null"`
	Breed     *string   `gorm:"type:varchar(100)"`
	Age       *int
	Weight    *float64
	CreatedAt time.Time `gorm:"not null"`

	Readings []SensorReadingModel `gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PetModel) TableName() string {
	return "pets"
}
