package model

import (
	"time"
)

// UserModel mirrors the 'users' table. The unique index on email is what rejects duplicate registrations.
type UserModel struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"type:varchar(120);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(128);not null"`
	FirstName    string    `gorm:"type:varchar(80)"`
	LastName     string    `gorm:"type:varchar(80)"`
	Role         string    `gorm:"type:varchar(20);not null;default:'user'"`
	CreatedAt    time.Time `gorm:"not null"`

	Pets    []PetModel        `gorm:"foreignKey:UserID"`
	Devices []UserDeviceModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
