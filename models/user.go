package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a staff account. Bookings record the user who created them.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username string `gorm:"uniqueIndex;size:150" json:"username"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	FullName string `gorm:"size:255" json:"fullName"`
	Phone    string `gorm:"size:32" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`

	Roles []Role `gorm:"many2many:user_roles" json:"roles"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
