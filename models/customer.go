package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName       string `gorm:"size:255;not null" json:"fullName"`
	IDNumber       string `gorm:"size:64;uniqueIndex;column:id_number" json:"idNumber"`
	Address        string `gorm:"size:255" json:"address"`
	Phone          string `gorm:"size:32;uniqueIndex" json:"phone"`
	CustomerTypeID uint   `gorm:"not null;index" json:"customerTypeId"`

	CustomerType CustomerType `gorm:"foreignKey:CustomerTypeID" json:"customerType,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
