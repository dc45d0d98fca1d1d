package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomType holds the per-night rate and occupancy rules shared by its rooms.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name          string  `gorm:"size:150;uniqueIndex" json:"name"`
	MaxOccupancy  int     `gorm:"not null" json:"maxOccupancy"`
	SurchargeRate float64 `gorm:"default:0" json:"surchargeRate"`
	Price         float64 `gorm:"not null" json:"price"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
