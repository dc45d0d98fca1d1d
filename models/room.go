package models

import (
	"time"

	"gorm.io/gorm"
)

// Room status values. Informational only: availability for booking is decided
// by reservation overlap, not by this field.
const (
	RoomAvailable   = "available"
	RoomOccupied    = "occupied"
	RoomMaintenance = "maintenance"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomTypeID uint   `gorm:"not null;index;column:room_type_id" json:"roomTypeId"`
	RoomName   string `gorm:"size:100;uniqueIndex" json:"roomName"`
	Status     string `gorm:"size:32;default:available" json:"status"`
	Notes      string `gorm:"type:text" json:"notes"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
