package models

import (
	"time"
)

// Invoice is the terminal record of a completed booking. The unique index on
// BookingID guarantees at most one invoice per booking even if checkout is
// retried.
type Invoice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID   uint    `gorm:"not null;uniqueIndex;column:booking_id" json:"bookingId"`
	TotalAmount float64 `gorm:"not null" json:"totalAmount"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
