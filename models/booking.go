package models

import (
	"time"

	"gorm.io/gorm"
)

// BookingStatus is a closed set; use CanTransitionTo before assigning so
// illegal moves (e.g. completed -> confirmed) never reach the database.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the state machine allows current -> next.
// completed and cancelled are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if !next.Valid() || next == s {
		return false
	}
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingCompleted || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCompleted || next == BookingCancelled
	default:
		return false
	}
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID      uint          `gorm:"not null;index" json:"userId"`
	TotalAmount float64       `gorm:"not null" json:"totalAmount"`
	Status      BookingStatus `gorm:"size:32;default:confirmed" json:"status"`

	Customers []Customer      `gorm:"many2many:booking_customers" json:"customers"`
	Details   []BookingDetail `gorm:"foreignKey:BookingID" json:"bookingDetails"`
	User      User            `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
