package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdditionalFee is one surcharge line on a booking detail.
type AdditionalFee struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// BookingDetail is one reserved room-stay inside a booking. RoomPrice and
// TotalPrice are snapshots taken at booking time; later rate changes never
// touch existing details.
type BookingDetail struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID      uint      `gorm:"index;column:booking_id" json:"booking_id"`
	RoomID         uint      `gorm:"not null;index;column:room_id" json:"roomId"`
	NumberOfGuests int       `gorm:"not null" json:"numberOfGuests"`
	CheckInDate    time.Time `gorm:"not null;column:check_in_date" json:"checkInDate"`
	CheckOutDate   time.Time `gorm:"not null;column:check_out_date" json:"checkOutDate"`

	RoomPrice      float64        `gorm:"not null" json:"roomPrice"`
	AdditionalFees datatypes.JSON `gorm:"column:additional_fees" json:"additionalFees,omitempty"`
	TotalPrice     float64        `gorm:"not null" json:"totalPrice"`

	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (d *BookingDetail) SetFees(fees []AdditionalFee) error {
	raw, err := json.Marshal(fees)
	if err != nil {
		return err
	}
	d.AdditionalFees = datatypes.JSON(raw)
	return nil
}

func (d BookingDetail) Fees() ([]AdditionalFee, error) {
	if len(d.AdditionalFees) == 0 {
		return nil, nil
	}
	var fees []AdditionalFee
	if err := json.Unmarshal(d.AdditionalFees, &fees); err != nil {
		return nil, err
	}
	return fees, nil
}
