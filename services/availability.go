package services

import (
	"fmt"
	"time"

	"hotel-management/models"

	"gorm.io/gorm"
)

// AvailabilityChecker decides whether a room is free for a date range by
// looking for overlapping booking details. Two ranges overlap when
// existing.check_in_date <= checkOut AND existing.check_out_date >= checkIn,
// so ranges that merely touch at an endpoint still count as overlapping.
type AvailabilityChecker struct {
	// SkipCancelled excludes details belonging to cancelled bookings from the
	// overlap scan. Off by default: the reference behavior lets cancelled
	// bookings keep blocking their dates.
	SkipCancelled bool
}

// IsAvailable runs the overlap scan on db, which may be a transaction so the
// check shares the booking creation's isolation.
func (a AvailabilityChecker) IsAvailable(db *gorm.DB, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	q := db.Model(&models.BookingDetail{}).
		Where("booking_details.room_id = ?", roomID).
		Where("booking_details.check_in_date <= ? AND booking_details.check_out_date >= ?", checkOut, checkIn)

	if a.SkipCancelled {
		q = q.
			Joins("JOIN bookings ON bookings.id = booking_details.booking_id AND bookings.deleted_at IS NULL").
			Where("bookings.status <> ?", models.BookingCancelled)
	}

	var overlapping int64
	if err := q.Count(&overlapping).Error; err != nil {
		return false, fmt.Errorf("failed to check availability for room %d: %w", roomID, err)
	}
	return overlapping == 0, nil
}
