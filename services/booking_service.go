package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-management/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StayRequest is one requested room-stay inside a booking.
type StayRequest struct {
	RoomID         uint
	CheckInDate    time.Time
	CheckOutDate   time.Time
	NumberOfGuests int
}

// CreateBookingInput carries everything needed to assemble a booking.
type CreateBookingInput struct {
	CustomerIDs []uint
	Stays       []StayRequest
	UserID      uint
}

// BookingService assembles bookings: catalog lookups, availability checks,
// pricing, and the transactional write of details plus aggregate.
type BookingService struct {
	DB           *gorm.DB
	Catalog      *CatalogService
	Availability AvailabilityChecker
}

func NewBookingService(db *gorm.DB, catalog *CatalogService, availability AvailabilityChecker) *BookingService {
	return &BookingService{DB: db, Catalog: catalog, Availability: availability}
}

// lockForUpdate adds a row lock where the dialect supports it. SQLite has no
// FOR UPDATE syntax; its single-writer lock covers the same window.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// CreateBooking validates every requested stay, prices it, and persists the
// details and the booking aggregate in one transaction. Any per-stay failure
// aborts the whole operation; nothing is left behind. Room rows are locked
// for the duration so two concurrent requests cannot both pass the
// availability check for the same room.
func (s *BookingService) CreateBooking(input CreateBookingInput) (*models.Booking, error) {
	if len(input.CustomerIDs) == 0 {
		return nil, fmt.Errorf("%w: customerIds must contain at least one customer", ErrValidationFailed)
	}
	if len(input.Stays) == 0 {
		return nil, fmt.Errorf("%w: at least one stay is required", ErrValidationFailed)
	}
	for _, stay := range input.Stays {
		if stay.NumberOfGuests <= 0 {
			return nil, fmt.Errorf("%w: numberOfGuests must be positive", ErrValidationFailed)
		}
	}

	customers, err := s.Catalog.ResolveCustomers(input.CustomerIDs)
	if err != nil {
		return nil, err
	}

	foreignCoeff, _ := ForeignCoefficient(customers)

	var bookingID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var (
			details     []models.BookingDetail
			totalAmount float64
			roomIDs     []uint
		)

		for _, stay := range input.Stays {
			room, err := s.Catalog.ResolveRoom(lockForUpdate(tx), stay.RoomID)
			if err != nil {
				return err
			}

			if !stay.CheckOutDate.After(stay.CheckInDate) {
				return fmt.Errorf("%w: check-out date must be after check-in date", ErrInvalidDateRange)
			}

			available, err := s.Availability.IsAvailable(tx, stay.RoomID, stay.CheckInDate, stay.CheckOutDate)
			if err != nil {
				return err
			}
			if !available {
				return fmt.Errorf("%w: room %d for the selected dates", ErrRoomUnavailable, stay.RoomID)
			}

			// Earlier stays of this request are not persisted yet, so the scan
			// above cannot see them; apply the same closed-endpoint predicate
			// against the stays accepted so far.
			for _, accepted := range details {
				if accepted.RoomID == stay.RoomID &&
					!accepted.CheckInDate.After(stay.CheckOutDate) &&
					!accepted.CheckOutDate.Before(stay.CheckInDate) {
					return fmt.Errorf("%w: room %d for the selected dates", ErrRoomUnavailable, stay.RoomID)
				}
			}

			quote := QuoteStay(room.RoomType, stay.NumberOfGuests, Nights(stay.CheckInDate, stay.CheckOutDate), foreignCoeff)

			detail := models.BookingDetail{
				RoomID:         stay.RoomID,
				NumberOfGuests: stay.NumberOfGuests,
				CheckInDate:    stay.CheckInDate,
				CheckOutDate:   stay.CheckOutDate,
				RoomPrice:      quote.RoomPrice,
				TotalPrice:     quote.TotalPrice,
			}
			if err := detail.SetFees(quote.Fees); err != nil {
				return fmt.Errorf("failed to encode additional fees: %w", err)
			}

			details = append(details, detail)
			totalAmount += quote.TotalPrice
			roomIDs = append(roomIDs, stay.RoomID)
		}

		booking := models.Booking{
			UserID:      input.UserID,
			TotalAmount: totalAmount,
			Status:      models.BookingConfirmed,
			Customers:   customers,
		}
		// Omit keeps gorm from upserting the customer rows; only the join
		// table rows are written.
		if err := tx.Omit("Customers.*").Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		for i := range details {
			details[i].BookingID = booking.ID
		}
		if err := tx.Create(&details).Error; err != nil {
			return fmt.Errorf("failed to create booking details: %w", err)
		}

		if err := tx.Model(&models.Room{}).
			Where("id IN ?", roomIDs).
			Update("status", models.RoomOccupied).Error; err != nil {
			return fmt.Errorf("failed to update room status: %w", err)
		}

		bookingID = booking.ID
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetByID(bookingID)
}

// GetByID loads a booking with all relations.
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.
		Preload("Customers.CustomerType").
		Preload("Details.Room.RoomType").
		Preload("User").
		First(&booking, bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrBookingNotFound, bookingID)
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &booking, nil
}

// GetAllWithRelations returns every booking, newest first.
func (s *BookingService) GetAllWithRelations() ([]models.Booking, error) {
	var list []models.Booking
	err := s.DB.
		Preload("Customers").
		Preload("Details.Room.RoomType").
		Preload("User").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	for i := range list {
		if list[i].Details == nil {
			list[i].Details = []models.BookingDetail{}
		}
	}
	return list, nil
}

// UpdateStatus applies one state-machine transition. Cancelling releases the
// booked rooms back to available; the financial totals stay untouched as a
// historical record.
func (s *BookingService) UpdateStatus(bookingID uint, next models.BookingStatus) (*models.Booking, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := lockForUpdate(tx).Preload("Details").First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: booking %d", ErrBookingNotFound, bookingID)
			}
			return err
		}

		if !booking.Status.CanTransitionTo(next) {
			if booking.Status == models.BookingCompleted || booking.Status == models.BookingCancelled {
				return fmt.Errorf("%w: booking is %s", ErrBookingAlreadyProcessed, booking.Status)
			}
			return fmt.Errorf("%w: cannot move %s booking to %q", ErrInvalidStatus, booking.Status, next)
		}

		if next == models.BookingCancelled {
			if err := releaseRooms(tx, booking.Details); err != nil {
				return err
			}
		}

		if err := tx.Model(&booking).Update("status", next).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetByID(bookingID)
}

// Delete removes a booking and its details, releasing the rooms.
func (s *BookingService) Delete(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := lockForUpdate(tx).Preload("Details").First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: booking %d", ErrBookingNotFound, bookingID)
			}
			return err
		}

		if err := releaseRooms(tx, booking.Details); err != nil {
			return err
		}
		if err := tx.Where("booking_id = ?", booking.ID).Delete(&models.BookingDetail{}).Error; err != nil {
			return fmt.Errorf("failed to delete booking details: %w", err)
		}
		if err := tx.Delete(&booking).Error; err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}
		return nil
	})
}

func releaseRooms(tx *gorm.DB, details []models.BookingDetail) error {
	if len(details) == 0 {
		return nil
	}
	roomIDs := make([]uint, 0, len(details))
	for _, d := range details {
		roomIDs = append(roomIDs, d.RoomID)
	}
	if err := tx.Model(&models.Room{}).
		Where("id IN ?", roomIDs).
		Update("status", models.RoomAvailable).Error; err != nil {
		return fmt.Errorf("failed to release rooms: %w", err)
	}
	return nil
}
