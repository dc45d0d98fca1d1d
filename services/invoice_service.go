package services

import (
	"errors"
	"fmt"

	"hotel-management/models"

	"gorm.io/gorm"
)

// InvoiceService owns the checkout transition: confirmed/pending booking ->
// completed booking plus exactly one invoice.
type InvoiceService struct {
	DB *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db}
}

// Checkout flips the booking to completed and creates its invoice as one
// transaction. If either write fails the other is rolled back, so a booking
// is never observed completed without an invoice or vice versa.
func (s *InvoiceService) Checkout(bookingID uint) (*models.Invoice, error) {
	var invoiceID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := lockForUpdate(tx).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: booking %d", ErrBookingNotFound, bookingID)
			}
			return fmt.Errorf("failed to load booking: %w", err)
		}

		if booking.Status != models.BookingConfirmed && booking.Status != models.BookingPending {
			return fmt.Errorf("%w: booking is %s", ErrBookingAlreadyProcessed, booking.Status)
		}

		if err := tx.Model(&booking).Update("status", models.BookingCompleted).Error; err != nil {
			return fmt.Errorf("failed to complete booking: %w", err)
		}

		invoice := models.Invoice{
			BookingID:   booking.ID,
			TotalAmount: booking.TotalAmount,
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}

		invoiceID = invoice.ID
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetByID(invoiceID)
}

// GetByID loads an invoice with its booking relations.
func (s *InvoiceService) GetByID(invoiceID uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := s.DB.
		Preload("Booking.Customers").
		Preload("Booking.Details.Room").
		Preload("Booking.User").
		First(&invoice, invoiceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invoice %d", ErrInvoiceNotFound, invoiceID)
		}
		return nil, fmt.Errorf("failed to retrieve invoice: %w", err)
	}
	return &invoice, nil
}

// GetAllWithRelations returns every invoice, newest first.
func (s *InvoiceService) GetAllWithRelations() ([]models.Invoice, error) {
	var list []models.Invoice
	err := s.DB.
		Preload("Booking.Customers").
		Preload("Booking.Details.Room").
		Preload("Booking.User").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve invoices: %w", err)
	}
	return list, nil
}
