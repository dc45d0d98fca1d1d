package services

import "errors"

// Domain errors surfaced to controllers. Wrapped with fmt.Errorf("%w: ...")
// where extra context helps, so handlers match with errors.Is.
var (
	ErrValidationFailed        = errors.New("validation_failed")
	ErrRoomNotFound            = errors.New("room_not_found")
	ErrRoomTypeNotFound        = errors.New("room_type_not_found")
	ErrRoomTypeInUse           = errors.New("room_type_in_use")
	ErrCustomerNotFound        = errors.New("customer_not_found")
	ErrInvalidDateRange        = errors.New("invalid_date_range")
	ErrRoomUnavailable         = errors.New("room_unavailable")
	ErrBookingNotFound         = errors.New("booking_not_found")
	ErrBookingAlreadyProcessed = errors.New("booking_already_processed")
	ErrInvalidStatus           = errors.New("invalid_status")
	ErrInvoiceNotFound         = errors.New("invoice_not_found")
)
