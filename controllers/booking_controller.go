package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type StayPayload struct {
	RoomID         uint   `json:"roomId" binding:"required"`
	CheckInDate    string `json:"checkInDate" binding:"required"`
	CheckOutDate   string `json:"checkOutDate" binding:"required"`
	NumberOfGuests int    `json:"numberOfGuests" binding:"required"`
}

type CreateBookingRequest struct {
	CustomerIDs    []uint        `json:"customerIds" binding:"required"`
	BookingDetails []StayPayload `json:"bookingDetails" binding:"required"`
	UserID         uint          `json:"userId" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// parseDate accepts plain dates and full RFC3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or RFC3339", value)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.GetAllWithRelations()
	if err != nil {
		log.Printf("GetBookings error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	input := services.CreateBookingInput{
		CustomerIDs: payload.CustomerIDs,
		UserID:      payload.UserID,
	}
	for _, stay := range payload.BookingDetails {
		checkIn, err := parseDate(stay.CheckInDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		checkOut, err := parseDate(stay.CheckOutDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		input.Stays = append(input.Stays, services.StayRequest{
			RoomID:         stay.RoomID,
			CheckInDate:    checkIn,
			CheckOutDate:   checkOut,
			NumberOfGuests: stay.NumberOfGuests,
		})
	}

	booking, err := ctrl.BookingSvc.CreateBooking(input)
	if err != nil {
		log.Printf("CreateBooking error: %v", err)
		if isForeignKeyError(err) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (ctrl *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	booking, err := ctrl.BookingSvc.UpdateStatus(id, models.BookingStatus(payload.Status))
	if err != nil {
		log.Printf("UpdateBookingStatus error for booking %d: %v", id, err)
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.Delete(id); err != nil {
		log.Printf("DeleteBooking error for booking %d: %v", id, err)
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "booking deleted"})
}
