package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/itu-itis21-taflan21/RentalApp/internal/booking"
	"github.com/itu-itis21-taflan21/RentalApp/internal/models"
)

type CreateBookingInput struct {
	ItemID    uint      `json:"itemId" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
	Notes     string    `json:"notes"`
}

type UpdateBookingStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected active completed disputed"`
}

type DamagePhotosInput struct {
	Photos    []string `json:"photos" binding:"required,min=1"`
	PhaseType string   `json:"phaseType" binding:"required,oneof=before after"`
}

// bookingError translates lifecycle failures into HTTP responses.
func bookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		c.JSON(404, gin.H{"error": "Booking not found"})
	case errors.Is(err, booking.ErrItemNotFound):
		c.JSON(404, gin.H{"error": "Item not found"})
	case errors.Is(err, booking.ErrUnauthorized):
		c.JSON(403, gin.H{"error": "Unauthorized"})
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrInvalidDateRange),
		errors.Is(err, booking.ErrItemUnavailable),
		errors.Is(err, booking.ErrInvalidPhase),
		errors.Is(err, booking.ErrNoPhotos):
		c.JSON(400, gin.H{"error": err.Error()})
	default:
		c.JSON(500, gin.H{"error": "Internal server error"})
	}
}

// CreateBooking handles a renter's booking request
func CreateBooking(mgr *booking.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input CreateBookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		b, err := mgr.Create(c.Request.Context(), booking.CreateInput{
			ItemID:    input.ItemID,
			RenterID:  userId,
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			Notes:     input.Notes,
		})
		if err != nil {
			bookingError(c, err)
			return
		}

		c.JSON(201, b)
	}
}

// GetMyBookings returns all bookings where the caller is owner or renter
func GetMyBookings(mgr *booking.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		bookings, err := mgr.ListForUser(c.Request.Context(), userId)
		if err != nil {
			bookingError(c, err)
			return
		}

		c.JSON(200, bookings)
	}
}

// GetBooking returns a single booking visible to the caller
func GetBooking(mgr *booking.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid booking ID"})
			return
		}

		b, err := mgr.Get(c.Request.Context(), uint(bookingID), userId)
		if err != nil {
			bookingError(c, err)
			return
		}

		c.JSON(200, b)
	}
}

// UpdateBookingStatus moves a booking along the lifecycle state machine
func UpdateBookingStatus(mgr *booking.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid booking ID"})
			return
		}

		var input UpdateBookingStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		b, err := mgr.UpdateStatus(c.Request.Context(), uint(bookingID), models.BookingStatus(input.Status), userId)
		if err != nil {
			bookingError(c, err)
			return
		}

		c.JSON(200, b)
	}
}

// UploadDamagePhotos attaches before/after condition photos to a booking
func UploadDamagePhotos(mgr *booking.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid booking ID"})
			return
		}

		var input DamagePhotosInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		b, err := mgr.UploadDamagePhotos(c.Request.Context(), uint(bookingID), input.Photos, booking.PhotoPhase(input.PhaseType), userId)
		if err != nil {
			bookingError(c, err)
			return
		}

		c.JSON(200, gin.H{
			"message": "Damage photos (" + input.PhaseType + ") uploaded successfully",
			"booking": b,
		})
	}
}
