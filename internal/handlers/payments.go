package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/itu-itis21-taflan21/RentalApp/internal/services"
)

type ProcessPaymentInput struct {
	BookingID     uint   `json:"bookingId" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// ProcessPayment simulates a checkout call. No gateway is integrated; the
// returned reference is a mock the mobile client displays as-is.
func ProcessPayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProcessPaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, gin.H{
			"payment_id": services.ProcessMockPayment(),
			"status":     "success",
			"message":    "Payment processed successfully (Mock)",
			"booking_id": input.BookingID,
		})
	}
}
