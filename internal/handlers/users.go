package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/itu-itis21-taflan21/RentalApp/internal/models"
	"github.com/itu-itis21-taflan21/RentalApp/internal/services"
)

// GetProfile retrieves the user's profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		c.JSON(200, profileResponse(&user))
	}
}

// UpdateProfile updates the user's profile information
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input struct {
			FirstName    *string  `json:"firstName"`
			LastName     *string  `json:"lastName"`
			Phone        *string  `json:"phone"`
			Bio          *string  `json:"bio"`
			ProfilePhoto *string  `json:"profilePhoto"` // base64 payload
			Lat          *float64 `json:"lat"`
			Lng          *float64 `json:"lng"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		// Update fields individually to handle empty strings properly
		if input.FirstName != nil {
			user.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			user.LastName = *input.LastName
		}
		if input.Phone != nil {
			user.Phone = *input.Phone
		}
		if input.Bio != nil {
			user.Bio = *input.Bio
		}
		if input.Lat != nil {
			user.Lat = input.Lat
		}
		if input.Lng != nil {
			user.Lng = input.Lng
		}
		if input.ProfilePhoto != nil && *input.ProfilePhoto != "" {
			url, err := services.UploadBase64Image(*input.ProfilePhoto, "profiles")
			if err != nil {
				c.JSON(400, gin.H{"error": "Invalid profile photo: " + err.Error()})
				return
			}
			user.ProfilePhoto = url
		}

		// Use Save() instead of Updates() to persist all fields including empty strings
		if err := db.Save(&user).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(200, profileResponse(&user))
	}
}

// SubmitVerification stores a verification document for manual review
func SubmitVerification(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input struct {
			VerificationDocument string `json:"verificationDocument" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		url, err := services.UploadBase64Image(input.VerificationDocument, "verifications")
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid verification document: " + err.Error()})
			return
		}

		// Submitting a new document always resets verification state
		updates := map[string]interface{}{
			"verification_document": url,
			"is_verified":           false,
		}
		if err := db.Model(&models.User{}).Where("id = ?", userId).Updates(updates).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to submit verification document"})
			return
		}

		c.JSON(200, gin.H{"message": "Verification document submitted successfully"})
	}
}
