package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/itu-itis21-taflan21/RentalApp/internal/models"
	"github.com/itu-itis21-taflan21/RentalApp/internal/services"
)

type CreateReviewInput struct {
	BookingID    uint     `json:"bookingId" binding:"required"`
	ReviewedID   uint     `json:"reviewedId" binding:"required"`
	ReviewedType string   `json:"reviewedType" binding:"required,oneof=user item"`
	Rating       int      `json:"rating" binding:"required,min=1,max=5"`
	Comment      string   `json:"comment"`
	Photos       []string `json:"photos"`
}

// CreateReview records a review from a booking participant and refreshes the
// target's average rating
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input CreateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var b models.Booking
		if err := db.First(&b, input.BookingID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}

		if b.RenterID != userId && b.OwnerID != userId {
			c.JSON(403, gin.H{"error": "Not authorized to review this booking"})
			return
		}

		photoURLs := make([]string, 0, len(input.Photos))
		for _, photo := range input.Photos {
			url, err := services.UploadBase64Image(photo, "reviews")
			if err != nil {
				c.JSON(400, gin.H{"error": "Invalid review photo: " + err.Error()})
				return
			}
			photoURLs = append(photoURLs, url)
		}

		review := models.Review{
			BookingID:    input.BookingID,
			ReviewerID:   userId,
			ReviewedID:   input.ReviewedID,
			ReviewedType: models.ReviewedType(input.ReviewedType),
			Rating:       input.Rating,
			Comment:      input.Comment,
			Photos:       photoURLs,
		}

		if err := db.Create(&review).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create review"})
			return
		}

		if err := refreshRating(db, review.ReviewedID, review.ReviewedType); err != nil {
			c.JSON(500, gin.H{"error": "Failed to update rating"})
			return
		}

		if review.ReviewedType == models.ReviewedTypeItem {
			services.InvalidateItem(context.Background(), review.ReviewedID)
		}

		c.JSON(201, review)
	}
}

// refreshRating recomputes the average rating and review count of a user or
// item from all of its reviews.
func refreshRating(db *gorm.DB, reviewedID uint, reviewedType models.ReviewedType) error {
	var stats struct {
		Avg   float64
		Count int64
	}
	err := db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("reviewed_id = ? AND reviewed_type = ?", reviewedID, reviewedType).
		Scan(&stats).Error
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"rating":        stats.Avg,
		"total_reviews": stats.Count,
	}

	if reviewedType == models.ReviewedTypeUser {
		return db.Model(&models.User{}).Where("id = ?", reviewedID).Updates(updates).Error
	}
	return db.Model(&models.Item{}).Where("id = ?", reviewedID).Updates(updates).Error
}

// GetReviews lists reviews for a user or item
func GetReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewedID, err := strconv.ParseUint(c.Param("reviewedId"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid reviewed ID"})
			return
		}

		reviewedType := c.DefaultQuery("type", "user")
		if reviewedType != "user" && reviewedType != "item" {
			c.JSON(400, gin.H{"error": "type must be 'user' or 'item'"})
			return
		}

		var reviews []models.Review
		if err := db.Where("reviewed_id = ? AND reviewed_type = ?", reviewedID, reviewedType).
			Order("created_at DESC").
			Limit(100).
			Find(&reviews).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		c.JSON(200, reviews)
	}
}
