package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/itu-itis21-taflan21/RentalApp/internal/models"
	"github.com/itu-itis21-taflan21/RentalApp/internal/services"
)

// GetPopularItems returns the top-rated available items, cached in Redis
func GetPopularItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if err != nil || limit < 1 || limit > 50 {
			limit = 10
		}

		ctx := context.Background()
		if cached, err := services.GetPopularItems(ctx, limit); err == nil {
			c.JSON(200, cached)
			return
		}

		var items []models.Item
		if err := db.Where("is_available = ?", true).
			Order("rating DESC").
			Limit(limit).
			Find(&items).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch popular items"})
			return
		}

		services.CachePopularItems(ctx, limit, items)

		c.JSON(200, items)
	}
}

// GetCategories lists the item categories accepted by the catalog
func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := make([]string, 0, len(models.ItemCategories))
		for _, category := range models.ItemCategories {
			categories = append(categories, string(category))
		}
		c.JSON(200, categories)
	}
}
