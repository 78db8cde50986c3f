package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/itu-itis21-taflan21/RentalApp/internal/models"
	"github.com/itu-itis21-taflan21/RentalApp/internal/services"
	"github.com/itu-itis21-taflan21/RentalApp/pkg/utils"
)

type CreateItemInput struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Category     string   `json:"category" binding:"required,oneof=camera tools camping electronics sports automotive home other"`
	Photos       []string `json:"photos"`
	PricePerDay  float64  `json:"pricePerDay" binding:"required,gt=0"`
	PricePerHour *float64 `json:"pricePerHour"`
	Lat          float64  `json:"lat" binding:"required"`
	Lng          float64  `json:"lng" binding:"required"`
	Address      string   `json:"address" binding:"required"`
}

// CreateItem handles the creation of a new listing
func CreateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input CreateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		// Photos arrive as base64 and are stored before the row is written
		photoURLs := make([]string, 0, len(input.Photos))
		for _, photo := range input.Photos {
			url, err := services.UploadBase64Image(photo, "items")
			if err != nil {
				c.JSON(400, gin.H{"error": "Invalid item photo: " + err.Error()})
				return
			}
			photoURLs = append(photoURLs, url)
		}

		item := models.Item{
			OwnerID:      userId,
			Title:        input.Title,
			Description:  input.Description,
			Category:     models.ItemCategory(input.Category),
			Photos:       photoURLs,
			PricePerDay:  input.PricePerDay,
			PricePerHour: input.PricePerHour,
			Lat:          input.Lat,
			Lng:          input.Lng,
			Address:      input.Address,
			IsAvailable:  true,
		}

		if err := db.Create(&item).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create item"})
			return
		}

		c.JSON(201, item)
	}
}

// GetItems lists available items with optional filters
func GetItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Where("is_available = ?", true)

		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}

		if search := c.Query("search"); search != "" {
			pattern := "%" + search + "%"
			query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
		}

		if minPrice := c.Query("minPrice"); minPrice != "" {
			if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
				query = query.Where("price_per_day >= ?", v)
			}
		}
		if maxPrice := c.Query("maxPrice"); maxPrice != "" {
			if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
				query = query.Where("price_per_day <= ?", v)
			}
		}

		limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if err != nil || limit < 1 || limit > 100 {
			limit = 20
		}
		skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
		if err != nil || skip < 0 {
			skip = 0
		}

		var items []models.Item
		if err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&items).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch items"})
			return
		}

		// Distance filtering happens after the query; listings carry a single
		// coordinate pair, not a geo index.
		lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
		lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
		if latErr == nil && lngErr == nil {
			maxDistance := 50.0 // km
			if v, err := strconv.ParseFloat(c.Query("maxDistance"), 64); err == nil && v > 0 {
				maxDistance = v
			}

			filtered := make([]models.Item, 0, len(items))
			for _, item := range items {
				if utils.IsWithinRadius(lat, lng, item.Lat, item.Lng, maxDistance) {
					filtered = append(filtered, item)
				}
			}
			items = filtered
		}

		c.JSON(200, items)
	}
}

// GetItem retrieves a single item, serving from cache when possible
func GetItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid item ID"})
			return
		}

		ctx := context.Background()
		if cached, err := services.GetCachedItem(ctx, uint(itemID)); err == nil {
			c.JSON(200, cached)
			return
		}

		var item models.Item
		if err := db.First(&item, itemID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Item not found"})
			return
		}

		services.CacheItem(ctx, &item)

		c.JSON(200, item)
	}
}

// GetMyItems lists the caller's own listings, including unavailable ones
func GetMyItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var items []models.Item
		if err := db.Where("owner_id = ?", userId).
			Order("created_at DESC").
			Find(&items).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch items"})
			return
		}

		c.JSON(200, items)
	}
}

// UpdateItemAvailability toggles whether an item can be booked
func UpdateItemAvailability(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid item ID"})
			return
		}

		var input struct {
			IsAvailable *bool `json:"isAvailable" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var item models.Item
		if err := db.First(&item, itemID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Item not found"})
			return
		}

		if item.OwnerID != userId {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		item.IsAvailable = *input.IsAvailable
		if err := db.Save(&item).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update item"})
			return
		}

		services.InvalidateItem(context.Background(), item.ID)

		c.JSON(200, item)
	}
}
