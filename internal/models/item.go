package models

import "gorm.io/gorm"

type ItemCategory string

const (
	ItemCategoryCamera      ItemCategory = "camera"
	ItemCategoryTools       ItemCategory = "tools"
	ItemCategoryCamping     ItemCategory = "camping"
	ItemCategoryElectronics ItemCategory = "electronics"
	ItemCategorySports      ItemCategory = "sports"
	ItemCategoryAutomotive  ItemCategory = "automotive"
	ItemCategoryHome        ItemCategory = "home"
	ItemCategoryOther       ItemCategory = "other"
)

// ItemCategories lists every category accepted by the catalog.
var ItemCategories = []ItemCategory{
	ItemCategoryCamera,
	ItemCategoryTools,
	ItemCategoryCamping,
	ItemCategoryElectronics,
	ItemCategorySports,
	ItemCategoryAutomotive,
	ItemCategoryHome,
	ItemCategoryOther,
}

type Item struct {
	gorm.Model
	OwnerID      uint         `json:"ownerId" gorm:"not null;index"`
	Owner        User         `json:"owner"`
	Title        string       `json:"title" gorm:"not null"`
	Description  string       `json:"description" gorm:"not null"`
	Category     ItemCategory `json:"category" gorm:"not null"`
	Photos       []string     `json:"photos" gorm:"serializer:json"`
	PricePerDay  float64      `json:"pricePerDay" gorm:"not null"`
	PricePerHour *float64     `json:"pricePerHour"`
	Lat          float64      `json:"lat" gorm:"not null"`
	Lng          float64      `json:"lng" gorm:"not null"`
	Address      string       `json:"address" gorm:"not null"`
	IsAvailable  bool         `json:"isAvailable" gorm:"not null;default:true"`
	Rating       float64      `json:"rating" gorm:"default:0"`
	TotalReviews int          `json:"totalReviews" gorm:"default:0"`
}
