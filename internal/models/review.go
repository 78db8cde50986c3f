package models

import "gorm.io/gorm"

type ReviewedType string

const (
	ReviewedTypeUser ReviewedType = "user"
	ReviewedTypeItem ReviewedType = "item"
)

type Review struct {
	gorm.Model
	BookingID    uint         `json:"bookingId" gorm:"not null;index"`
	Booking      Booking      `json:"-"`
	ReviewerID   uint         `json:"reviewerId" gorm:"not null"`
	Reviewer     User         `json:"reviewer"`
	ReviewedID   uint         `json:"reviewedId" gorm:"not null;index"`
	ReviewedType ReviewedType `json:"reviewedType" gorm:"not null;index"`
	Rating       int          `json:"rating" gorm:"not null"`
	Comment      string       `json:"comment"`
	Photos       []string     `json:"photos" gorm:"serializer:json"`
}
