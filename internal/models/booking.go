package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusDisputed  BookingStatus = "disputed"
)

// IsValid reports whether s is a member of the booking status enum.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusApproved, BookingStatusRejected,
		BookingStatusActive, BookingStatusCompleted, BookingStatusDisputed:
		return true
	}
	return false
}

// IsTerminal reports whether a booking in status s can never change again.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusRejected || s == BookingStatusCompleted || s == BookingStatusDisputed
}

type Booking struct {
	gorm.Model
	ItemID             uint          `json:"itemId" gorm:"not null;index"`
	Item               Item          `json:"item"`
	RenterID           uint          `json:"renterId" gorm:"not null;index"`
	Renter             User          `json:"renter"`
	OwnerID            uint          `json:"ownerId" gorm:"not null;index"`
	Owner              User          `json:"owner"`
	StartDate          time.Time     `json:"startDate" gorm:"not null"`
	EndDate            time.Time     `json:"endDate" gorm:"not null"`
	TotalAmount        float64       `json:"totalAmount" gorm:"not null"`
	DepositAmount      float64       `json:"depositAmount" gorm:"not null"`
	Status             BookingStatus `json:"status" gorm:"not null;default:'pending'"`
	PaymentID          string        `json:"paymentId"`
	Notes              string        `json:"notes"`
	DamagePhotosBefore []string      `json:"damagePhotosBefore" gorm:"serializer:json"`
	DamagePhotosAfter  []string      `json:"damagePhotosAfter" gorm:"serializer:json"`
}
