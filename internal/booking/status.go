package booking

import "github.com/itu-itis21-taflan21/RentalApp/internal/models"

// Role is the caller's relationship to a booking.
type Role int

const (
	RoleNone Role = iota
	RoleOwner
	RoleRenter
)

// RoleFor resolves the caller's role on a booking. A user can never be both
// owner and renter: the catalog forbids booking your own item.
func RoleFor(b *models.Booking, userID uint) Role {
	switch userID {
	case b.OwnerID:
		return RoleOwner
	case b.RenterID:
		return RoleRenter
	}
	return RoleNone
}

// transition is one edge of the booking state machine together with the
// roles allowed to trigger it.
type transition struct {
	from, to models.BookingStatus
	owner    bool
	renter   bool
}

// transitions is the complete set of legal status changes. Anything not
// listed here is rejected, including requests for the current status.
var transitions = []transition{
	{from: models.BookingStatusPending, to: models.BookingStatusApproved, owner: true},
	{from: models.BookingStatusPending, to: models.BookingStatusRejected, owner: true},
	{from: models.BookingStatusApproved, to: models.BookingStatusActive, owner: true, renter: true},
	{from: models.BookingStatusActive, to: models.BookingStatusCompleted, owner: true},
	{from: models.BookingStatusActive, to: models.BookingStatusDisputed, owner: true, renter: true},
}

// Authorize checks a requested status change against the transition table.
// It returns ErrInvalidTransition when no edge connects the two states and
// ErrUnauthorized when the edge exists but the caller's role may not take it.
func Authorize(from, to models.BookingStatus, role Role) error {
	for _, t := range transitions {
		if t.from != from || t.to != to {
			continue
		}
		if (role == RoleOwner && t.owner) || (role == RoleRenter && t.renter) {
			return nil
		}
		return ErrUnauthorized
	}
	return ErrInvalidTransition
}
