package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itu-itis21-taflan21/RentalApp/internal/models"
)

var allStatuses = []models.BookingStatus{
	models.BookingStatusPending,
	models.BookingStatusApproved,
	models.BookingStatusRejected,
	models.BookingStatusActive,
	models.BookingStatusCompleted,
	models.BookingStatusDisputed,
}

func TestAuthorize_AllowedEdges(t *testing.T) {
	cases := []struct {
		name string
		from models.BookingStatus
		to   models.BookingStatus
		role Role
	}{
		{"owner approves pending", models.BookingStatusPending, models.BookingStatusApproved, RoleOwner},
		{"owner rejects pending", models.BookingStatusPending, models.BookingStatusRejected, RoleOwner},
		{"owner activates approved", models.BookingStatusApproved, models.BookingStatusActive, RoleOwner},
		{"renter activates approved", models.BookingStatusApproved, models.BookingStatusActive, RoleRenter},
		{"owner completes active", models.BookingStatusActive, models.BookingStatusCompleted, RoleOwner},
		{"owner disputes active", models.BookingStatusActive, models.BookingStatusDisputed, RoleOwner},
		{"renter disputes active", models.BookingStatusActive, models.BookingStatusDisputed, RoleRenter},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, Authorize(tc.from, tc.to, tc.role))
		})
	}
}

func TestAuthorize_RoleDenied(t *testing.T) {
	cases := []struct {
		name string
		from models.BookingStatus
		to   models.BookingStatus
		role Role
	}{
		{"renter cannot approve", models.BookingStatusPending, models.BookingStatusApproved, RoleRenter},
		{"renter cannot reject", models.BookingStatusPending, models.BookingStatusRejected, RoleRenter},
		{"renter cannot complete", models.BookingStatusActive, models.BookingStatusCompleted, RoleRenter},
		{"stranger cannot approve", models.BookingStatusPending, models.BookingStatusApproved, RoleNone},
		{"stranger cannot dispute", models.BookingStatusActive, models.BookingStatusDisputed, RoleNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, Authorize(tc.from, tc.to, tc.role), ErrUnauthorized)
		})
	}
}

// Everything outside the five allowed edges is an invalid transition,
// whatever the caller's role. Requests for the current status included.
func TestAuthorize_EverythingElseIsInvalid(t *testing.T) {
	allowed := map[[2]models.BookingStatus]bool{}
	for _, tr := range transitions {
		allowed[[2]models.BookingStatus{tr.from, tr.to}] = true
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			if allowed[[2]models.BookingStatus{from, to}] {
				continue
			}
			err := Authorize(from, to, RoleOwner)
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s should be invalid", from, to)
		}
	}
}

func TestAuthorize_TerminalStatesHaveNoExits(t *testing.T) {
	for _, from := range allStatuses {
		if !from.IsTerminal() {
			continue
		}
		for _, to := range allStatuses {
			assert.ErrorIs(t, Authorize(from, to, RoleOwner), ErrInvalidTransition)
			assert.ErrorIs(t, Authorize(from, to, RoleRenter), ErrInvalidTransition)
		}
	}
}

func TestRoleFor(t *testing.T) {
	b := &models.Booking{OwnerID: 1, RenterID: 2}

	assert.Equal(t, RoleOwner, RoleFor(b, 1))
	assert.Equal(t, RoleRenter, RoleFor(b, 2))
	assert.Equal(t, RoleNone, RoleFor(b, 3))
}
