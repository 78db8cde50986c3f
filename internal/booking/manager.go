package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/itu-itis21-taflan21/RentalApp/internal/models"
)

// PhotoPhase selects which damage photo set an upload targets.
type PhotoPhase string

const (
	PhaseBefore PhotoPhase = "before"
	PhaseAfter  PhotoPhase = "after"
)

// Manager owns the booking lifecycle: it validates and executes status
// transitions, enforces who may trigger them, and records damage photos and
// payment references at the correct stage. All operations take an explicit
// acting user id; the manager holds no ambient auth state.
type Manager struct {
	store    Store
	catalog  ItemCatalog
	payments PaymentIssuer
	media    MediaStore
}

func NewManager(store Store, catalog ItemCatalog, payments PaymentIssuer, media MediaStore) *Manager {
	return &Manager{
		store:    store,
		catalog:  catalog,
		payments: payments,
		media:    media,
	}
}

// CreateInput carries a renter's booking request.
type CreateInput struct {
	ItemID    uint
	RenterID  uint
	StartDate time.Time
	EndDate   time.Time
	Notes     string
}

// Create opens a booking in pending state. The owner is derived from the
// item, the price from the item's day rate and the requested period, and a
// mock payment reference is issued up front.
func (m *Manager) Create(ctx context.Context, input CreateInput) (*models.Booking, error) {
	if !input.StartDate.Before(input.EndDate) {
		return nil, ErrInvalidDateRange
	}

	item, err := m.catalog.GetItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.IsAvailable || item.OwnerID == input.RenterID {
		return nil, ErrItemUnavailable
	}

	quote, err := PriceQuote(input.StartDate, input.EndDate, item.PricePerDay)
	if err != nil {
		return nil, err
	}

	paymentID, err := m.payments.IssuePayment(ctx, quote.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("issue payment: %w", err)
	}

	b := &models.Booking{
		ItemID:        item.ID,
		RenterID:      input.RenterID,
		OwnerID:       item.OwnerID,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		TotalAmount:   quote.TotalAmount,
		DepositAmount: quote.DepositAmount,
		Status:        models.BookingStatusPending,
		PaymentID:     paymentID,
		Notes:         input.Notes,
	}
	if err := m.store.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateStatus moves a booking along one edge of the state machine. The
// status field is the only thing that changes, and the store serializes the
// check-then-write against concurrent callers on the same booking, so a
// retry of an already applied transition fails with ErrInvalidTransition
// instead of silently re-applying.
func (m *Manager) UpdateStatus(ctx context.Context, bookingID uint, requested models.BookingStatus, actingUserID uint) (*models.Booking, error) {
	if !requested.IsValid() {
		return nil, ErrInvalidTransition
	}

	return m.store.Update(ctx, bookingID, func(b *models.Booking) error {
		role := RoleFor(b, actingUserID)
		if role == RoleNone {
			return ErrUnauthorized
		}
		if err := Authorize(b.Status, requested, role); err != nil {
			return err
		}
		b.Status = requested
		return nil
	})
}

// UploadDamagePhotos replaces a booking's before or after photo set. Before
// photos document item condition once the owner has approved the booking;
// after photos are taken while the rental is active. Uploads replace the
// existing set wholesale, they never append.
func (m *Manager) UploadDamagePhotos(ctx context.Context, bookingID uint, photos []string, phase PhotoPhase, actingUserID uint) (*models.Booking, error) {
	if len(photos) == 0 {
		return nil, ErrNoPhotos
	}
	if phase != PhaseBefore && phase != PhaseAfter {
		return nil, ErrInvalidPhase
	}

	// Validate before touching the media store so a rejected upload leaves
	// nothing behind. The same checks run again under the booking lock, since
	// the status may change between here and the write.
	current, err := m.store.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if RoleFor(current, actingUserID) == RoleNone {
		return nil, ErrUnauthorized
	}
	if err := phasePrecondition(current.Status, phase); err != nil {
		return nil, err
	}

	refs, err := m.media.StoreImages(ctx, photos, fmt.Sprintf("bookings/%d/%s", bookingID, phase))
	if err != nil {
		return nil, fmt.Errorf("store damage photos: %w", err)
	}

	return m.store.Update(ctx, bookingID, func(b *models.Booking) error {
		if RoleFor(b, actingUserID) == RoleNone {
			return ErrUnauthorized
		}
		if err := phasePrecondition(b.Status, phase); err != nil {
			return err
		}
		if phase == PhaseBefore {
			b.DamagePhotosBefore = refs
		} else {
			b.DamagePhotosAfter = refs
		}
		return nil
	})
}

// phasePrecondition gates photo uploads to their lifecycle window: before
// photos while approved, after photos while active.
func phasePrecondition(status models.BookingStatus, phase PhotoPhase) error {
	switch phase {
	case PhaseBefore:
		if status != models.BookingStatusApproved {
			return ErrInvalidPhase
		}
	case PhaseAfter:
		if status != models.BookingStatusActive {
			return ErrInvalidPhase
		}
	}
	return nil
}

// Get returns a booking visible to the acting user.
func (m *Manager) Get(ctx context.Context, bookingID, actingUserID uint) (*models.Booking, error) {
	b, err := m.store.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if RoleFor(b, actingUserID) == RoleNone {
		return nil, ErrUnauthorized
	}
	return b, nil
}

// ListForUser returns every booking where the user is owner or renter.
func (m *Manager) ListForUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	return m.store.ListByParticipant(ctx, userID)
}
