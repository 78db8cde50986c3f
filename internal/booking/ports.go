package booking

import (
	"context"

	"github.com/itu-itis21-taflan21/RentalApp/internal/models"
)

// Store persists bookings. Update must serialize concurrent callers on the
// same booking id: mutate receives the current record under a per-booking
// lock and its changes are either committed in full or not at all.
type Store interface {
	Create(ctx context.Context, b *models.Booking) error
	Get(ctx context.Context, id uint) (*models.Booking, error)
	Update(ctx context.Context, id uint, mutate func(*models.Booking) error) (*models.Booking, error)
	ListByParticipant(ctx context.Context, userID uint) ([]models.Booking, error)
}

// ItemCatalog resolves item metadata referenced by a booking.
type ItemCatalog interface {
	GetItem(ctx context.Context, id uint) (*models.Item, error)
}

// PaymentIssuer issues a payment reference for a booking amount.
type PaymentIssuer interface {
	IssuePayment(ctx context.Context, amount float64) (string, error)
}

// MediaStore persists base64-encoded images and returns stable references.
type MediaStore interface {
	StoreImages(ctx context.Context, images []string, folder string) ([]string, error)
}
