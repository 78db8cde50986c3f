package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/itu-itis21-taflan21/RentalApp/internal/booking"
	"github.com/itu-itis21-taflan21/RentalApp/internal/models"
)

const (
	testOwnerID  = uint(10)
	testRenterID = uint(20)
)

// In-memory collaborators for driving the lifecycle manager through HTTP.

type memStore struct {
	mu       sync.Mutex
	nextID   uint
	bookings map[uint]models.Booking
}

func (s *memStore) Create(ctx context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	b.ID = s.nextID
	b.CreatedAt = time.Now()
	s.bookings[b.ID] = *b
	return nil
}

func (s *memStore) Get(ctx context.Context, id uint) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return &b, nil
}

func (s *memStore) Update(ctx context.Context, id uint, mutate func(*models.Booking) error) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	if err := mutate(&b); err != nil {
		return nil, err
	}
	s.bookings[id] = b
	return &b, nil
}

func (s *memStore) ListByParticipant(ctx context.Context, userID uint) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Booking
	for _, b := range s.bookings {
		if b.RenterID == userID || b.OwnerID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type memCatalog struct{ items map[uint]models.Item }

func (c *memCatalog) GetItem(ctx context.Context, id uint) (*models.Item, error) {
	item, ok := c.items[id]
	if !ok {
		return nil, booking.ErrItemNotFound
	}
	return &item, nil
}

type memPayments struct{}

func (memPayments) IssuePayment(ctx context.Context, amount float64) (string, error) {
	return "mock_payment_test", nil
}

type memMedia struct{}

func (memMedia) StoreImages(ctx context.Context, images []string, folder string) ([]string, error) {
	refs := make([]string, len(images))
	for i := range images {
		refs[i] = fmt.Sprintf("stored://%s/%d", folder, i)
	}
	return refs, nil
}

// testAuth stands in for the JWT middleware: the acting user comes from a
// header instead of a token.
func testAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.GetHeader("X-Test-User"), 10, 32)
		if err != nil {
			c.JSON(401, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}
		c.Set("userId", uint(id))
		c.Next()
	}
}

func setupBookingRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mgr := booking.NewManager(
		&memStore{bookings: map[uint]models.Booking{}},
		&memCatalog{items: map[uint]models.Item{
			1: {Model: gorm.Model{ID: 1}, OwnerID: testOwnerID, PricePerDay: 50, IsAvailable: true},
		}},
		memPayments{},
		memMedia{},
	)

	r := gin.New()
	bookings := r.Group("/api/bookings")
	bookings.Use(testAuth())
	{
		bookings.POST("", CreateBooking(mgr))
		bookings.GET("/my-bookings", GetMyBookings(mgr))
		bookings.GET("/:id", GetBooking(mgr))
		bookings.PUT("/:id/status", UpdateBookingStatus(mgr))
		bookings.POST("/:id/damage-photos", UploadDamagePhotos(mgr))
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, userID uint, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("X-Test-User", strconv.FormatUint(uint64(userID), 10))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createTestBooking(t *testing.T, r *gin.Engine) models.Booking {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/bookings", testRenterID, gin.H{
		"itemId":    1,
		"startDate": "2025-01-01T00:00:00Z",
		"endDate":   "2025-01-04T00:00:00Z",
		"notes":     "weekend trip",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var b models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	return b
}

func TestCreateBookingEndpoint(t *testing.T) {
	r := setupBookingRouter(t)

	b := createTestBooking(t, r)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.Equal(t, 150.0, b.TotalAmount)
	assert.Equal(t, 30.0, b.DepositAmount)
	assert.Equal(t, "mock_payment_test", b.PaymentID)
}

func TestCreateBookingEndpoint_InvalidDates(t *testing.T) {
	r := setupBookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", testRenterID, gin.H{
		"itemId":    1,
		"startDate": "2025-01-04T00:00:00Z",
		"endDate":   "2025-01-01T00:00:00Z",
	})
	assert.Equal(t, 400, w.Code)
}

func TestCreateBookingEndpoint_UnknownItem(t *testing.T) {
	r := setupBookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", testRenterID, gin.H{
		"itemId":    42,
		"startDate": "2025-01-01T00:00:00Z",
		"endDate":   "2025-01-04T00:00:00Z",
	})
	assert.Equal(t, 404, w.Code)
}

func TestUpdateBookingStatusEndpoint_RoleMapping(t *testing.T) {
	r := setupBookingRouter(t)
	b := createTestBooking(t, r)
	path := fmt.Sprintf("/api/bookings/%d/status", b.ID)

	// Renter may not approve
	w := doJSON(t, r, http.MethodPut, path, testRenterID, gin.H{"status": "approved"})
	assert.Equal(t, 403, w.Code)

	// Owner may
	w = doJSON(t, r, http.MethodPut, path, testOwnerID, gin.H{"status": "approved"})
	require.Equal(t, 200, w.Code, w.Body.String())

	var updated models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.BookingStatusApproved, updated.Status)

	// Retry of the already applied transition is rejected
	w = doJSON(t, r, http.MethodPut, path, testOwnerID, gin.H{"status": "approved"})
	assert.Equal(t, 400, w.Code)
}

func TestUpdateBookingStatusEndpoint_BadInputs(t *testing.T) {
	r := setupBookingRouter(t)
	b := createTestBooking(t, r)

	// Status outside the enum never reaches the manager
	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/bookings/%d/status", b.ID), testOwnerID, gin.H{"status": "shipped"})
	assert.Equal(t, 400, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/bookings/999/status", testOwnerID, gin.H{"status": "approved"})
	assert.Equal(t, 404, w.Code)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/bookings/%d/status", b.ID), 0, gin.H{"status": "approved"})
	assert.Equal(t, 401, w.Code)
}

func TestDamagePhotosEndpoint(t *testing.T) {
	r := setupBookingRouter(t)
	b := createTestBooking(t, r)
	path := fmt.Sprintf("/api/bookings/%d/damage-photos", b.ID)
	body := gin.H{"photos": []string{"aGVsbG8="}, "phaseType": "before"}

	// Pending booking cannot take before photos yet
	w := doJSON(t, r, http.MethodPost, path, testRenterID, body)
	assert.Equal(t, 400, w.Code)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/bookings/%d/status", b.ID), testOwnerID, gin.H{"status": "approved"})
	require.Equal(t, 200, w.Code)

	w = doJSON(t, r, http.MethodPost, path, testRenterID, body)
	require.Equal(t, 200, w.Code, w.Body.String())

	// Empty photo set fails binding
	w = doJSON(t, r, http.MethodPost, path, testRenterID, gin.H{"photos": []string{}, "phaseType": "before"})
	assert.Equal(t, 400, w.Code)

	// Unknown phase fails binding
	w = doJSON(t, r, http.MethodPost, path, testRenterID, gin.H{"photos": []string{"aGVsbG8="}, "phaseType": "during"})
	assert.Equal(t, 400, w.Code)
}

func TestMyBookingsEndpoint(t *testing.T) {
	r := setupBookingRouter(t)
	b := createTestBooking(t, r)

	for _, userID := range []uint{testRenterID, testOwnerID} {
		w := doJSON(t, r, http.MethodGet, "/api/bookings/my-bookings", userID, nil)
		require.Equal(t, 200, w.Code)

		var list []models.Booking
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 1)
		assert.Equal(t, b.ID, list[0].ID)
	}

	// A stranger sees nothing
	w := doJSON(t, r, http.MethodGet, "/api/bookings/my-bookings", 99, nil)
	require.Equal(t, 200, w.Code)

	var list []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list)
}
