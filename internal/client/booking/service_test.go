package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventbook/eventbook/internal/client/api"
	"github.com/eventbook/eventbook/internal/client/auth"
	"github.com/eventbook/eventbook/internal/client/storage"
	"github.com/eventbook/eventbook/internal/client/storage/boltdb"
)

func newTestStore(t *testing.T) *boltdb.Storage {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func loginTestUser(t *testing.T, store *boltdb.Storage) {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	err = store.SaveSession(context.Background(), token, &storage.UserProfile{
		ID:          "user-123",
		DisplayName: "Alice",
	})
	require.NoError(t, err)
}

func TestService_Book_AppendsIDs(t *testing.T) {
	ctx := context.Background()

	var nextID atomic.Int64
	nextID.Store(42)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/Bookings/CreateBooking", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("Authorization"))

		var req struct {
			EventID       int64  `json:"eventId"`
			UserID        string `json:"userId"`
			NumberOfSeats int    `json:"numberOfSeats"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "user-123", req.UserID)
		assert.Equal(t, 1, req.NumberOfSeats)

		id := nextID.Load()
		_ = json.NewEncoder(w).Encode(map[string]any{"id": id, "eventId": req.EventID})
	}))
	defer server.Close()

	store := newTestStore(t)
	loginTestUser(t, store)

	apiClient := api.NewClient(server.URL)
	service := NewService(apiClient, auth.NewService(apiClient, store), store)

	// First booking while the local list is empty
	booking, err := service.Book(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(42), booking.ID)

	ids, err := store.BookingIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, ids)

	// Second booking appends, order preserved
	nextID.Store(43)
	_, err = service.Book(ctx, 9)
	require.NoError(t, err)

	ids, err = store.BookingIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{42, 43}, ids)
}

func TestService_Book_NotAuthenticated(t *testing.T) {
	ctx := context.Background()

	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	store := newTestStore(t)

	apiClient := api.NewClient(server.URL)
	service := NewService(apiClient, auth.NewService(apiClient, store), store)

	_, err := service.Book(ctx, 7)
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
	assert.Equal(t, int64(0), calls.Load(), "unauthenticated booking must not reach the network")

	ids, err := store.BookingIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestService_Book_ServerFailure_NothingRecorded(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "sold out", http.StatusConflict)
	}))
	defer server.Close()

	store := newTestStore(t)
	loginTestUser(t, store)

	apiClient := api.NewClient(server.URL)
	service := NewService(apiClient, auth.NewService(apiClient, store), store)

	_, err := service.Book(ctx, 7)
	require.Error(t, err)

	ids, err := store.BookingIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, ok := service.LastBookedEventID()
	assert.False(t, ok)
}

func TestService_MyBookings(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/Bookings/GetBooking/42":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id": 42, "eventId": 7, "numberOfSeats": 1, "bookingStatus": "Confirmed",
			})
		case "/api/Bookings/GetBooking/43":
			// This booking is gone on the server side
			http.Error(w, "not found", http.StatusNotFound)
		case "/api/Bookings/GetBooking/44":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id": 44, "eventId": 9, "numberOfSeats": 1, "bookingStatus": "Pending",
			})
		case "/api/Events/7":
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 7, "name": "GopherCon", "date": "2026-09-01T19:00:00Z"})
		case "/api/Events/9":
			// Event lookup failing must not drop the booking itself
			http.Error(w, "not found", http.StatusNotFound)
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	}))
	defer server.Close()

	store := newTestStore(t)
	for _, id := range []int64{42, 43, 44} {
		require.NoError(t, store.AppendBookingID(ctx, id))
	}

	apiClient := api.NewClient(server.URL)
	service := NewService(apiClient, auth.NewService(apiClient, store), store)

	details, err := service.MyBookings(ctx)
	require.NoError(t, err)
	require.Len(t, details, 2, "unresolvable booking 43 is skipped")

	assert.Equal(t, int64(42), details[0].Booking.ID)
	require.NotNil(t, details[0].Event)
	assert.Equal(t, "GopherCon", details[0].Event.Name)

	assert.Equal(t, int64(44), details[1].Booking.ID)
	assert.Nil(t, details[1].Event)
}

func TestService_LastBookedEventID_OneShot(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 42, "eventId": 7})
	}))
	defer server.Close()

	store := newTestStore(t)
	loginTestUser(t, store)

	apiClient := api.NewClient(server.URL)
	service := NewService(apiClient, auth.NewService(apiClient, store), store)

	_, ok := service.LastBookedEventID()
	assert.False(t, ok, "nothing booked yet")

	_, err := service.Book(ctx, 7)
	require.NoError(t, err)

	id, ok := service.LastBookedEventID()
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	// Reading consumes the highlight
	_, ok = service.LastBookedEventID()
	assert.False(t, ok)
}
