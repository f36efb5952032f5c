package booking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eventbook/eventbook/internal/client/api"
	"github.com/eventbook/eventbook/internal/client/auth"
	"github.com/eventbook/eventbook/internal/client/storage"
	pkgapi "github.com/eventbook/eventbook/pkg/api"
)

// seatsPerBooking is fixed: one action books one seat.
const seatsPerBooking = 1

// Service submits bookings and resolves the locally recorded booking ids
// into displayable details.
type Service struct {
	apiClient   *api.Client
	authService *auth.Service
	store       storage.BookingStorage

	// Event of the most recent successful booking in this process, used
	// once by the bookings view to highlight the fresh entry.
	lastBookedEventID int64
	hasLastBooked     bool
}

// NewService creates a new booking service.
func NewService(apiClient *api.Client, authService *auth.Service, store storage.BookingStorage) *Service {
	return &Service{
		apiClient:   apiClient,
		authService: authService,
		store:       store,
	}
}

// Book submits a one-seat booking for eventID on behalf of the current
// user and records the returned booking id locally. Returns
// auth.ErrNotAuthenticated when no valid session exists.
func (s *Service) Book(ctx context.Context, eventID int64) (*pkgapi.Booking, error) {
	session, err := s.authService.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}

	req := pkgapi.CreateBookingRequest{
		EventID:       eventID,
		UserID:        session.User.ID,
		NumberOfSeats: seatsPerBooking,
	}
	booking, err := s.apiClient.CreateBooking(ctx, session.Token, req)
	if err != nil {
		return nil, fmt.Errorf("booking failed: %w", err)
	}

	// The local list is the only index into "my bookings"; failing to
	// record the id is an error even though the server-side booking
	// already exists.
	if err := s.store.AppendBookingID(ctx, booking.ID); err != nil {
		return nil, fmt.Errorf("booking %d created but not recorded locally: %w", booking.ID, err)
	}

	s.lastBookedEventID = eventID
	s.hasLastBooked = true

	return booking, nil
}

// Details pairs a booking with its event, when the event could still be
// fetched.
type Details struct {
	Booking pkgapi.Booking
	Event   *pkgapi.Event
}

// MyBookings resolves the locally recorded booking ids in insertion
// order. An id that can no longer be resolved is skipped rather than
// failing the whole view.
func (s *Service) MyBookings(ctx context.Context) ([]Details, error) {
	ids, err := s.store.BookingIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read booking ids: %w", err)
	}

	details := make([]Details, 0, len(ids))
	for _, id := range ids {
		booking, err := s.apiClient.GetBooking(ctx, id)
		if err != nil {
			slog.Debug("skipping unresolvable booking", "id", id, "error", err)
			continue
		}

		d := Details{Booking: *booking}
		if booking.EventID != 0 {
			if event, err := s.apiClient.GetEvent(ctx, booking.EventID); err == nil {
				d.Event = event
			} else {
				slog.Debug("event lookup failed for booking", "id", id, "event_id", booking.EventID, "error", err)
			}
		}
		details = append(details, d)
	}

	return details, nil
}

// RecordedBookingCount returns how many booking ids this client has
// recorded locally.
func (s *Service) RecordedBookingCount(ctx context.Context) (int, error) {
	ids, err := s.store.BookingIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read booking ids: %w", err)
	}
	return len(ids), nil
}

// LastBookedEventID returns the event id of the most recent Book call in
// this process and clears it: the highlight is one-shot.
func (s *Service) LastBookedEventID() (int64, bool) {
	if !s.hasLastBooked {
		return 0, false
	}
	s.hasLastBooked = false
	return s.lastBookedEventID, true
}
