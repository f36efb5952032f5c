package storage

import "context"

// BookingStorage keeps the ids of bookings this client created. The list
// is the client's only index into "my bookings": the server has no
// bookings-by-user query, so losing an id means losing sight of the
// booking.
type BookingStorage interface {
	// AppendBookingID appends id to the local list. The list is
	// append-only: ids are never deduplicated and never removed.
	AppendBookingID(ctx context.Context, id int64) error

	// BookingIDs returns all recorded ids in insertion order. An empty
	// list is not an error.
	BookingIDs(ctx context.Context) ([]int64, error)
}
