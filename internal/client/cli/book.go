package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/eventbook/eventbook/internal/client/auth"
)

var (
	errBookNeedsLogin = errors.New("Please login to book events.")
	errBookFailed     = errors.New("Failed to book event. Please try again.")
)

func (c *Cli) runBook(ctx context.Context, args []string) error {
	id, err := parseID(args, "eventbook book <event-id>")
	if err != nil {
		return err
	}

	booking, err := c.bookingService.Book(ctx, id)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			return errBookNeedsLogin
		}
		slog.Error("booking failed", "event_id", id, "error", err)
		return errBookFailed
	}

	c.io.Println("✓ Booking confirmed!")
	c.io.Printf("Booking ID: %d (%d seat)\n", booking.ID, booking.NumberOfSeats)
	c.io.Println()
	c.io.Println("Run 'eventbook bookings' to see your bookings.")

	return nil
}
