package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

func (c *Cli) runBookings(ctx context.Context) error {
	c.io.Println("=== My Bookings ===")
	c.io.Println()

	details, err := c.bookingService.MyBookings(ctx)
	if err != nil {
		slog.Error("failed to load bookings", "error", err)
		return errors.New("Failed to load bookings. Please try again later.")
	}

	if len(details) == 0 {
		c.io.Println("No bookings found.")
		return nil
	}

	lastEventID, hasLast := c.bookingService.LastBookedEventID()

	for i, d := range details {
		eventName := fmt.Sprintf("Event ID: %d", d.Booking.EventID)
		eventDate := ""
		if d.Event != nil {
			if d.Event.Name != "" {
				eventName = d.Event.Name
			}
			eventDate = d.Event.Date
		}

		marker := ""
		if hasLast && d.Booking.EventID == lastEventID {
			marker = " (just booked)"
		}

		date := eventDate
		if date == "" {
			date = d.Booking.BookingDate
		}

		c.io.Printf("%d. %s%s\n", i+1, eventName, marker)
		c.io.Printf("   Date:   %s\n", formatDate(date))
		c.io.Printf("   Status: %s\n", d.Booking.BookingStatus)
		c.io.Printf("   Seats:  %d\n", d.Booking.NumberOfSeats)
		c.io.Println()
	}

	return nil
}
