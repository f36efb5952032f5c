package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventbook/eventbook/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	user, err := c.authService.CurrentUser(ctx)
	if err != nil {
		if !errors.Is(err, auth.ErrNotAuthenticated) {
			return fmt.Errorf("failed to check authentication: %w", err)
		}
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'eventbook login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Name:  %s\n", user.DisplayName)
	c.io.Printf("Email: %s\n", user.Email)

	count, err := c.bookingService.RecordedBookingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to read local bookings: %w", err)
	}
	c.io.Println()
	c.io.Printf("Bookings made from this client: %d\n", count)

	return nil
}
