package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/eventbook/eventbook/internal/client/auth"
	pkgapi "github.com/eventbook/eventbook/pkg/api"
)

var errNeedLogin = errors.New("Please login first. Run 'eventbook login'.")

func (c *Cli) runEvents(ctx context.Context) error {
	c.io.Println("=== Upcoming Events ===")
	c.io.Println()

	events, err := c.apiClient.ListEvents(ctx)
	if err != nil {
		slog.Error("failed to fetch events", "error", err)
		return errors.New("Failed to load events. Please try again later.")
	}

	if len(events) == 0 {
		c.io.Println("No events found.")
		return nil
	}

	for i := range events {
		c.printEventCard(i+1, &events[i])
	}

	return nil
}

func (c *Cli) runEvent(ctx context.Context, args []string) error {
	id, err := parseID(args, "eventbook event <id>")
	if err != nil {
		return err
	}

	event, err := c.apiClient.GetEvent(ctx, id)
	if err != nil {
		slog.Error("failed to fetch event", "id", id, "error", err)
		return errors.New("Failed to load event details")
	}

	c.printEventCard(1, event)
	if event.ImageURL != "" {
		c.io.Printf("   Image: %s\n", event.ImageURL)
	}

	return nil
}

func (c *Cli) runEventStatus(ctx context.Context, args []string) error {
	id, err := parseID(args, "eventbook event-status <id> <status>")
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("missing status. Usage: eventbook event-status <id> <status>")
	}
	status := args[1]

	session, err := c.authService.CurrentSession(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			return errNeedLogin
		}
		return err
	}

	if err := c.apiClient.UpdateEventStatus(ctx, session.Token, id, status); err != nil {
		slog.Error("failed to update event status", "id", id, "error", err)
		return errors.New("Failed to update event status")
	}

	c.io.Println("✓ Event status updated successfully")

	return nil
}

func (c *Cli) runEventDelete(ctx context.Context, args []string) error {
	id, err := parseID(args, "eventbook event-delete <id>")
	if err != nil {
		return err
	}

	session, err := c.authService.CurrentSession(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			return errNeedLogin
		}
		return err
	}

	answer, err := c.io.ReadInput("Are you sure you want to delete this event? (y/N): ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
	default:
		c.io.Println("Aborted.")
		return nil
	}

	if err := c.apiClient.DeleteEvent(ctx, session.Token, id); err != nil {
		slog.Error("failed to delete event", "id", id, "error", err)
		return errors.New("Failed to delete event")
	}

	c.io.Println("✓ Event deleted successfully")

	return nil
}

func (c *Cli) printEventCard(n int, event *pkgapi.Event) {
	name := event.Name
	if name == "" {
		name = "No Name"
	}
	venue := event.Venue
	if venue == "" {
		venue = "No Venue"
	}

	c.io.Printf("%d. %s (ID: %d)\n", n, name, event.ID)
	c.io.Printf("   Date:  %s\n", formatDate(event.Date))
	c.io.Printf("   Venue: %s\n", venue)
	if event.Description != "" {
		c.io.Printf("   %s\n", event.Description)
	}
	if event.Status != "" {
		c.io.Printf("   Status: %s\n", event.Status)
	}
	c.io.Println()
}
