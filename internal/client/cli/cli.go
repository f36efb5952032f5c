package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/eventbook/eventbook/internal/client/api"
	"github.com/eventbook/eventbook/internal/client/auth"
	"github.com/eventbook/eventbook/internal/client/booking"
	"github.com/eventbook/eventbook/internal/client/iocli"
)

// Cli binds terminal commands to the underlying services.
type Cli struct {
	io             iocli.IO
	apiClient      *api.Client
	authService    *auth.Service
	bookingService *booking.Service
}

func New(io iocli.IO, apiClient *api.Client, authService *auth.Service, bookingService *booking.Service) *Cli {
	return &Cli{
		io:             io,
		apiClient:      apiClient,
		authService:    authService,
		bookingService: bookingService,
	}
}

// Run executes a single command. Errors returned here carry the
// user-facing message; technical causes have already been logged.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "register":
		return c.runRegister(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "events":
		return c.runEvents(ctx)
	case "event":
		return c.runEvent(ctx, args)
	case "event-status":
		return c.runEventStatus(ctx, args)
	case "event-delete":
		return c.runEventDelete(ctx, args)
	case "book":
		return c.runBook(ctx, args)
	case "bookings":
		return c.runBookings(ctx)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func (c *Cli) PrintUsage() {
	c.io.Println("eventbook - event booking client")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  eventbook [OPTIONS] COMMAND")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  --version        Show version information")
	c.io.Println("  --server URL     Server URL (default: http://localhost:5000)")
	c.io.Println("  --db PATH        Path to local database (default: eventbook-client.db)")
	c.io.Println("  --debug          Enable debug logging")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  register                     Register a new account")
	c.io.Println("  login                        Log in")
	c.io.Println("  logout                       Log out and clear the local session")
	c.io.Println("  status                       Show authentication status")
	c.io.Println("  events                       List upcoming events")
	c.io.Println("  event <id>                   Show one event")
	c.io.Println("  event-status <id> <status>   Update an event's status")
	c.io.Println("  event-delete <id>            Delete an event")
	c.io.Println("  book <event-id>              Book one seat on an event")
	c.io.Println("  bookings                     Show bookings made from this client")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  eventbook register")
	c.io.Println("  eventbook login")
	c.io.Println("  eventbook events")
	c.io.Println("  eventbook book 7")
	c.io.Println("  eventbook --server https://example.com events")
}

// parseID parses a positional numeric id argument.
func parseID(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing id. Usage: %s", usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q. Usage: %s", args[0], usage)
	}
	return id, nil
}

// formatDate renders a server timestamp for display. Unparsable values
// are shown as-is rather than hidden.
func formatDate(raw string) string {
	if raw == "" {
		return "No Date"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02 Jan 2006")
		}
	}
	return raw
}
