package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eventbook/eventbook/internal/client/api"
	"github.com/eventbook/eventbook/internal/validation"
)

// User-facing failure messages. Shown verbatim; the technical cause only
// goes to the debug log.
var (
	errLoginRejected = errors.New("Login failed. Please check your credentials.")
	errLoginRetry    = errors.New("Login failed. Please try again.")
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	user, err := c.authService.Login(ctx, email, password)
	if err != nil {
		var apiErr *api.Error
		switch {
		case validation.IsValidationError(err):
			// Local form error, nothing was sent to the network
			return err
		case errors.As(err, &apiErr):
			slog.Debug("login rejected by server", "status", apiErr.StatusCode)
			c.io.Println("Invalid email or password.")
			return errLoginRejected
		default:
			slog.Error("login request error", "error", err)
			return errLoginRetry
		}
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Welcome, %s\n", user.DisplayName)

	return nil
}
