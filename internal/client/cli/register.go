package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eventbook/eventbook/internal/client/auth"
	"github.com/eventbook/eventbook/internal/validation"
)

var (
	errEmailTaken    = errors.New("Email already exists. Please use a different email.")
	errRegisterRetry = errors.New("Registration failed. Please try again.")
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	phone, err := c.io.ReadInput("Phone (e.g. 01012345678): ")
	if err != nil {
		return fmt.Errorf("failed to read phone: %w", err)
	}

	c.io.Println()
	c.io.Println("Registering...")

	if err := c.authService.Register(ctx, name, email, password, phone); err != nil {
		switch {
		case validation.IsValidationError(err):
			return err
		case errors.Is(err, auth.ErrEmailExists):
			return errEmailTaken
		default:
			slog.Error("registration request error", "error", err)
			return errRegisterRetry
		}
	}

	c.io.Println()
	c.io.Println("✓ Registration successful! Please login.")
	c.io.Println("Run 'eventbook login' to authenticate.")

	return nil
}
