package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eventbook/eventbook/internal/client/api"
	"github.com/eventbook/eventbook/internal/client/storage"
	"github.com/eventbook/eventbook/internal/validation"
	pkgapi "github.com/eventbook/eventbook/pkg/api"
)

var (
	// ErrNotAuthenticated indicates that no valid session exists locally.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrEmailExists indicates that registration was refused because the
	// email is already taken.
	ErrEmailExists = errors.New("email already exists")
)

// Service is the session manager: it owns the authenticated or
// unauthenticated state of the client and guarantees callers never see a
// stale or expired session.
type Service struct {
	apiClient *api.Client
	store     storage.SessionStorage
}

// NewService creates a new session manager.
func NewService(apiClient *api.Client, store storage.SessionStorage) *Service {
	return &Service{
		apiClient: apiClient,
		store:     store,
	}
}

// Login validates the credentials locally, authenticates against the
// server, and persists the resulting session. Validation failures return
// before any network call; server or transport failures leave any prior
// session untouched.
func (s *Service) Login(ctx context.Context, email, password string) (*storage.UserProfile, error) {
	if err := validation.ValidateLoginInput(email, password); err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	user := &storage.UserProfile{
		ID:          resp.ID,
		DisplayName: resp.DisplayName,
		Email:       resp.Email,
		PhoneNumber: resp.PhoneNumber,
	}

	if err := s.store.SaveSession(ctx, resp.Token, user); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return user, nil
}

// Register validates the input locally, refuses early when the email is
// already taken, and creates the account. It does NOT log the user in;
// the caller should direct the user to Login.
func (s *Service) Register(ctx context.Context, name, email, password, phone string) error {
	if err := validation.ValidateRegistrationInput(name, email, password, phone); err != nil {
		return err
	}

	exists, err := s.apiClient.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("email check failed: %w", err)
	}
	if exists {
		return ErrEmailExists
	}

	req := pkgapi.RegisterRequest{
		DisplayName: name,
		Email:       email,
		PhoneNumber: phone,
		Password:    password,
	}
	if err := s.apiClient.Register(ctx, req); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	return nil
}

// Logout unconditionally clears the local session. Logging out twice is
// a no-op, not an error.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CurrentSession returns the stored session iff it holds both a profile
// and an unexpired token. Callers that need the bearer token (booking,
// event mutations) use this; everyone else uses CurrentUser.
func (s *Service) CurrentSession(ctx context.Context) (*storage.SessionData, error) {
	session, err := s.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.User == nil || IsTokenExpired(session.Token) {
		return nil, ErrNotAuthenticated
	}

	return session, nil
}

// CurrentUser returns the profile of the logged-in user, or
// ErrNotAuthenticated.
func (s *Service) CurrentUser(ctx context.Context) (*storage.UserProfile, error) {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	return session.User, nil
}

// IsAuthenticated reports whether a valid session exists.
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.CurrentUser(ctx)
	if errors.Is(err, ErrNotAuthenticated) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CheckAndEnforceExpiry is startup hygiene: when the stored token is
// expired, or a profile was left behind without a token, both keys are
// cleared. Silent by design; the user simply finds themselves logged out.
func (s *Service) CheckAndEnforceExpiry(ctx context.Context) error {
	session, err := s.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	// An absent token reads as expired, which also covers the
	// profile-without-token case.
	if !IsTokenExpired(session.Token) {
		return nil
	}

	slog.Debug("stored session expired, clearing")
	if err := s.store.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to clear expired session: %w", err)
	}

	return nil
}
