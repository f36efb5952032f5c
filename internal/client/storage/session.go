package storage

import "context"

// UserProfile is the cached identity of the logged-in user, persisted
// alongside the token so the client can render a welcome line and attach
// the user id to booking requests without a network call.
type UserProfile struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// SessionData mirrors the two session keys in the store. Either part can
// be absent independently: an interrupted write or an older client may
// leave a profile behind without a token, which the session manager
// repairs on startup.
type SessionData struct {
	Token string
	User  *UserProfile
}

// SessionStorage persists the session across client runs.
type SessionStorage interface {
	// SaveSession stores the token and profile together.
	SaveSession(ctx context.Context, token string, user *UserProfile) error

	// GetSession returns whatever parts of the session exist.
	// Returns ErrSessionNotFound when neither key is present.
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes both keys (logout).
	// Returns ErrSessionNotFound when nothing was stored.
	DeleteSession(ctx context.Context) error
}
