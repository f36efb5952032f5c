package storage

import "errors"

// ErrSessionNotFound indicates that no session data exists locally.
var ErrSessionNotFound = errors.New("session not found")
