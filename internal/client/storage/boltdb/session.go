package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/eventbook/eventbook/internal/client/storage"
)

// The session bucket holds two independent keys, matching the two entries
// of the original persistent store: the raw token string and the JSON
// profile.
var (
	keyToken = []byte("token")
	keyUser  = []byte("user")
)

// SaveSession stores the token and profile together.
func (s *Storage) SaveSession(ctx context.Context, token string, user *storage.UserProfile) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Put(keyToken, []byte(token)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}

		userData, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to marshal user profile: %w", err)
		}
		if err := bucket.Put(keyUser, userData); err != nil {
			return fmt.Errorf("failed to save user profile: %w", err)
		}

		return nil
	})
}

// GetSession returns whatever parts of the session exist.
func (s *Storage) GetSession(ctx context.Context) (*storage.SessionData, error) {
	var session *storage.SessionData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		tokenData := bucket.Get(keyToken)
		userData := bucket.Get(keyUser)
		if tokenData == nil && userData == nil {
			return storage.ErrSessionNotFound
		}

		session = &storage.SessionData{Token: string(tokenData)}
		if userData != nil {
			user := &storage.UserProfile{}
			if err := json.Unmarshal(userData, user); err != nil {
				return fmt.Errorf("failed to unmarshal user profile: %w", err)
			}
			session.User = user
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteSession removes both session keys (logout).
func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if bucket.Get(keyToken) == nil && bucket.Get(keyUser) == nil {
			return storage.ErrSessionNotFound
		}

		if err := bucket.Delete(keyToken); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}
		if err := bucket.Delete(keyUser); err != nil {
			return fmt.Errorf("failed to delete user profile: %w", err)
		}

		return nil
	})
}
