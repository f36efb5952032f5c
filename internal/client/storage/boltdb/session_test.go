package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventbook/eventbook/internal/client/storage"
)

func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "client_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStorage_SaveGetDeleteSession(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	user := &storage.UserProfile{
		ID:          "user-123",
		DisplayName: "Alice",
		Email:       "alice@example.com",
		PhoneNumber: "01112345678",
	}

	// Before save there is no session
	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	err = store.SaveSession(ctx, "header.payload.signature", user)
	require.NoError(t, err)

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "header.payload.signature", got.Token)
	require.NotNil(t, got.User)
	assert.Equal(t, "Alice", got.User.DisplayName)
	assert.Equal(t, "user-123", got.User.ID)

	err = store.DeleteSession(ctx)
	require.NoError(t, err)

	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestStorage_DeleteSession_NotFound(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.DeleteSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestStorage_SaveSession_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.SaveSession(ctx, "token-1", &storage.UserProfile{ID: "u1", DisplayName: "Alice"})
	require.NoError(t, err)
	err = store.SaveSession(ctx, "token-2", &storage.UserProfile{ID: "u2", DisplayName: "Bob"})
	require.NoError(t, err)

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", got.Token)
	assert.Equal(t, "Bob", got.User.DisplayName)
}

func TestStorage_SessionSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "client_test.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	err = store.SaveSession(ctx, "persisted-token", &storage.UserProfile{ID: "u1", DisplayName: "Alice"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	got, err := reopened.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted-token", got.Token)
	assert.Equal(t, "Alice", got.User.DisplayName)
}
