package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute, time.Minute)

	sess := &Session{
		ID:       "sess-1",
		UserID:   1,
		Username: "admin",
		Role:     "admin",
	}
	require.NoError(t, store.Put(ctx, sess, time.Minute))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, "admin", got.Username)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute, time.Minute)

	sess := &Session{ID: "sess-2", UserID: 2}
	require.NoError(t, store.Put(ctx, sess, time.Minute))
	require.NoError(t, store.Delete(ctx, "sess-2"))

	_, err := store.Get(ctx, "sess-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute, time.Minute)

	sess := &Session{ID: "sess-3", UserID: 3}
	require.NoError(t, store.Put(ctx, sess, 10*time.Millisecond))

	time.Sleep(30 * time.Millisecond)

	_, err := store.Get(ctx, "sess-3")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, (&Session{Role: "admin"}).IsAdmin())
	assert.False(t, (&Session{Role: "reception"}).IsAdmin())
}
