package session

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

var ErrNotFound = errors.New("session not found")

// Session is the server-side record of one authenticated interaction. The
// identity travels with the request, never through process-global state.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the session belongs to an admin account.
func (s *Session) IsAdmin() bool {
	return s.Role == "admin"
}

// Store keeps sessions server-side so logout invalidates a token
// immediately, regardless of its signed expiry.
type Store interface {
	Put(ctx context.Context, s *Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type memoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore returns an in-process store suitable for a single-instance
// deployment. Expired sessions are purged in the background.
func NewMemoryStore(defaultTTL, cleanupInterval time.Duration) Store {
	return &memoryStore{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

func (m *memoryStore) Put(_ context.Context, s *Session, ttl time.Duration) error {
	m.cache.Set(s.ID, s, ttl)
	return nil
}

func (m *memoryStore) Get(_ context.Context, id string) (*Session, error) {
	v, found := m.cache.Get(id)
	if !found {
		return nil, ErrNotFound
	}
	return v.(*Session), nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.cache.Delete(id)
	return nil
}
