// Package memory provides in-memory storage implementations, used in
// tests and as a zero-dependency fallback when no database is
// configured.
package memory

import (
	"context"
	"sync"

	"github.com/secureapp/secureapp/internal/auth"
)

// UserStore is a mutex-guarded in-memory auth.Storage. The uniqueness
// check and insert happen under one lock, so concurrent registrations
// of the same username cannot both succeed.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]auth.User
}

// NewUserStore returns an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]auth.User)}
}

// CreateUser inserts the user, failing with auth.ErrUsernameTaken when
// the username already exists.
func (s *UserStore) CreateUser(_ context.Context, user *auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return auth.ErrUsernameTaken
	}
	s.users[user.Username] = *user
	return nil
}

// GetUserByUsername returns the stored user or auth.ErrUserNotFound.
func (s *UserStore) GetUserByUsername(_ context.Context, username string) (*auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return &user, nil
}

// Len reports the number of stored users.
func (s *UserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
