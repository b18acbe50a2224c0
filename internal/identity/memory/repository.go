// Package memory provides an in-memory user repository. Records live for
// the process lifetime and are lost on restart; the implementation is not
// safe for multi-instance deployment.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopmint/shopmint/internal/domain"
	"github.com/shopmint/shopmint/internal/identity"
)

// Repository is an in-memory implementation of identity.Repository.
type Repository struct {
	mu    sync.RWMutex
	users map[string]*domain.User // keyed by id
}

// NewRepository creates an empty in-memory user repository.
func NewRepository() *Repository {
	return &Repository{
		users: make(map[string]*domain.User),
	}
}

// CreateUser inserts the user if no record with the same email exists.
// The uniqueness check and the insert happen under one lock, so two
// concurrent registrations for the same email cannot both succeed.
// The repository owns id assignment and timestamps.
func (r *Repository) CreateUser(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		// Case-sensitive exact match.
		if u.Email == user.Email {
			return identity.ErrEmailExists
		}
	}

	now := time.Now()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	r.users[user.ID] = &stored

	return nil
}

// GetUserByID returns the user with the given id, or ErrUserNotFound.
func (r *Repository) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, identity.ErrUserNotFound
	}

	found := *u
	return &found, nil
}

// GetUserByEmail returns the user with the given email (case-sensitive
// exact match), or ErrUserNotFound.
func (r *Repository) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, identity.ErrUserNotFound
}
