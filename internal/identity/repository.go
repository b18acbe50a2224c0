package identity

import (
	"context"

	"github.com/shopmint/shopmint/internal/domain"
)

// Repository defines the interface for user data operations.
//
// CreateUser must enforce email uniqueness atomically: it inserts the user
// only if no record with the same email exists (case-sensitive match) and
// returns ErrEmailExists otherwise. Callers never check-then-insert.
type Repository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Authenticator issues bearer tokens for authenticated users.
type Authenticator interface {
	Generate(user *domain.User) (string, error)
}
