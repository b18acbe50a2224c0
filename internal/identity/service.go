// Package identity provides user registration, login and current-user
// lookup backed by a user repository and a token authenticator.
package identity

import (
	"context"
	"fmt"

	"github.com/shopmint/shopmint/internal/domain"
	"github.com/shopmint/shopmint/internal/pkg/metrics"
)

// Service implements identity business logic.
type Service struct {
	repo Repository
	auth Authenticator
}

// NewService creates a new identity service.
func NewService(repo Repository, auth Authenticator) *Service {
	return &Service{
		repo: repo,
		auth: auth,
	}
}

// Register validates the payload, hashes the password and creates the user.
// No token is issued; the user logs in separately. Returns ErrEmailExists
// when a user with the same email already exists.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if err := ValidateRegister(in); err != nil {
		metrics.RecordRegistration("invalid")
		return nil, err
	}

	digest, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  digest,
		Role:      in.Role,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		metrics.RecordRegistration("conflict")
		return nil, err
	}

	metrics.RecordRegistration("success")
	return user, nil
}

// Login verifies the credentials and issues a bearer token. The lookup miss
// and the password mismatch surface as distinct errors; both map to the
// same client-error class at the HTTP boundary.
func (s *Service) Login(ctx context.Context, in LoginInput) (*domain.User, string, error) {
	user, err := s.repo.GetUserByEmail(ctx, in.Email)
	if err != nil {
		metrics.RecordLogin("not_found")
		return nil, "", err
	}

	if !CheckPassword(in.Password, user.Password) {
		metrics.RecordLogin("invalid_password")
		return nil, "", ErrInvalidPassword
	}

	token, err := s.auth.Generate(user)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	metrics.RecordLogin("success")
	return user, token, nil
}

// GetUserByID resolves the full user record. Token claims may be stale
// relative to the store, so /me re-reads the record instead of trusting
// the claims.
func (s *Service) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, id)
}
