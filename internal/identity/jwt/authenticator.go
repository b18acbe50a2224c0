// Package jwt implements token issuance and verification for the identity
// module using HMAC-signed JSON Web Tokens.
package jwt

import (
	"context"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/shopmint/shopmint/internal/domain"
	"github.com/shopmint/shopmint/internal/identity"
	"github.com/shopmint/shopmint/internal/pkg/httputil"
)

// Config contains authenticator configuration. The secret must be
// non-empty; the config layer rejects an unset secret at startup.
type Config struct {
	Secret   string
	TokenTTL time.Duration
}

// DefaultTokenTTL is used when no TTL is configured.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims is the token payload: identity claims plus standard
// issued-at/expiry. Tokens are self-contained; nothing is stored
// server-side and issued tokens stay valid until expiry.
type Claims struct {
	gojwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Authenticator issues and verifies bearer tokens.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthenticator creates a new JWT authenticator.
func NewAuthenticator(cfg Config) *Authenticator {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Authenticator{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
	}
}

// Generate issues a signed token carrying {id, email, role}.
func (a *Authenticator) Generate(user *domain.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(a.ttl)),
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// ValidateToken verifies the signature, shape and expiry of a token and
// returns the decoded claims. Any failure collapses into ErrInvalidToken.
func (a *Authenticator) ValidateToken(_ context.Context, tokenString string) (*httputil.Claims, error) {
	token, err := gojwt.ParseWithClaims(tokenString, &Claims{}, func(t *gojwt.Token) (interface{}, error) {
		return a.secret, nil
	}, gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, identity.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, identity.ErrInvalidToken
	}

	return &httputil.Claims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   domain.Role(claims.Role),
	}, nil
}
