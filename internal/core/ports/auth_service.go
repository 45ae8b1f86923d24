package ports

import (
	"context"

	"github.com/stayloop/booking-api/internal/core/domain"
)

// SessionClaims is the identity decoded from a session token.
type SessionClaims struct {
	UserID string
	Email  string
}

// AuthService covers registration, login, and session-token handling.
// Tokens are signed HS256 JWTs carried by the client in a cookie; they
// embed only the user's id and email and carry no expiry claim.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials and returns the signed session token
	// alongside the user record.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// VerifyToken decodes and validates a session token. It returns
	// domain.ErrNoToken for an empty token and domain.ErrInvalidToken for a
	// malformed or tampered one.
	VerifyToken(token string) (*SessionClaims, error)
	// Profile resolves the token subject to its stored user record.
	Profile(ctx context.Context, token string) (*domain.User, error)
}
