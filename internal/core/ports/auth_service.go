package ports

import (
	"context"

	"github.com/taskmanager/task-api/internal/core/domain"
)

// IdentifierKind selects which unique field a login identifier refers to.
type IdentifierKind string

const (
	IdentifierUserName IdentifierKind = "username"
	IdentifierEmail    IdentifierKind = "email"
)

// TokenClaims is the identity extracted from a verified bearer token.
type TokenClaims struct {
	SubjectID string
	Role      string
}

// TokenService issues and verifies signed, time-bound identity tokens.
// Verification is a pure computation: signature check plus expiry comparison.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*TokenClaims, error)
}

// AuthService implements registration and credential verification on top of
// the user repository and token service.
type AuthService interface {
	// Register creates an account. Role defaults to "user" when empty and
	// must otherwise be a known role. Fails with domain.ErrUserExists when
	// the normalized email or username is already taken.
	Register(ctx context.Context, userName, email, password, role string) (*domain.User, string, error)
	// Login verifies credentials by username or email and returns the
	// identity with a fresh token. Every failure is
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, kind IdentifierKind, identifier, password string) (*domain.User, string, error)
}
