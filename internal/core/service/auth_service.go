package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskmanager/task-api/internal/core/domain"
	"github.com/taskmanager/task-api/internal/core/ports"
)

// AuthService owns credential verification and account registration.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	cost   int
	logger zerolog.Logger

	// dummyHash is compared against when a login identifier matches no
	// account. It carries the same work factor as real hashes, so the
	// unknown-identifier and wrong-password paths take comparable time and
	// a client cannot tell them apart.
	dummyHash []byte
}

// NewAuthService builds an AuthService. cost is the bcrypt work factor; a
// non-positive value falls back to bcrypt.DefaultCost (10).
func NewAuthService(users ports.UserRepository, tokens ports.TokenService, cost int, logger zerolog.Logger) *AuthService {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("credential-store-dummy"), cost)
	if err != nil {
		panic(err)
	}
	return &AuthService{users: users, tokens: tokens, cost: cost, logger: logger, dummyHash: dummy}
}

// Register creates an account and returns it alongside a fresh token. The
// raw password is hashed immediately and never retained or logged.
func (s *AuthService) Register(ctx context.Context, userName, email, password, role string) (*domain.User, string, error) {
	userName = domain.NormalizeUserName(userName)
	email = domain.NormalizeEmail(email)

	if userName == "" || email == "" || password == "" {
		return nil, "", domain.ErrInvalidInput
	}
	if !domain.ValidUserName(userName) {
		return nil, "", domain.ErrInvalidInput
	}
	if !domain.ValidPassword(password) {
		return nil, "", domain.ErrInvalidInput
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, "", domain.ErrInvalidInput
	}

	if existing, err := s.users.FindByUserNameOrEmail(ctx, userName, email); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	} else if existing != nil {
		return nil, "", domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, "", err
	}

	created, err := s.users.Create(ctx, &domain.User{
		UserName:     userName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", created.ID).Str("user_name", created.UserName).Msg("user registered")
	return created, token, nil
}

// Login verifies credentials by username or email. A miss on lookup and a
// hash mismatch both surface as domain.ErrInvalidCredentials; repository
// faults other than not-found propagate unchanged for 500-style handling.
func (s *AuthService) Login(ctx context.Context, kind ports.IdentifierKind, identifier, password string) (*domain.User, string, error) {
	if identifier == "" || password == "" {
		return nil, "", domain.ErrInvalidInput
	}

	var (
		user *domain.User
		err  error
	)
	switch kind {
	case ports.IdentifierUserName:
		user, err = s.users.FindByUserName(ctx, domain.NormalizeUserName(identifier))
	case ports.IdentifierEmail:
		user, err = s.users.FindByEmail(ctx, domain.NormalizeEmail(identifier))
	default:
		return nil, "", domain.ErrInvalidInput
	}

	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", err
		}
		// Burn a comparable amount of work before rejecting.
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, token, nil
}
