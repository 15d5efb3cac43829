package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskmanager/task-api/internal/core/domain"
	"github.com/taskmanager/task-api/internal/core/ports"
)

// AdminSeed holds the bootstrap admin credentials from configuration.
type AdminSeed struct {
	UserName string
	Email    string
	Password string
}

// EnsureAdmin creates the bootstrap admin account when no admin exists yet.
// It runs once before the listener starts and is idempotent: a second run
// against a seeded store is a no-op. Callers treat a returned error as a
// soft failure — log it and start the service anyway.
func EnsureAdmin(ctx context.Context, users ports.UserRepository, seed AdminSeed, cost int, logger zerolog.Logger) error {
	if seed.UserName == "" || seed.Email == "" || seed.Password == "" {
		logger.Info().Msg("admin seed credentials not configured, skipping")
		return nil
	}

	exists, err := users.HasAdmin(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), cost)
	if err != nil {
		return err
	}

	created, err := users.Create(ctx, &domain.User{
		UserName:     domain.NormalizeUserName(seed.UserName),
		Email:        domain.NormalizeEmail(seed.Email),
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		// Another instance may have seeded concurrently; that still
		// satisfies the precondition.
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return err
	}

	logger.Info().Str("user_name", created.UserName).Msg("bootstrap admin created")
	return nil
}
