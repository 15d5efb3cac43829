package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskmanager/task-api/internal/core/domain"
	"github.com/taskmanager/task-api/internal/core/ports"
)

// UserService manages accounts outside the auth flow: listing, lookup by
// name, admin-less creation, and deletion with task cascade.
type UserService struct {
	users  ports.UserRepository
	tasks  ports.TaskRepository
	cost   int
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, tasks ports.TaskRepository, cost int, logger zerolog.Logger) *UserService {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &UserService{users: users, tasks: tasks, cost: cost, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	return s.users.FindByUserName(ctx, domain.NormalizeUserName(userName))
}

// Create adds an account with the default role. Unlike Register it issues
// no token; it backs the legacy POST /users endpoint.
func (s *UserService) Create(ctx context.Context, userName, email, password string) (*domain.User, error) {
	userName = domain.NormalizeUserName(userName)
	email = domain.NormalizeEmail(email)

	if userName == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domain.ValidUserName(userName) {
		return nil, domain.ErrInvalidInput
	}
	if !domain.ValidPassword(password) {
		return nil, domain.ErrInvalidInput
	}

	if existing, err := s.users.FindByUserNameOrEmail(ctx, userName, email); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, &domain.User{
		UserName:     userName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	})
}

// Delete removes the account and every task it owns. The cascade runs after
// the account delete succeeds; tokens already issued to the account stay
// valid until expiry and are cut off by the live-user lookup in the gate.
func (s *UserService) Delete(ctx context.Context, userName string) error {
	user, err := s.users.DeleteByUserName(ctx, domain.NormalizeUserName(userName))
	if err != nil {
		return err
	}

	removed, err := s.tasks.DeleteByUserID(ctx, user.ID)
	if err != nil {
		return err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("user_name", user.UserName).
		Int64("tasks_removed", removed).
		Msg("user deleted")
	return nil
}
