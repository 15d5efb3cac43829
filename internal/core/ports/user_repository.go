package ports

import (
	"context"

	"github.com/taskmanager/task-api/internal/core/domain"
)

// UserRepository defines persistence for account identities. Uniqueness of
// user_name and email is enforced by the storage layer (unique indexes);
// Create surfaces a violation as domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUserName(ctx context.Context, userName string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByUserNameOrEmail returns the first user matching either the
	// normalized username or email. Used by the duplicate pre-check.
	FindByUserNameOrEmail(ctx context.Context, userName, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// DeleteByUserName removes the user and returns the deleted record so the
	// caller can cascade cleanup of owned tasks.
	DeleteByUserName(ctx context.Context, userName string) (*domain.User, error)
	// HasAdmin reports whether any account with the admin role exists.
	HasAdmin(ctx context.Context) (bool, error)
	Count(ctx context.Context) (int64, error)
	ListRecent(ctx context.Context, limit int64) ([]domain.User, error)
}
