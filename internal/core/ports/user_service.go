package ports

import (
	"context"

	"github.com/taskmanager/task-api/internal/core/domain"
)

// UserService exposes account management beyond registration.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByUserName(ctx context.Context, userName string) (*domain.User, error)
	Create(ctx context.Context, userName, email, password string) (*domain.User, error)
	// Delete removes the account and cascades deletion of its tasks.
	Delete(ctx context.Context, userName string) error
}
