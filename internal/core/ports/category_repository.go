package ports

import (
	"context"

	"github.com/taskmanager/task-api/internal/core/domain"
)

// CategoryUpdate carries a partial category update; nil fields are untouched.
type CategoryUpdate struct {
	Name        *string
	Description *string
	Color       *string
}

// CategoryRepository defines persistence for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	UpdateByID(ctx context.Context, id string, update CategoryUpdate) (*domain.Category, error)
	DeleteByID(ctx context.Context, id string) error
}
