package ports

import (
	"context"

	"github.com/taskmanager/task-api/internal/core/domain"
)

// ProjectService exposes project CRUD.
type ProjectService interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, name, description string) (*domain.Project, error)
	Update(ctx context.Context, id string, update ProjectUpdate) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// CategoryService exposes category CRUD. Mutations are admin-only; the
// policy decision happens at the API layer before these are invoked.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, name, description, color string) (*domain.Category, error)
	Update(ctx context.Context, id string, update CategoryUpdate) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
