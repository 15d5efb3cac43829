package ports

import (
	"context"

	"github.com/taskmanager/task-api/internal/core/domain"
)

// ProjectUpdate carries a partial project update; nil fields are untouched.
type ProjectUpdate struct {
	Name        *string
	Description *string
}

// ProjectRepository defines persistence for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	UpdateByID(ctx context.Context, id string, update ProjectUpdate) (*domain.Project, error)
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
