package ports

import (
	"context"
	"time"

	"github.com/taskmanager/task-api/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a task. UserID is
// required and must reference an existing account; ProjectID is optional but
// must reference an existing project when set.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	Deadline    *time.Time
	UserID      string
	ProjectID   string
}

// TaskService exposes task operations with ownership scoping applied.
type TaskService interface {
	// List returns tasks visible to the principal. For a non-admin principal
	// the filter is forcibly narrowed to the principal's own tasks.
	List(ctx context.Context, principal *domain.User, filter TaskFilter) ([]domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Task, error)
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	Update(ctx context.Context, id string, update TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
