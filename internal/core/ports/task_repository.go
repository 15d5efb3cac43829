package ports

import (
	"context"
	"time"

	"github.com/taskmanager/task-api/internal/core/domain"
)

// TaskFilter narrows a task listing. Empty fields are ignored.
type TaskFilter struct {
	UserID    string
	ProjectID string
}

// TaskUpdate carries a partial update. Nil pointer fields are left untouched;
// UserID and ProjectID are only applied when non-empty. ClearDeadline
// removes the deadline and takes precedence over Deadline, so an explicit
// JSON null clears the field while an absent field leaves it alone.
type TaskUpdate struct {
	Title         *string
	Description   *string
	Status        *domain.TaskStatus
	Priority      *domain.TaskPriority
	Deadline      *time.Time
	ClearDeadline bool
	UserID        string
	ProjectID     string
}

// Empty reports whether the update carries no field at all.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil &&
		u.Priority == nil && u.Deadline == nil && !u.ClearDeadline &&
		u.UserID == "" && u.ProjectID == ""
}

// TaskRepository defines persistence for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// Find returns tasks matching the filter, newest first.
	Find(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	UpdateByID(ctx context.Context, id string, update TaskUpdate) (*domain.Task, error)
	DeleteByID(ctx context.Context, id string) error
	// DeleteByUserID removes every task owned by the user; used by the
	// account-deletion cascade.
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]domain.StatusCount, error)
	CountByPriority(ctx context.Context) ([]domain.StatusCount, error)
	ListRecent(ctx context.Context, limit int64) ([]domain.Task, error)
}
