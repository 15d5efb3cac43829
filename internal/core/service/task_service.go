package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskmanager/task-api/internal/core/domain"
	"github.com/taskmanager/task-api/internal/core/ports"
)

// TaskService implements task CRUD with ownership scoping and referential
// validation of user and project ids.
type TaskService struct {
	tasks    ports.TaskRepository
	users    ports.UserRepository
	projects ports.ProjectRepository
	policy   *Policy
	logger   zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, projects ports.ProjectRepository, policy *Policy, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, users: users, projects: projects, policy: policy, logger: logger}
}

// List returns tasks newest first. A non-admin principal only ever sees its
// own tasks, whatever filter the client supplied.
func (s *TaskService) List(ctx context.Context, principal *domain.User, filter ports.TaskFilter) ([]domain.Task, error) {
	return s.tasks.Find(ctx, s.policy.ScopeTaskFilter(principal, filter))
}

func (s *TaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.FindByID(ctx, id)
}

func (s *TaskService) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.tasks.Find(ctx, ports.TaskFilter{UserID: userID})
}

// Create validates the referenced owner and optional project before the
// write. A dangling reference fails with domain.ErrInvalidReference, which
// is an input error, not an authorization denial.
func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if input.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrInvalidInput)
	}
	if input.Status == "" {
		input.Status = domain.StatusTodo
	}
	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}
	if !input.Status.Valid() || !input.Priority.Valid() {
		return nil, domain.ErrInvalidInput
	}

	if err := s.checkUserRef(ctx, input.UserID); err != nil {
		return nil, err
	}
	if input.ProjectID != "" {
		if err := s.checkProjectRef(ctx, input.ProjectID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		Deadline:    input.Deadline,
		UserID:      input.UserID,
		ProjectID:   input.ProjectID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("task_id", created.ID).Str("user_id", created.UserID).Msg("task created")
	return created, nil
}

// Update applies a partial update after validating any re-referenced ids
// and enum values. An empty update is rejected.
func (s *TaskService) Update(ctx context.Context, id string, update ports.TaskUpdate) (*domain.Task, error) {
	if update.Empty() {
		return nil, fmt.Errorf("%w: no valid fields to update", domain.ErrInvalidInput)
	}
	if update.Status != nil && !update.Status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if update.Priority != nil && !update.Priority.Valid() {
		return nil, domain.ErrInvalidInput
	}

	if update.UserID != "" {
		if err := s.checkUserRef(ctx, update.UserID); err != nil {
			return nil, err
		}
	}
	if update.ProjectID != "" {
		if err := s.checkProjectRef(ctx, update.ProjectID); err != nil {
			return nil, err
		}
	}

	return s.tasks.UpdateByID(ctx, id, update)
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.tasks.DeleteByID(ctx, id)
}

func (s *TaskService) checkUserRef(ctx context.Context, userID string) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("%w: invalid user id", domain.ErrInvalidReference)
		}
		return err
	}
	return nil
}

func (s *TaskService) checkProjectRef(ctx context.Context, projectID string) error {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return fmt.Errorf("%w: invalid project id", domain.ErrInvalidReference)
		}
		return err
	}
	return nil
}
