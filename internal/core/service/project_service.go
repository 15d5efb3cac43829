package service

import (
	"context"
	"time"

	"github.com/taskmanager/task-api/internal/core/domain"
	"github.com/taskmanager/task-api/internal/core/ports"
)

// ProjectService implements project CRUD.
type ProjectService struct {
	projects ports.ProjectRepository
}

func NewProjectService(projects ports.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.FindByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, name, description string) (*domain.Project, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	return s.projects.Create(ctx, &domain.Project{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *ProjectService) Update(ctx context.Context, id string, update ports.ProjectUpdate) (*domain.Project, error) {
	return s.projects.UpdateByID(ctx, id, update)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.projects.DeleteByID(ctx, id)
}
