package service

import (
	"context"
	"time"

	"github.com/taskmanager/task-api/internal/core/domain"
	"github.com/taskmanager/task-api/internal/core/ports"
)

// CategoryService implements category CRUD. Role enforcement for mutations
// happens in the API layer through the policy; the service assumes the
// caller was already authorized.
type CategoryService struct {
	categories ports.CategoryRepository
}

func NewCategoryService(categories ports.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, name, description, color string) (*domain.Category, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if color == "" {
		color = domain.DefaultCategoryColor
	}
	now := time.Now().UTC()
	return s.categories.Create(ctx, &domain.Category{
		Name:        name,
		Description: description,
		Color:       color,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *CategoryService) Update(ctx context.Context, id string, update ports.CategoryUpdate) (*domain.Category, error) {
	return s.categories.UpdateByID(ctx, id, update)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.categories.DeleteByID(ctx, id)
}
