package handler

import (
	"time"

	"github.com/taskmanager/task-api/internal/core/domain"
)

// Two frontend generations consume this API: one reads snake_case fields,
// the other camelCase. The response mappers emit both spellings so neither
// client breaks. The duplication stays confined to this file.

type dataEnvelope struct {
	Data any `json:"data"`
}

type statusEnvelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type userResponse struct {
	ID           string    `json:"id"`
	LegacyID     string    `json:"_id"`
	UserName     string    `json:"user_name"`
	UserNameAlt  string    `json:"userName"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedAtAlt time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at"`
	UpdatedAtAlt time.Time `json:"updatedAt"`
}

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:           u.ID,
		LegacyID:     u.ID,
		UserName:     u.UserName,
		UserNameAlt:  u.UserName,
		Email:        u.Email,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
		CreatedAtAlt: u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		UpdatedAtAlt: u.UpdatedAt,
	}
}

func toUserResponses(users []domain.User) []*userResponse {
	out := make([]*userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}

type taskResponse struct {
	ID          string     `json:"id"`
	LegacyID    string     `json:"_id"`
	UserID      *string    `json:"user_id"`
	ProjectID   *string    `json:"project_id"`
	Category    string     `json:"category"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Deadline    *time.Time `json:"deadline"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toTaskResponse(t *domain.Task) *taskResponse {
	if t == nil {
		return nil
	}
	resp := &taskResponse{
		ID:          t.ID,
		LegacyID:    t.ID,
		Category:    t.Category,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Deadline:    t.Deadline,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.UserID != "" {
		resp.UserID = &t.UserID
	}
	if t.ProjectID != "" {
		resp.ProjectID = &t.ProjectID
	}
	return resp
}

func toTaskResponses(tasks []domain.Task) []*taskResponse {
	out := make([]*taskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, toTaskResponse(&tasks[i]))
	}
	return out
}

type projectResponse struct {
	ID           string    `json:"id"`
	LegacyID     string    `json:"_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedAtAlt time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at"`
	UpdatedAtAlt time.Time `json:"updatedAt"`
}

func toProjectResponse(p *domain.Project) *projectResponse {
	if p == nil {
		return nil
	}
	return &projectResponse{
		ID:           p.ID,
		LegacyID:     p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CreatedAt:    p.CreatedAt,
		CreatedAtAlt: p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		UpdatedAtAlt: p.UpdatedAt,
	}
}

func toProjectResponses(projects []domain.Project) []*projectResponse {
	out := make([]*projectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, toProjectResponse(&projects[i]))
	}
	return out
}

type categoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toCategoryResponse(cat *domain.Category) *categoryResponse {
	if cat == nil {
		return nil
	}
	return &categoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		Color:       cat.Color,
		CreatedAt:   cat.CreatedAt,
		UpdatedAt:   cat.UpdatedAt,
	}
}

func toCategoryResponses(categories []domain.Category) []*categoryResponse {
	out := make([]*categoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i]))
	}
	return out
}
