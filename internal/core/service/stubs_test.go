package service

import (
	"context"
	"strconv"

	"github.com/taskmanager/task-api/internal/core/domain"
	"github.com/taskmanager/task-api/internal/core/ports"
)

// In-memory fakes backing the service tests. They mirror the storage-layer
// contracts: uniqueness on user_name/email, not-found sentinels, and
// newest-first ordering is approximated by insertion order reversal.

type stubUserRepo struct {
	seq   int
	users map[string]*domain.User // keyed by id
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.UserName == user.UserName || existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	created := cloneUser(user)
	created.ID = strconv.Itoa(r.seq)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUserName(_ context.Context, userName string) (*domain.User, error) {
	for _, u := range r.users {
		if u.UserName == userName {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUserNameOrEmail(_ context.Context, userName, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.UserName == userName || u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) DeleteByUserName(_ context.Context, userName string) (*domain.User, error) {
	for id, u := range r.users {
		if u.UserName == userName {
			delete(r.users, id)
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) HasAdmin(_ context.Context) (bool, error) {
	for _, u := range r.users {
		if u.Role == domain.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) ListRecent(_ context.Context, limit int64) ([]domain.User, error) {
	users, _ := r.List(context.Background())
	if int64(len(users)) > limit {
		users = users[:limit]
	}
	return users, nil
}

type stubTaskRepo struct {
	seq   int
	tasks map[string]*domain.Task
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.Task)}
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	r.seq++
	created := *task
	created.ID = "t" + strconv.Itoa(r.seq)
	r.tasks[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	if t, ok := r.tasks[id]; ok {
		clone := *t
		return &clone, nil
	}
	return nil, domain.ErrTaskNotFound
}

func (r *stubTaskRepo) Find(_ context.Context, filter ports.TaskFilter) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range r.tasks {
		if filter.UserID != "" && t.UserID != filter.UserID {
			continue
		}
		if filter.ProjectID != "" && t.ProjectID != filter.ProjectID {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTaskRepo) UpdateByID(_ context.Context, id string, update ports.TaskUpdate) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	if update.Title != nil {
		t.Title = *update.Title
	}
	if update.Description != nil {
		t.Description = *update.Description
	}
	if update.Status != nil {
		t.Status = *update.Status
	}
	if update.Priority != nil {
		t.Priority = *update.Priority
	}
	if update.ClearDeadline {
		t.Deadline = nil
	} else if update.Deadline != nil {
		t.Deadline = update.Deadline
	}
	if update.UserID != "" {
		t.UserID = update.UserID
	}
	if update.ProjectID != "" {
		t.ProjectID = update.ProjectID
	}
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *stubTaskRepo) DeleteByUserID(_ context.Context, userID string) (int64, error) {
	var n int64
	for id, t := range r.tasks {
		if t.UserID == userID {
			delete(r.tasks, id)
			n++
		}
	}
	return n, nil
}

func (r *stubTaskRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.tasks)), nil
}

func (r *stubTaskRepo) CountByStatus(_ context.Context) ([]domain.StatusCount, error) {
	return r.groupCount(func(t *domain.Task) string { return string(t.Status) }), nil
}

func (r *stubTaskRepo) CountByPriority(_ context.Context) ([]domain.StatusCount, error) {
	return r.groupCount(func(t *domain.Task) string { return string(t.Priority) }), nil
}

func (r *stubTaskRepo) groupCount(key func(*domain.Task) string) []domain.StatusCount {
	counts := make(map[string]int64)
	for _, t := range r.tasks {
		counts[key(t)]++
	}
	out := make([]domain.StatusCount, 0, len(counts))
	for k, v := range counts {
		out = append(out, domain.StatusCount{Key: k, Count: v})
	}
	return out
}

func (r *stubTaskRepo) ListRecent(_ context.Context, limit int64) ([]domain.Task, error) {
	tasks, _ := r.Find(context.Background(), ports.TaskFilter{})
	if int64(len(tasks)) > limit {
		tasks = tasks[:limit]
	}
	return tasks, nil
}

type stubProjectRepo struct {
	seq      int
	projects map[string]*domain.Project
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) Create(_ context.Context, project *domain.Project) (*domain.Project, error) {
	r.seq++
	created := *project
	created.ID = "p" + strconv.Itoa(r.seq)
	r.projects[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	if p, ok := r.projects[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) List(_ context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProjectRepo) UpdateByID(_ context.Context, id string, update ports.ProjectUpdate) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	clone := *p
	return &clone, nil
}

func (r *stubProjectRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *stubProjectRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.projects)), nil
}
