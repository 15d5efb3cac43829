package service

import (
	"github.com/taskmanager/task-api/internal/core/domain"
	"github.com/taskmanager/task-api/internal/core/ports"
)

// Operation tags every access-controlled action so the policy can be
// evaluated in one place instead of per-handler role checks.
type Operation string

const (
	OpTaskList      Operation = "task.list"
	OpTaskRead      Operation = "task.read"
	OpTaskCreate    Operation = "task.create"
	OpTaskUpdate    Operation = "task.update"
	OpTaskDelete    Operation = "task.delete"
	OpProjectRead   Operation = "project.read"
	OpProjectWrite  Operation = "project.write"
	OpCategoryRead  Operation = "category.read"
	OpCategoryWrite Operation = "category.write"
	OpUserRead      Operation = "user.read"
	OpUserWrite     Operation = "user.write"
	OpStatsView     Operation = "stats.view"
)

// adminOnly lists the operations that require the admin role. Everything
// else is default-open: anonymous principals pass.
var adminOnly = map[Operation]struct{}{
	OpCategoryWrite: {},
	OpStatsView:     {},
}

// Policy is the per-request authorization decision function. It is pure:
// the caller applies the verdict before touching persistence.
type Policy struct{}

func NewPolicy() *Policy {
	return &Policy{}
}

// Authorize decides whether the principal (nil = anonymous) may perform op.
// The only failure it returns is domain.ErrForbidden.
func (p *Policy) Authorize(principal *domain.User, op Operation) error {
	if _, restricted := adminOnly[op]; !restricted {
		return nil
	}
	if !principal.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// ScopeTaskFilter narrows a listing filter to the principal's own tasks
// when the principal is a non-admin, overriding any client-supplied owner
// filter. Anonymous listings and admin listings pass through unchanged.
func (p *Policy) ScopeTaskFilter(principal *domain.User, filter ports.TaskFilter) ports.TaskFilter {
	if principal == nil || principal.IsAdmin() {
		return filter
	}
	filter.UserID = principal.ID
	return filter
}
