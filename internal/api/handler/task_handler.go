package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskmanager/task-api/internal/api/metrics"
	"github.com/taskmanager/task-api/internal/api/middleware"
	"github.com/taskmanager/task-api/internal/core/domain"
	"github.com/taskmanager/task-api/internal/core/ports"
)

// TaskHandler handles task CRUD. Request bodies arrive from two frontend
// generations with different field spellings; normalization to a single
// shape happens here, at the decoding boundary, before the service is hit.
type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type createTaskRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	Deadline     *time.Time `json:"deadline"`
	UserID       string     `json:"user_id"`
	UserIDAlt    string     `json:"userId"`
	ProjectID    string     `json:"project_id"`
	ProjectIDAlt string     `json:"project"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	// Deadline stays raw so an explicit null (clear the deadline) can be
	// told apart from an absent field (leave it alone).
	Deadline     json.RawMessage `json:"deadline"`
	UserID       string          `json:"user_id"`
	UserIDAlt    string          `json:"userId"`
	ProjectID    string          `json:"project_id"`
	ProjectIDAlt string          `json:"project"`
}

// List handles GET /tasks and GET /tasks/all. The owner filter a client
// supplies is advisory only: the service narrows the query to the
// principal's own tasks whenever the principal is a non-admin.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Param        user_id     query     string  false  "Filter by owner id"
// @Param        project_id  query     string  false  "Filter by project id"
// @Success      200         {object}  dataEnvelope
// @Router       /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	filter := ports.TaskFilter{
		UserID:    firstNonEmpty(c.QueryParam("user_id"), c.QueryParam("userId")),
		ProjectID: firstNonEmpty(c.QueryParam("project_id"), c.QueryParam("projectId")),
	}

	tasks, err := h.taskService.List(c.Request().Context(), middleware.PrincipalFromContext(c), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope{Data: toTaskResponses(tasks)})
}

// ListByUser handles GET /tasks/by-user/:userId.
//
// @Summary      List tasks owned by a user
// @Tags         tasks
// @Produce      json
// @Param        userId  path      string  true  "Owner id"
// @Success      200     {object}  dataEnvelope
// @Router       /tasks/by-user/{userId} [get]
func (h *TaskHandler) ListByUser(c echo.Context) error {
	tasks, err := h.taskService.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope{Data: toTaskResponses(tasks)})
}

// Get handles GET /tasks/:id.
//
// @Summary      Get a task by id
// @Tags         tasks
// @Produce      json
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  dataEnvelope
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	task, err := h.taskService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope{Data: toTaskResponse(task)})
}

// Create handles POST /tasks.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  dataEnvelope
// @Failure      400   {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	task, err := h.taskService.Create(c.Request().Context(), ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
		Deadline:    req.Deadline,
		UserID:      firstNonEmpty(req.UserID, req.UserIDAlt),
		ProjectID:   firstNonEmpty(req.ProjectID, req.ProjectIDAlt),
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Priority)).Inc()
	return c.JSON(http.StatusCreated, dataEnvelope{Data: toTaskResponse(task)})
}

// Update handles PUT /tasks/:id.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to update"
// @Success      200   {object}  dataEnvelope
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	update := ports.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		UserID:      firstNonEmpty(req.UserID, req.UserIDAlt),
		ProjectID:   firstNonEmpty(req.ProjectID, req.ProjectIDAlt),
	}
	if len(req.Deadline) > 0 {
		if string(req.Deadline) == "null" {
			update.ClearDeadline = true
		} else {
			var deadline time.Time
			if err := json.Unmarshal(req.Deadline, &deadline); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid deadline")
			}
			update.Deadline = &deadline
		}
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		update.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		update.Priority = &priority
	}

	task, err := h.taskService.Update(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope{Data: toTaskResponse(task)})
}

// Delete handles DELETE /tasks/:id.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	if err := h.taskService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
