package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskmanager/task-api/internal/core/ports"
)

// UserHandler handles account listing, lookup, creation, and deletion.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type createUserRequest struct {
	UserName    string `json:"user_name"`
	UserNameAlt string `json:"userName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// List handles GET /users/all.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {object}  dataEnvelope
// @Router       /users/all [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope{Data: toUserResponses(users)})
}

// GetByName handles GET /users/:userName.
//
// @Summary      Get a user by username
// @Tags         users
// @Produce      json
// @Param        userName  path      string  true  "Username"
// @Success      200       {object}  dataEnvelope
// @Failure      404       {object}  map[string]string
// @Router       /users/{userName} [get]
func (h *UserHandler) GetByName(c echo.Context) error {
	user, err := h.userService.GetByUserName(c.Request().Context(), c.Param("userName"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope{Data: toUserResponse(user)})
}

// Create handles POST /users — the legacy account-creation endpoint that
// issues no token.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  statusEnvelope
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	userName := firstNonEmpty(req.UserName, req.UserNameAlt)
	if userName == "" || req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Username, email, and password are required")
	}

	user, err := h.userService.Create(c.Request().Context(), userName, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, statusEnvelope{Status: "created", Data: toUserResponse(user)})
}

// Delete handles DELETE /users/:userName. Tasks owned by the account are
// removed in the same operation.
//
// @Summary      Delete a user and their tasks
// @Tags         users
// @Produce      json
// @Param        userName  path      string  true  "Username"
// @Success      200       {object}  map[string]bool
// @Failure      404       {object}  map[string]string
// @Router       /users/{userName} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), c.Param("userName")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
