package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskmanager/task-api/internal/api/metrics"
	"github.com/taskmanager/task-api/internal/core/ports"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	UserName    string `json:"user_name"`
	UserNameAlt string `json:"userName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

type loginRequest struct {
	UserName    string `json:"user_name"`
	UserNameAlt string `json:"userName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type authResponse struct {
	Data  *userResponse `json:"data"`
	Token string        `json:"token"`
}

// Register creates a new account and returns it with a fresh token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	userName := firstNonEmpty(req.UserName, req.UserNameAlt)
	if userName == "" || req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Username, email, and password are required")
	}

	user, token, err := h.authService.Register(c.Request().Context(), userName, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, authResponse{Data: toUserResponse(user), Token: token})
}

// Login authenticates by username or email and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	userName := firstNonEmpty(req.UserName, req.UserNameAlt)
	if (userName == "" && req.Email == "") || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Username/email and password are required")
	}

	kind, identifier := ports.IdentifierEmail, req.Email
	if userName != "" {
		kind, identifier = ports.IdentifierUserName, userName
	}

	user, token, err := h.authService.Login(c.Request().Context(), kind, identifier, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Data: toUserResponse(user), Token: token})
}

// firstNonEmpty resolves the dual-field compatibility shim: older clients
// send snake_case, newer ones camelCase.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
