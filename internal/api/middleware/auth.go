package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskmanager/task-api/internal/core/domain"
	"github.com/taskmanager/task-api/internal/core/ports"
)

// PrincipalKey is the echo context key under which the authenticated user is
// stored. A missing or nil value means the request is anonymous.
const PrincipalKey = "principal"

// Auth is the authentication gate: it extracts the bearer token, verifies
// it, and resolves the subject to a live account. Every failure after the
// missing-header check collapses to the same 401 so nothing about the cause
// leaks — a tampered token and a deleted account look identical.
//
// The live-account lookup is the only enforcement point against tokens that
// outlive their account: tokens are stateless and never revoked server-side.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := resolvePrincipal(c, tokens, users)
			if err != nil {
				return err
			}
			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}

// OptionalAuth resolves a principal when a valid bearer token is present and
// otherwise lets the request through as anonymous. Read endpoints that are
// default-open but still scope results by ownership use this.
func OptionalAuth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if principal, err := resolvePrincipal(c, tokens, users); err == nil {
				c.Set(PrincipalKey, principal)
			}
			return next(c)
		}
	}
}

func resolvePrincipal(c echo.Context, tokens ports.TokenService, users ports.UserRepository) (*domain.User, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization token required")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization token required")
	}

	claims, err := tokens.Verify(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	user, err := users.FindByID(c.Request().Context(), claims.SubjectID)
	if err != nil {
		// Account deleted after issuance, or a transient store fault. Both
		// deny access; neither reveals which it was.
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	// The per-request principal never carries the hash.
	view := *user
	view.PasswordHash = ""
	return &view, nil
}

// PrincipalFromContext returns the authenticated user, or nil for anonymous.
func PrincipalFromContext(c echo.Context) *domain.User {
	principal, _ := c.Get(PrincipalKey).(*domain.User)
	return principal
}
