package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/taskmanager/task-api/internal/api/metrics"
	"github.com/taskmanager/task-api/internal/core/service"
)

// Authorize evaluates the central policy for the tagged operation. It must
// run after Auth so the principal is resolved; denial surfaces as the
// domain's forbidden error, which the error handler maps to 403.
func Authorize(policy *service.Policy, op service.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := policy.Authorize(PrincipalFromContext(c), op); err != nil {
				metrics.AuthDeniedTotal.WithLabelValues(string(op)).Inc()
				return err
			}
			return next(c)
		}
	}
}
