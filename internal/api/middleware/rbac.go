package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrdesk/employee-api/internal/core/domain"
)

// RequireRoles rejects requests whose token does not carry at least one of
// the given roles. It must run after Auth.
func RequireRoles(required ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(required))
	for _, r := range required {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get(ContextKeyRoles).([]domain.Role)
			for _, r := range roles {
				if _, ok := allowed[r]; ok {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
		}
	}
}
