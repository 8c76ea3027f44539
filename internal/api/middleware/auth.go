package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hrdesk/employee-api/internal/api/metrics"
	"github.com/hrdesk/employee-api/internal/pkg/token"
)

// Context keys under which Auth stores the verified claims.
const (
	ContextKeyUsername = "username"
	ContextKeyUserID   = "user_id"
	ContextKeyRoles    = "roles"
)

// RevocationChecker reports whether a token id has been revoked. A nil
// checker disables the revocation lookup.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Auth validates the bearer token and injects its claims into the request
// context. Requests with a missing, malformed, invalid or revoked token are
// rejected before reaching any handler.
func Auth(tokens *token.Manager, revocations RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.TokensRejectedTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokensRejectedTotal.WithLabelValues("malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokensRejectedTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if revocations != nil && claims.ID != "" {
				revoked, err := revocations.IsRevoked(c.Request().Context(), claims.ID)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "token verification unavailable")
				}
				if revoked {
					metrics.TokensRejectedTotal.WithLabelValues("revoked").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
			}

			c.Set(ContextKeyUsername, claims.Username)
			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyRoles, claims.Roles)

			return next(c)
		}
	}
}
