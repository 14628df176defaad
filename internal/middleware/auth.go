// Package middleware provides the request authorization gate, the role gate,
// and the Redis-backed rate limiting and response caching.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/drvince/womb-backend/internal/model"
	"github.com/drvince/womb-backend/internal/repository"
	"github.com/drvince/womb-backend/internal/utils"
)

// UserLoader resolves a token subject back to a user record.
type UserLoader interface {
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

const userContextKey = "auth_user"

// Authenticate validates the bearer access token, resolves its subject to a
// user record, and re-checks the lifecycle status on every request: a user
// deactivated mid-session loses access on their very next call even though
// the access token is still time-valid. The resolved user is stored in the
// context for CurrentUser.
func Authenticate(issuer *utils.TokenIssuer, users UserLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			email, err := issuer.Validate(strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			u, err := users.GetByEmail(ctx, email)
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "could not validate credentials"})
			}
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
			}

			if u.Status.Blocked() {
				msg := "Account is deactivated"
				if u.Status == model.StatusPending {
					msg = "Account is pending activation"
				}
				return c.JSON(http.StatusForbidden, echo.Map{"error": msg})
			}

			c.Set(userContextKey, u)
			return next(c)
		}
	}
}

// RequireRole rejects authenticated users whose role is not in the allowed
// set. It must run after Authenticate.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := CurrentUser(c)
			if !ok || !allowed[u.Role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "insufficient permissions"})
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by Authenticate for this request.
func CurrentUser(c echo.Context) (model.User, bool) {
	u, ok := c.Get(userContextKey).(model.User)
	return u, ok
}
