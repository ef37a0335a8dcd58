package auth

import (
	"strings"

	"github.com/labstack/echo/v4"
	apierr "github.com/shopfab/shopfab/pkg/api/types/errors"
	kdb "github.com/shopfab/shopfab/pkg/db"
)

// key under which RequireSignIn stashes the user id in echo.Context.
const contextKeyUserId = "shopfab/userId"

// UserIdFrom reads the signed-in user id stashed by RequireSignIn.
// Empty when the request did not pass RequireSignIn.
func UserIdFrom(c echo.Context) string {
	userId, _ := c.Get(contextKeyUserId).(string)
	return userId
}

// SetUserId stashes a user id as RequireSignIn would. For tests.
func SetUserId(c echo.Context, userId string) {
	c.Set(contextKeyUserId, userId)
}

// RequireSignIn verifies the session token in the Authorization header
// ("Bearer " prefix optional) and stashes the user id for handlers.
func RequireSignIn(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token := strings.TrimPrefix(header, "Bearer ")
			if token == "" {
				return apierr.Unauthorized("sign in required", nil)
			}

			userId, err := verifier.Verify(token)
			if err != nil {
				return apierr.Unauthorized("sign in again", err)
			}

			c.Set(contextKeyUserId, userId)
			return next(c)
		}
	}
}

// RequireAdmin rejects requests whose signed-in user is not an admin.
// It should be chained after RequireSignIn.
func RequireAdmin(users kdb.UserInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userId := UserIdFrom(c)
			if userId == "" {
				return apierr.Unauthorized("sign in required", nil)
			}

			user, err := users.Get(c.Request().Context(), userId)
			if err != nil {
				return apierr.Unauthorized("sign in again", err)
			}
			if user.Role != kdb.RoleAdmin {
				return apierr.Forbidden("admin only")
			}

			return next(c)
		}
	}
}
