package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/taskmgr/backend/internal/core/ports"
	"github.com/taskmgr/backend/internal/transport/http/dto"
)

// UserIDKey is the locals key under which RequireUser stores the
// authenticated user id.
const UserIDKey = "user_id"

// RequireUser resolves the session cookie (or a bearer token) into a user
// id before any handler logic runs. Unauthenticated requests stop here
// with 401.
func RequireUser(auth ports.AuthService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			header := c.Get("Authorization")
			const prefix = "Bearer "
			if len(header) > len(prefix) && header[:len(prefix)] == prefix {
				token = header[len(prefix):]
			}
		}

		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Authentication required"))
		}

		userID, err := auth.ResolveToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Invalid or expired session"))
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// CurrentUserID reads the id stored by RequireUser.
func CurrentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
