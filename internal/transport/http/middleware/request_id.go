package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDKey is the Locals key under which the request id is stored.
const RequestIDKey = "request_id"

// RequestID tags every request with an id for log correlation. When header
// is non-empty an incoming value under that header is honored, otherwise a
// fresh id is generated.
func RequestID(header string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var reqID string
		if header != "" {
			reqID = c.Get(header)
		}
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Locals(RequestIDKey, reqID)
		return c.Next()
	}
}

// RequestIDFrom returns the id set by RequestID, or "" before the
// middleware has run.
func RequestIDFrom(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
