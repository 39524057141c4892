package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalsKey is the context key under which the ray ID is stored.
const LocalsKey = "ray_id"

// Header is the response header carrying the ray ID.
const Header = "X-Ray-ID"

// New returns a middleware that assigns a unique ray ID to every request.
// An incoming X-Ray-ID header is honored so callers can propagate IDs
// across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)

		return c.Next()
	}
}
