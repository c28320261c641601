package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const headerName = "X-Ray-ID"

// New returns a middleware that assigns a unique ray id to every request.
// An incoming X-Ray-ID header is honored so upstream proxies can correlate;
// otherwise a fresh UUID is generated. The id is stored in Locals("ray_id")
// and echoed in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(headerName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(headerName, rid)
		return c.Next()
	}
}
