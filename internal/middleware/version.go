package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// VersionMiddleware resolves the X-Api-Version header sent by the dashboard
// client and stores it in c.Locals("apiVersion"). Requests without the header
// are treated as the current contract version.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", "1.0.0")

		// Older dashboard builds send the short form
		if version == "1.0" {
			version = "1.0.0"
		}

		c.Locals("apiVersion", version)

		return c.Next()
	}
}
