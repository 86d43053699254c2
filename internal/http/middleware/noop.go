package middleware

import "github.com/gofiber/fiber/v2"

// Noop simply calls the next handler. It is the placeholder slot for
// middleware that is conditionally disabled by configuration.
func Noop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}
