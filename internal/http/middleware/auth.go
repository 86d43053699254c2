package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"adminapi/internal/auth"
)

const (
	// AuthUserIDLocalKey is the Fiber locals key holding the authenticated
	// user id.
	AuthUserIDLocalKey = "auth_user_id"
	// AuthEmailLocalKey is the Fiber locals key holding the authenticated
	// user email.
	AuthEmailLocalKey = "auth_email"
)

// TokenVerifier checks a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// BearerAuth guards a route group with bearer-token authentication. A
// missing, malformed, expired or forged token short-circuits the request with
// 401; on success the user id and email are stored in context locals.
func BearerAuth(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return fiber.ErrUnauthorized
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals(AuthUserIDLocalKey, claims.UserID)
		c.Locals(AuthEmailLocalKey, claims.Subject)

		return c.Next()
	}
}

// AuthUserID returns the authenticated user id stored by BearerAuth, or zero
// when the request is unauthenticated.
func AuthUserID(c *fiber.Ctx) int {
	if v, ok := c.Locals(AuthUserIDLocalKey).(int); ok {
		return v
	}
	return 0
}
