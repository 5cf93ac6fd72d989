package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cobra-facil/cobra_facil/internal/auth"
)

// RequireAuth guards protected routes. A missing or malformed Authorization
// header is unauthenticated (401); a revoked or invalid/expired token is
// forbidden (403) so the client knows to re-authenticate instead of
// retrying. On success the user id and raw token land in Locals.
func RequireAuth(tokens *auth.TokenService, revoked auth.RevocationList) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		parts := strings.SplitN(authz, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}
		raw := strings.TrimSpace(parts[1])

		hit, err := revoked.IsRevoked(c.UserContext(), raw)
		if err != nil {
			return fiber.NewError(http.StatusInternalServerError, "revocation lookup failed")
		}
		if hit {
			return fiber.NewError(http.StatusForbidden, "session expired, authenticate again")
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			return fiber.NewError(http.StatusForbidden, "invalid or expired token")
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("token", raw)
		return c.Next()
	}
}
