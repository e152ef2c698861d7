package middleware

import (
	"github.com/gofiber/fiber/v3"

	pasetotoken "github.com/nutrivida/nutrivida_backend/pkg/paseto"
)

// RequireRole restricts a route to one role. There are exactly two roles
// in the product, so route-level checks replace a policy engine.
func RequireRole(role pasetotoken.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if claims.Role != role {
			return fiber.ErrForbidden
		}
		return c.Next()
	}
}
