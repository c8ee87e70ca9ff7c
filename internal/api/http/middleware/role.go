package middleware

import (
	"github.com/gofiber/fiber/v3"

	pasetotoken "github.com/mindchat/mindchat_backend/pkg/paseto"
)

// RequireRole gates a route to one profile kind. Must run after AuthRequired.
func RequireRole(role string) fiber.Handler {
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
