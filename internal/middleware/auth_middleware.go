package middleware

import (
	"strings"

	"go-catalog-backend/internal/policy"
	"go-catalog-backend/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth resolves the caller identity from the Bearer token the
// external identity provider issued and stores it in the request context.
// This service never issues tokens; it only verifies and consumes them.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := token.Parse(parts[1], secret)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("caller_id", claims.UserID)
		c.Locals("caller_email", claims.Email)
		c.Locals("caller_role", policy.Normalize(claims.Role))

		return c.Next()
	}
}

// RequireRole gates a route on the policy table. Runs after RequireAuth.
func RequireRole(op policy.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !policy.Allows(CallerRole(c), op) {
			return c.Status(403).JSON(fiber.Map{"error": "Forbidden"})
		}
		return c.Next()
	}
}

// CallerRole returns the role resolved by RequireAuth, or RoleNone if the
// middleware did not run.
func CallerRole(c *fiber.Ctx) policy.Role {
	role, ok := c.Locals("caller_role").(policy.Role)
	if !ok {
		return policy.RoleNone
	}
	return role
}
