// Package middleware provides HTTP middleware for the fiber application.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"paymo/internal/utils"
)

// Auth validates the bearer token and stores the claims in the request
// context under "claims" and "userID".
func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "missing authorization header"})
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid authorization format"})
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "), secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid token"})
		}

		c.Locals("claims", claims)
		c.Locals("userID", claims.UserID)
		return c.Next()
	}
}
