package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/ladybug-realty/ladybug-api/internal/session"
	"github.com/ladybug-realty/ladybug-api/internal/utils"
)

// AuthMiddleware verifies the Bearer token and establishes the request session.
func AuthMiddleware(jwtService *utils.JWTService) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		userID, err := jwtService.ExtractUserID(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		session.Store(c, session.Session{UserID: userID})

		return c.Next()
	}
}
