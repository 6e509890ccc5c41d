package profile

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ladybug-realty/ladybug-api/internal/middleware"
)

// SetupRoutes registers the profile endpoints.
func (s *ProfileService) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/profile")
	api.Use(middleware.AuthMiddleware(s.jwtService))

	api.Get("/", s.GetProfile)
	api.Put("/role", s.UpdateRole)
}
