package upload

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ladybug-realty/ladybug-api/internal/middleware"
)

// SetupRoutes registers the upload endpoints.
func (s *UploadService) SetupRoutes(app *fiber.App) {
	auth := middleware.AuthMiddleware(s.jwtService)
	app.Get("/api/upload/params", s.GenerateUploadParams, auth)
}
