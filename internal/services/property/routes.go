package property

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ladybug-realty/ladybug-api/internal/middleware"
)

// SetupRoutes registers the listing endpoints. Browsing and search are
// public; management routes share the prefix, so auth is attached per route
// rather than on the group.
func (s *PropertyService) SetupRoutes(app *fiber.App) {
	app.Get("/api/properties", s.GetProperties)
	app.Get("/api/properties/:propertyId", s.GetProperty)
	app.Get("/api/search", s.SearchProperties)

	auth := middleware.AuthMiddleware(s.jwtService)
	app.Post("/api/properties", s.CreateProperty, auth)
	app.Put("/api/properties/:propertyId", s.UpdateProperty, auth)
	app.Delete("/api/properties/:propertyId", s.DeleteProperty, auth)
}
