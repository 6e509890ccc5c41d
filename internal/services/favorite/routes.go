package favorite

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ladybug-realty/ladybug-api/internal/middleware"
)

// SetupRoutes registers the favorites endpoints. All of them require the
// caller to be authenticated.
func (s *FavoriteService) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/favorites")
	api.Use(middleware.AuthMiddleware(s.jwtService))

	api.Get("/", s.GetFavorites)
	api.Post("/", s.AddFavorite)
	api.Delete("/:propertyId", s.RemoveFavorite)
	api.Get("/:propertyId/check", s.CheckFavorite)
}
