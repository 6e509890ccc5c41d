package inquiry

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ladybug-realty/ladybug-api/internal/middleware"
)

// SetupRoutes registers the inquiry endpoints. Creating an inquiry is
// public; reading a listing's inquiries requires authentication.
func (s *InquiryService) SetupRoutes(app *fiber.App) {
	app.Post("/api/inquiries", s.CreateInquiry)

	auth := middleware.AuthMiddleware(s.jwtService)
	app.Get("/api/inquiries/:propertyId", s.GetInquiries, auth)
}
