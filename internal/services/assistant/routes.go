package assistant

import "github.com/gofiber/fiber/v3"

// SetupRoutes registers the assistant endpoints. They are public: the chat
// widget is shown to anonymous visitors too.
func (s *AssistantService) SetupRoutes(app *fiber.App) {
	app.Get("/api/assistant/greeting", s.GetGreeting)
	app.Post("/api/assistant/message", s.SendMessage)
}
