package assistant

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

// AssistantService answers property questions from a scripted lookup table.
type AssistantService struct{}

// NewAssistantService creates a new AssistantService.
func NewAssistantService() *AssistantService {
	return &AssistantService{}
}

// SendMessage returns the scripted reply for a visitor message.
func (s *AssistantService) SendMessage(c fiber.Ctx) error {
	var req struct {
		PropertyID string `json:"property_id"`
		Message    string `json:"message"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message is required"})
	}

	return c.JSON(fiber.Map{
		"reply":     Respond(req.Message),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GetGreeting returns the opening assistant message for the chat widget.
func (s *AssistantService) GetGreeting(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"reply": Greeting})
}
