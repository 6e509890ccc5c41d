package inquiry

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/ladybug-realty/ladybug-api/internal/config"
	"github.com/ladybug-realty/ladybug-api/internal/db"
	"github.com/ladybug-realty/ladybug-api/internal/models"
	"github.com/ladybug-realty/ladybug-api/internal/utils"
)

// InquiryService handles buyer-to-agent contact messages.
type InquiryService struct {
	cfg        *config.Config
	jwtService *utils.JWTService
}

// NewInquiryService creates a new InquiryService.
func NewInquiryService(cfg *config.Config) *InquiryService {
	return &InquiryService{
		cfg:        cfg,
		jwtService: utils.NewJWTService(cfg.JWTSecret),
	}
}

// CreateInquiry records a message for a listing's agent. The endpoint is
// public: prospective buyers are not required to have an account.
func (s *InquiryService) CreateInquiry(c fiber.Ctx) error {
	var req struct {
		PropertyID  string  `json:"property_id"`
		Name        string  `json:"name"`
		Email       string  `json:"email"`
		Phone       *string `json:"phone"`
		Message     string  `json:"message"`
		InquiryType string  `json:"inquiry_type"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	required := map[string]string{
		"property_id":  req.PropertyID,
		"name":         req.Name,
		"email":        req.Email,
		"message":      req.Message,
		"inquiry_type": req.InquiryType,
	}
	for field, value := range required {
		if value == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("%s is required", field)})
		}
	}
	if !models.ValidInquiryTypes[req.InquiryType] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid inquiry type. Must be general, tour, offer or agent"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	exists, err := db.PropertyExists(ctx, req.PropertyID)
	if err != nil {
		log.Error().Err(err).Str("property_id", req.PropertyID).Msg("checking property failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create inquiry"})
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
	}

	inq := models.Inquiry{
		PropertyID:  req.PropertyID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		InquiryType: req.InquiryType,
	}
	if err := db.CreateInquiry(ctx, &inq); err != nil {
		log.Error().Err(err).Str("property_id", req.PropertyID).Msg("inserting inquiry failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create inquiry"})
	}

	return c.Status(fiber.StatusCreated).JSON(inq)
}

// GetInquiries returns the inquiries for a listing, newest first.
func (s *InquiryService) GetInquiries(c fiber.Ctx) error {
	propertyID := c.Params("propertyId")
	if propertyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Property ID is required"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	inquiries, err := db.GetInquiries(ctx, propertyID)
	if err != nil {
		log.Error().Err(err).Str("property_id", propertyID).Msg("fetching inquiries failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch inquiries"})
	}

	return c.JSON(inquiries)
}
