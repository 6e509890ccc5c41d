package upload

import (
	"fmt"
	"net/url"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/ladybug-realty/ladybug-api/internal/config"
	"github.com/ladybug-realty/ladybug-api/internal/utils"
)

// UploadService issues signed parameters so the browser can upload listing
// images straight to object storage. The stored image URLs stay opaque to
// the rest of the system.
type UploadService struct {
	cfg        *config.Config
	jwtService *utils.JWTService
}

// NewUploadService creates a new UploadService.
func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{
		cfg:        cfg,
		jwtService: utils.NewJWTService(cfg.JWTSecret),
	}
}

// GenerateUploadParams returns a timestamped signature for a direct upload.
func (s *UploadService) GenerateUploadParams(c fiber.Ctx) error {
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	params := url.Values{
		"timestamp": {timestamp},
		"folder":    {s.cfg.CloudinaryConfig.UploadFolder},
	}

	signature, err := api.SignParameters(params, s.cfg.CloudinaryConfig.APISecret)
	if err != nil {
		log.Error().Err(err).Msg("signing upload parameters failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate upload parameters"})
	}

	return c.JSON(fiber.Map{
		"timestamp":  timestamp,
		"signature":  signature,
		"api_key":    s.cfg.CloudinaryConfig.APIKey,
		"cloud_name": s.cfg.CloudinaryConfig.CloudName,
		"folder":     s.cfg.CloudinaryConfig.UploadFolder,
	})
}
