package profile

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/ladybug-realty/ladybug-api/internal/config"
	"github.com/ladybug-realty/ladybug-api/internal/db"
	"github.com/ladybug-realty/ladybug-api/internal/models"
	"github.com/ladybug-realty/ladybug-api/internal/session"
	"github.com/ladybug-realty/ladybug-api/internal/utils"
)

// ProfileService handles the caller's role record.
type ProfileService struct {
	cfg        *config.Config
	jwtService *utils.JWTService
}

// NewProfileService creates a new ProfileService.
func NewProfileService(cfg *config.Config) *ProfileService {
	return &ProfileService{
		cfg:        cfg,
		jwtService: utils.NewJWTService(cfg.JWTSecret),
	}
}

// GetProfile returns the caller's profile, creating it with the default
// buyer role on first authenticated access.
func (s *ProfileService) GetProfile(c fiber.Ctx) error {
	sess, ok := session.FromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	profile, err := db.GetProfile(ctx, sess.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", sess.UserID).Msg("fetching profile failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	return c.JSON(profile)
}

// UpdateRole changes the caller's role between buyer and seller.
func (s *ProfileService) UpdateRole(c fiber.Ctx) error {
	sess, ok := session.FromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Role != models.RoleBuyer && req.Role != models.RoleSeller {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid role. Must be 'buyer' or 'seller'"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	profile, err := db.UpdateProfileRole(ctx, sess.UserID, req.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		log.Error().Err(err).Str("user_id", sess.UserID).Msg("updating profile role failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile role"})
	}

	return c.JSON(profile)
}
