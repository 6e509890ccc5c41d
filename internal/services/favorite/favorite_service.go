package favorite

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/ladybug-realty/ladybug-api/internal/config"
	"github.com/ladybug-realty/ladybug-api/internal/db"
	"github.com/ladybug-realty/ladybug-api/internal/models"
	"github.com/ladybug-realty/ladybug-api/internal/session"
	"github.com/ladybug-realty/ladybug-api/internal/utils"
)

// FavoriteService handles the favorites endpoints.
type FavoriteService struct {
	cfg        *config.Config
	jwtService *utils.JWTService
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(cfg *config.Config) *FavoriteService {
	return &FavoriteService{
		cfg:        cfg,
		jwtService: utils.NewJWTService(cfg.JWTSecret),
	}
}

// AddFavorite bookmarks a listing for the caller. Re-adding an existing
// favorite returns the stored row rather than an error.
func (s *FavoriteService) AddFavorite(c fiber.Ctx) error {
	sess, ok := session.FromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var req struct {
		PropertyID string `json:"property_id"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.PropertyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Property ID is required"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	exists, err := db.PropertyExists(ctx, req.PropertyID)
	if err != nil {
		log.Error().Err(err).Str("property_id", req.PropertyID).Msg("checking property failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add favorite"})
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
	}

	fav, err := db.AddFavorite(ctx, sess.UserID, req.PropertyID)
	if err != nil {
		log.Error().Err(err).Str("property_id", req.PropertyID).Msg("adding favorite failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add favorite"})
	}

	return c.Status(fiber.StatusCreated).JSON(fav)
}

// RemoveFavorite deletes the caller's bookmark for a listing.
func (s *FavoriteService) RemoveFavorite(c fiber.Ctx) error {
	sess, ok := session.FromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	propertyID := c.Params("propertyId")
	if propertyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Property ID is required"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	if err := db.RemoveFavorite(ctx, sess.UserID, propertyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Favorite not found"})
		}
		log.Error().Err(err).Str("property_id", propertyID).Msg("removing favorite failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove favorite"})
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// GetFavorites returns the caller's bookmarks with embedded listings.
func (s *FavoriteService) GetFavorites(c fiber.Ctx) error {
	sess, ok := session.FromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	limit := 20
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	ctx, cancel := db.GetContext()
	defer cancel()

	favorites, total, err := db.GetFavorites(ctx, sess.UserID, limit, offset)
	if err != nil {
		log.Error().Err(err).Str("user_id", sess.UserID).Msg("fetching favorites failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch favorites"})
	}

	return c.JSON(models.FavoriteResponse{
		Favorites: favorites,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	})
}

// CheckFavorite reports whether the caller has bookmarked a listing.
func (s *FavoriteService) CheckFavorite(c fiber.Ctx) error {
	sess, ok := session.FromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	propertyID := c.Params("propertyId")
	if propertyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Property ID is required"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	isFavorite, err := db.IsFavorite(ctx, sess.UserID, propertyID)
	if err != nil {
		log.Error().Err(err).Str("property_id", propertyID).Msg("checking favorite failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check favorite"})
	}

	return c.JSON(fiber.Map{"is_favorite": isFavorite})
}
