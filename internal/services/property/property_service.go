package property

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/ladybug-realty/ladybug-api/internal/config"
	"github.com/ladybug-realty/ladybug-api/internal/db"
	"github.com/ladybug-realty/ladybug-api/internal/models"
	"github.com/ladybug-realty/ladybug-api/internal/session"
	"github.com/ladybug-realty/ladybug-api/internal/utils"
)

// PropertyService handles the listing endpoints.
type PropertyService struct {
	cfg        *config.Config
	jwtService *utils.JWTService
}

// NewPropertyService creates a new PropertyService.
func NewPropertyService(cfg *config.Config) *PropertyService {
	return &PropertyService{
		cfg:        cfg,
		jwtService: utils.NewJWTService(cfg.JWTSecret),
	}
}

// propertyRequest is the create/update payload from the seller form.
type propertyRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        string   `json:"price"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zip_code"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    string   `json:"bathrooms"`
	SquareFeet   int      `json:"square_footage"`
	LotSize      *string  `json:"lot_size"`
	YearBuilt    *int     `json:"year_built"`
	PropertyType string   `json:"property_type"`
	Status       string   `json:"status"`
	Images       []string `json:"images"`
	Features     []string `json:"features"`
	HOAFees      *string  `json:"hoa_fees"`
	PropertyTax  *string  `json:"property_tax"`
	AgentName    *string  `json:"agent_name"`
	AgentPhone   *string  `json:"agent_phone"`
	AgentEmail   *string  `json:"agent_email"`
	AgentPhoto   *string  `json:"agent_photo"`
	AgentRating  *string  `json:"agent_rating"`
	AgentReviews *int     `json:"agent_reviews"`
}

func (r *propertyRequest) validate() error {
	required := map[string]string{
		"title":         r.Title,
		"description":   r.Description,
		"price":         r.Price,
		"address":       r.Address,
		"city":          r.City,
		"state":         r.State,
		"zip_code":      r.ZipCode,
		"bathrooms":     r.Bathrooms,
		"property_type": r.PropertyType,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", field)
		}
	}
	if r.Bedrooms < 0 {
		return errors.New("bedrooms must not be negative")
	}
	if r.SquareFeet <= 0 {
		return errors.New("square_footage must be positive")
	}
	if _, err := strconv.ParseFloat(r.Price, 64); err != nil {
		return errors.New("price must be a decimal number")
	}
	return nil
}

func (r *propertyRequest) apply(p *models.Property) {
	p.Title = r.Title
	p.Description = r.Description
	p.Price = r.Price
	p.Address = r.Address
	p.City = r.City
	p.State = r.State
	p.ZipCode = r.ZipCode
	p.Bedrooms = r.Bedrooms
	p.Bathrooms = r.Bathrooms
	p.SquareFeet = r.SquareFeet
	p.LotSize = r.LotSize
	p.YearBuilt = r.YearBuilt
	p.PropertyType = r.PropertyType
	p.Status = r.Status
	if p.Status == "" {
		p.Status = models.StatusForSale
	}
	p.Images = r.Images
	if p.Images == nil {
		p.Images = []string{}
	}
	p.Features = r.Features
	if p.Features == nil {
		p.Features = []string{}
	}
	p.HOAFees = r.HOAFees
	p.PropertyTax = r.PropertyTax
	p.AgentName = r.AgentName
	p.AgentPhone = r.AgentPhone
	p.AgentEmail = r.AgentEmail
	p.AgentPhoto = r.AgentPhoto
	p.AgentRating = r.AgentRating
	p.AgentReviews = r.AgentReviews
}

// GetProperties returns listings, filtered when any filter parameter is
// supplied. With no filters this is the plain fetch-everything path; the
// filtered path goes through the search builder, which keeps its own
// empty-filters-means-empty behavior for other callers.
func (s *PropertyService) GetProperties(c fiber.Ctx) error {
	filters := db.SearchFilters{
		City:         c.Query("city"),
		PropertyType: c.Query("propertyType"),
	}
	if v := c.Query("priceMin"); v != "" {
		filters.PriceMin, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("priceMax"); v != "" {
		filters.PriceMax, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("bedrooms"); v != "" {
		filters.Bedrooms, _ = strconv.Atoi(v)
	}
	if v := c.Query("bathrooms"); v != "" {
		filters.Bathrooms, _ = strconv.ParseFloat(v, 64)
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	var properties []models.Property
	var err error
	if filters.IsZero() {
		properties, err = db.ListProperties(ctx)
	} else {
		properties, err = db.SearchProperties(ctx, filters)
	}
	if err != nil {
		log.Error().Err(err).Msg("fetching properties failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch properties"})
	}

	SortProperties(properties, c.Query("sort", SortNewest))

	return c.JSON(properties)
}

// SearchProperties resolves a free-text query: short listing ids go through
// a direct lookup, 5-digit queries filter on zip code, anything else is the
// general substring search.
func (s *PropertyService) SearchProperties(c fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Search query is required"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	kind, value := ClassifyQuery(q)

	if kind == QuerySearchableID {
		p, err := db.GetProperty(ctx, value)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON([]models.Property{})
			}
			log.Error().Err(err).Str("query", q).Msg("listing id lookup failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Search failed"})
		}
		return c.JSON([]models.Property{*p})
	}

	filters := db.SearchFilters{General: value}
	if kind == QueryZipCode {
		filters = db.SearchFilters{ZipCode: value}
	}

	properties, err := db.SearchProperties(ctx, filters)
	if err != nil {
		log.Error().Err(err).Str("query", q).Msg("property search failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Search failed"})
	}

	SortProperties(properties, c.Query("sort", SortNewest))

	return c.JSON(properties)
}

// GetProperty returns one listing by property id or short searchable id.
func (s *PropertyService) GetProperty(c fiber.Ctx) error {
	propertyID := c.Params("propertyId")
	if propertyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Property ID is required"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	p, err := db.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
		}
		log.Error().Err(err).Str("property_id", propertyID).Msg("fetching property failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch property"})
	}

	return c.JSON(p)
}

// CreateProperty inserts a listing for the calling seller.
func (s *PropertyService) CreateProperty(c fiber.Ctx) error {
	sess, ok := session.FromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var req propertyRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := req.validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	profile, err := db.GetProfile(ctx, sess.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", sess.UserID).Msg("fetching profile failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create property"})
	}
	if profile.Role != models.RoleSeller {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only sellers can create listings"})
	}

	searchableID := fmt.Sprintf("%04d", rand.IntN(10000))
	p := models.Property{
		PropertyID:   uuid.New().String(),
		SearchableID: &searchableID,
		UserID:       &sess.UserID,
	}
	req.apply(&p)

	if err := db.CreateProperty(ctx, &p); err != nil {
		log.Error().Err(err).Msg("inserting property failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create property"})
	}

	return c.Status(fiber.StatusCreated).JSON(p)
}

// UpdateProperty replaces a listing owned by the caller.
func (s *PropertyService) UpdateProperty(c fiber.Ctx) error {
	sess, ok := session.FromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	propertyID := c.Params("propertyId")
	if propertyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Property ID is required"})
	}

	var req propertyRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := req.validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	owner, err := db.GetPropertyOwner(ctx, propertyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
		}
		log.Error().Err(err).Str("property_id", propertyID).Msg("fetching property owner failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch property"})
	}
	if owner == "" || owner != sess.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this listing"})
	}

	var p models.Property
	req.apply(&p)

	if err := db.UpdateProperty(ctx, propertyID, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
		}
		log.Error().Err(err).Str("property_id", propertyID).Msg("updating property failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update property"})
	}

	return c.JSON(fiber.Map{"success": true, "property_id": propertyID})
}

// DeleteProperty removes a listing owned by the caller.
func (s *PropertyService) DeleteProperty(c fiber.Ctx) error {
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

	owner, err := db.GetPropertyOwner(ctx, propertyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
		}
		log.Error().Err(err).Str("property_id", propertyID).Msg("fetching property owner failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch property"})
	}
	if owner == "" || owner != sess.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this listing"})
	}

	if err := db.DeleteProperty(ctx, propertyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
		}
		log.Error().Err(err).Str("property_id", propertyID).Msg("deleting property failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete property"})
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}
