package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ladybug-realty/ladybug-api/internal/models"
)

// SearchFilters carries the optional listing search criteria. Zero values
// mean "not supplied"; supplied fields are combined with AND.
type SearchFilters struct {
	PriceMin     float64
	PriceMax     float64
	Bedrooms     int     // minimum, not exact
	Bathrooms    float64 // minimum, not exact
	City         string
	PropertyType string
	SearchableID string
	Address      string
	Title        string
	PropertyID   string
	ZipCode      string
	General      string // matched against address, city, zip_code and title
}

// IsZero reports whether no filter field is supplied.
func (f SearchFilters) IsZero() bool {
	return f == SearchFilters{}
}

const propertyColumns = `id, property_id, searchable_id, title, description, price,
	address, city, state, zip_code, bedrooms, bathrooms, square_footage,
	lot_size, year_built, property_type, status, images, features,
	hoa_fees, property_tax, agent_name, agent_phone, agent_email,
	agent_photo, agent_rating, agent_reviews, user_id, created_at`

// prefixedPropertyColumns qualifies the property column list with a table
// alias for use in joins.
func prefixedPropertyColumns(alias string) string {
	cols := strings.Split(propertyColumns, ",")
	for i, c := range cols {
		cols[i] = alias + "." + strings.TrimSpace(c)
	}
	return strings.Join(cols, ", ")
}

// buildSearchQuery translates filters into a WHERE clause with positional
// args. Price and bathrooms are decimal-as-string columns, so comparisons
// cast to NUMERIC.
func buildSearchQuery(f SearchFilters) (string, []any) {
	var conditions []string
	args := []any{}
	idx := 1

	if f.PriceMin != 0 {
		conditions = append(conditions, fmt.Sprintf("CAST(price AS NUMERIC) >= $%d", idx))
		args = append(args, f.PriceMin)
		idx++
	}
	if f.PriceMax != 0 {
		conditions = append(conditions, fmt.Sprintf("CAST(price AS NUMERIC) <= $%d", idx))
		args = append(args, f.PriceMax)
		idx++
	}
	if f.Bedrooms != 0 {
		conditions = append(conditions, fmt.Sprintf("bedrooms >= $%d", idx))
		args = append(args, f.Bedrooms)
		idx++
	}
	if f.Bathrooms != 0 {
		conditions = append(conditions, fmt.Sprintf("CAST(bathrooms AS NUMERIC) >= $%d", idx))
		args = append(args, f.Bathrooms)
		idx++
	}
	if f.City != "" {
		conditions = append(conditions, fmt.Sprintf("city ILIKE $%d", idx))
		args = append(args, "%"+f.City+"%")
		idx++
	}
	if f.PropertyType != "" {
		conditions = append(conditions, fmt.Sprintf("property_type = $%d", idx))
		args = append(args, f.PropertyType)
		idx++
	}
	if f.SearchableID != "" {
		conditions = append(conditions, fmt.Sprintf("searchable_id ILIKE $%d", idx))
		args = append(args, "%"+f.SearchableID+"%")
		idx++
	}
	if f.Address != "" {
		conditions = append(conditions, fmt.Sprintf("address ILIKE $%d", idx))
		args = append(args, "%"+f.Address+"%")
		idx++
	}
	if f.Title != "" {
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", idx))
		args = append(args, "%"+f.Title+"%")
		idx++
	}
	if f.PropertyID != "" {
		conditions = append(conditions, fmt.Sprintf("property_id ILIKE $%d", idx))
		args = append(args, "%"+f.PropertyID+"%")
		idx++
	}
	if f.ZipCode != "" {
		conditions = append(conditions, fmt.Sprintf("zip_code ILIKE $%d", idx))
		args = append(args, "%"+f.ZipCode+"%")
		idx++
	}
	if f.General != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(address ILIKE $%d OR city ILIKE $%d OR zip_code ILIKE $%d OR title ILIKE $%d)",
			idx, idx+1, idx+2, idx+3))
		pattern := "%" + f.General + "%"
		args = append(args, pattern, pattern, pattern, pattern)
		idx += 4
	}

	query := "SELECT " + propertyColumns + " FROM properties WHERE " + strings.Join(conditions, " AND ")
	return query, args
}

// ListProperties returns every listing. This is the plain fetch path; it is
// deliberately a separate operation from SearchProperties.
func ListProperties(ctx context.Context) ([]models.Property, error) {
	rows, err := Pool.Query(ctx, "SELECT "+propertyColumns+" FROM properties")
	if err != nil {
		return nil, fmt.Errorf("querying properties: %w", err)
	}
	defer rows.Close()

	return scanProperties(rows)
}

// SearchProperties returns the listings matching every supplied filter.
// With no filters supplied the result is empty, not "all listings"; callers
// wanting everything use ListProperties.
func SearchProperties(ctx context.Context, f SearchFilters) ([]models.Property, error) {
	if f.IsZero() {
		return []models.Property{}, nil
	}

	query, args := buildSearchQuery(f)
	rows, err := Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching properties: %w", err)
	}
	defer rows.Close()

	return scanProperties(rows)
}

// GetProperty looks a listing up by its stable property_id, falling back to
// the short searchable_id used on shareable links.
func GetProperty(ctx context.Context, publicID string) (*models.Property, error) {
	p, err := getPropertyWhere(ctx, "property_id = $1", publicID)
	if err == nil {
		return p, nil
	}
	if err != pgx.ErrNoRows {
		return nil, err
	}
	return getPropertyWhere(ctx, "searchable_id = $1", publicID)
}

func getPropertyWhere(ctx context.Context, where string, arg any) (*models.Property, error) {
	rows, err := Pool.Query(ctx, "SELECT "+propertyColumns+" FROM properties WHERE "+where+" LIMIT 1", arg)
	if err != nil {
		return nil, fmt.Errorf("querying property: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, pgx.ErrNoRows
	}

	p, err := scanProperty(rows)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProperty inserts a listing and fills in its generated id and
// creation time.
func CreateProperty(ctx context.Context, p *models.Property) error {
	err := Pool.QueryRow(ctx, `
		INSERT INTO properties (property_id, searchable_id, title, description, price,
			address, city, state, zip_code, bedrooms, bathrooms, square_footage,
			lot_size, year_built, property_type, status, images, features,
			hoa_fees, property_tax, agent_name, agent_phone, agent_email,
			agent_photo, agent_rating, agent_reviews, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
		RETURNING id, created_at
	`, p.PropertyID, p.SearchableID, p.Title, p.Description, p.Price,
		p.Address, p.City, p.State, p.ZipCode, p.Bedrooms, p.Bathrooms, p.SquareFeet,
		p.LotSize, p.YearBuilt, p.PropertyType, p.Status, p.Images, p.Features,
		p.HOAFees, p.PropertyTax, p.AgentName, p.AgentPhone, p.AgentEmail,
		p.AgentPhoto, p.AgentRating, p.AgentReviews, p.UserID).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting property: %w", err)
	}
	return nil
}

// UpdateProperty replaces the mutable fields of an existing listing.
// Returns pgx.ErrNoRows when the listing does not exist.
func UpdateProperty(ctx context.Context, propertyID string, p *models.Property) error {
	ct, err := Pool.Exec(ctx, `
		UPDATE properties
		SET title = $1, description = $2, price = $3, address = $4, city = $5,
			state = $6, zip_code = $7, bedrooms = $8, bathrooms = $9,
			square_footage = $10, lot_size = $11, year_built = $12,
			property_type = $13, status = $14, images = $15, features = $16,
			hoa_fees = $17, property_tax = $18, agent_name = $19,
			agent_phone = $20, agent_email = $21, agent_photo = $22,
			agent_rating = $23, agent_reviews = $24
		WHERE property_id = $25
	`, p.Title, p.Description, p.Price, p.Address, p.City,
		p.State, p.ZipCode, p.Bedrooms, p.Bathrooms,
		p.SquareFeet, p.LotSize, p.YearBuilt,
		p.PropertyType, p.Status, p.Images, p.Features,
		p.HOAFees, p.PropertyTax, p.AgentName,
		p.AgentPhone, p.AgentEmail, p.AgentPhoto,
		p.AgentRating, p.AgentReviews, propertyID)
	if err != nil {
		return fmt.Errorf("updating property: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteProperty removes a listing and its favorites in one transaction.
// Returns pgx.ErrNoRows when the listing does not exist.
func DeleteProperty(ctx context.Context, propertyID string) error {
	tx, err := Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM favorites WHERE property_id = $1", propertyID); err != nil {
		return fmt.Errorf("deleting favorites: %w", err)
	}

	ct, err := tx.Exec(ctx, "DELETE FROM properties WHERE property_id = $1", propertyID)
	if err != nil {
		return fmt.Errorf("deleting property: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}

// GetPropertyOwner returns the owning user id of a listing, or "" when the
// listing has no recorded owner. Returns pgx.ErrNoRows when the listing
// does not exist.
func GetPropertyOwner(ctx context.Context, propertyID string) (string, error) {
	var owner *string
	err := Pool.QueryRow(ctx, "SELECT user_id FROM properties WHERE property_id = $1", propertyID).Scan(&owner)
	if err != nil {
		return "", err
	}
	if owner == nil {
		return "", nil
	}
	return *owner, nil
}

// PropertyExists reports whether a listing with the given property_id exists.
func PropertyExists(ctx context.Context, propertyID string) (bool, error) {
	var exists bool
	err := Pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM properties WHERE property_id = $1)", propertyID).Scan(&exists)
	return exists, err
}

func scanProperties(rows pgx.Rows) ([]models.Property, error) {
	properties := []models.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return properties, nil
}

func scanProperty(rows pgx.Rows) (models.Property, error) {
	var p models.Property
	err := rows.Scan(
		&p.ID,
		&p.PropertyID,
		&p.SearchableID,
		&p.Title,
		&p.Description,
		&p.Price,
		&p.Address,
		&p.City,
		&p.State,
		&p.ZipCode,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.SquareFeet,
		&p.LotSize,
		&p.YearBuilt,
		&p.PropertyType,
		&p.Status,
		&p.Images,
		&p.Features,
		&p.HOAFees,
		&p.PropertyTax,
		&p.AgentName,
		&p.AgentPhone,
		&p.AgentEmail,
		&p.AgentPhoto,
		&p.AgentRating,
		&p.AgentReviews,
		&p.UserID,
		&p.CreatedAt,
	)
	if err != nil {
		return models.Property{}, fmt.Errorf("scanning property row: %w", err)
	}
	return p, nil
}
