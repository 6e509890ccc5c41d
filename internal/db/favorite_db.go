package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ladybug-realty/ladybug-api/internal/models"
)

// AddFavorite bookmarks a listing for a user. Adding an existing favorite is
// idempotent: the stored row is returned unchanged.
func AddFavorite(ctx context.Context, userID, propertyID string) (*models.Favorite, error) {
	var fav models.Favorite
	err := Pool.QueryRow(ctx, `
		SELECT id, property_id, user_id, created_at
		FROM favorites
		WHERE user_id = $1 AND property_id = $2
	`, userID, propertyID).Scan(&fav.ID, &fav.PropertyID, &fav.UserID, &fav.CreatedAt)
	if err == nil {
		return &fav, nil
	}
	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("checking favorite: %w", err)
	}

	err = Pool.QueryRow(ctx, `
		INSERT INTO favorites (property_id, user_id)
		VALUES ($1, $2)
		RETURNING id, property_id, user_id, created_at
	`, propertyID, userID).Scan(&fav.ID, &fav.PropertyID, &fav.UserID, &fav.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting favorite: %w", err)
	}
	return &fav, nil
}

// RemoveFavorite deletes a user's bookmark. Returns pgx.ErrNoRows when the
// listing was not favorited.
func RemoveFavorite(ctx context.Context, userID, propertyID string) error {
	ct, err := Pool.Exec(ctx, `
		DELETE FROM favorites WHERE user_id = $1 AND property_id = $2
	`, userID, propertyID)
	if err != nil {
		return fmt.Errorf("deleting favorite: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// GetFavorites returns a user's bookmarks, newest first, with the listing
// embedded in each row.
func GetFavorites(ctx context.Context, userID string, limit, offset int) ([]models.Favorite, int, error) {
	rows, err := Pool.Query(ctx, `
		SELECT f.id, f.property_id, f.user_id, f.created_at, `+prefixedPropertyColumns("p")+`
		FROM favorites f
		JOIN properties p ON p.property_id = f.property_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("querying favorites: %w", err)
	}
	defer rows.Close()

	favorites := []models.Favorite{}
	for rows.Next() {
		var fav models.Favorite
		var p models.Property
		if err := rows.Scan(
			&fav.ID, &fav.PropertyID, &fav.UserID, &fav.CreatedAt,
			&p.ID, &p.PropertyID, &p.SearchableID, &p.Title, &p.Description, &p.Price,
			&p.Address, &p.City, &p.State, &p.ZipCode, &p.Bedrooms, &p.Bathrooms, &p.SquareFeet,
			&p.LotSize, &p.YearBuilt, &p.PropertyType, &p.Status, &p.Images, &p.Features,
			&p.HOAFees, &p.PropertyTax, &p.AgentName, &p.AgentPhone, &p.AgentEmail,
			&p.AgentPhoto, &p.AgentRating, &p.AgentReviews, &p.UserID, &p.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning favorite row: %w", err)
		}
		fav.Property = &p
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := Pool.QueryRow(ctx, "SELECT COUNT(*) FROM favorites WHERE user_id = $1", userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting favorites: %w", err)
	}

	return favorites, total, nil
}

// IsFavorite reports whether a user has bookmarked a listing.
func IsFavorite(ctx context.Context, userID, propertyID string) (bool, error) {
	var exists bool
	err := Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND property_id = $2)
	`, userID, propertyID).Scan(&exists)
	return exists, err
}
