package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ladybug-realty/ladybug-api/internal/models"
)

// GetProfile returns a user's role record, creating it with the default
// buyer role on first access.
func GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := Pool.QueryRow(ctx, `
		SELECT id, role, created_at FROM profiles WHERE id = $1
	`, userID).Scan(&profile.ID, &profile.Role, &profile.CreatedAt)
	if err == nil {
		return &profile, nil
	}
	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("querying profile: %w", err)
	}

	return CreateProfile(ctx, userID, models.RoleBuyer)
}

// CreateProfile inserts a role record for a user. Concurrent first requests
// can race on the insert; ON CONFLICT keeps the earlier row.
func CreateProfile(ctx context.Context, userID, role string) (*models.Profile, error) {
	var profile models.Profile
	err := Pool.QueryRow(ctx, `
		INSERT INTO profiles (id, role)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET role = profiles.role
		RETURNING id, role, created_at
	`, userID, role).Scan(&profile.ID, &profile.Role, &profile.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfileRole changes a user's role. Returns pgx.ErrNoRows when the
// profile does not exist.
func UpdateProfileRole(ctx context.Context, userID, role string) (*models.Profile, error) {
	var profile models.Profile
	err := Pool.QueryRow(ctx, `
		UPDATE profiles SET role = $1 WHERE id = $2
		RETURNING id, role, created_at
	`, role, userID).Scan(&profile.ID, &profile.Role, &profile.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
