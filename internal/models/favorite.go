package models

import "time"

// Favorite is a user-to-listing bookmark.
type Favorite struct {
	ID         int       `json:"id"`
	PropertyID string    `json:"property_id"`
	UserID     string    `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Embedded listing for list responses.
	Property *Property `json:"property,omitempty"`
}

// FavoriteResponse is the paginated favorites payload.
type FavoriteResponse struct {
	Favorites []Favorite `json:"favorites"`
	Total     int        `json:"total"`
	Limit     int        `json:"limit"`
	Offset    int        `json:"offset"`
}
