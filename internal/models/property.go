package models

import "time"

// Property is a property-for-sale record.
//
// Price, bathrooms and the fee columns are decimals stored as strings, the
// way the web client submits them; numeric comparisons cast in SQL.
type Property struct {
	ID           int     `json:"id"`
	PropertyID   string  `json:"property_id"`
	SearchableID *string `json:"searchable_id,omitempty"` // short shareable id, e.g. "1234" shown as LB1234

	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Price        string  `json:"price"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zip_code"`
	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    string  `json:"bathrooms"`
	SquareFeet   int     `json:"square_footage"`
	LotSize      *string `json:"lot_size,omitempty"`
	YearBuilt    *int    `json:"year_built,omitempty"`
	PropertyType string  `json:"property_type"`
	Status       string  `json:"status"`

	Images   []string `json:"images"`
	Features []string `json:"features"`

	HOAFees     *string `json:"hoa_fees,omitempty"`
	PropertyTax *string `json:"property_tax,omitempty"`

	AgentName    *string `json:"agent_name,omitempty"`
	AgentPhone   *string `json:"agent_phone,omitempty"`
	AgentEmail   *string `json:"agent_email,omitempty"`
	AgentPhoto   *string `json:"agent_photo,omitempty"`
	AgentRating  *string `json:"agent_rating,omitempty"`
	AgentReviews *int    `json:"agent_reviews,omitempty"`

	UserID    *string   `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusForSale is the default lifecycle status for new listings.
const StatusForSale = "for_sale"
