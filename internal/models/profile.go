package models

import "time"

// Profile is a user's role record, keyed by the identity provider's user id.
type Profile struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile roles.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)
