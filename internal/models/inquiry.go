package models

import "time"

// Inquiry is a buyer-to-agent contact message tied to a listing.
// Inquiries are write-once: the application never updates or deletes them.
type Inquiry struct {
	ID          int       `json:"id"`
	PropertyID  string    `json:"property_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	Message     string    `json:"message"`
	InquiryType string    `json:"inquiry_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// ValidInquiryTypes enumerates the accepted inquiry_type tags.
var ValidInquiryTypes = map[string]bool{
	"general": true,
	"tour":    true,
	"offer":   true,
	"agent":   true,
}
