package db

import (
	"context"
	"fmt"

	"github.com/ladybug-realty/ladybug-api/internal/models"
)

// CreateInquiry records a buyer-to-agent message. Inquiries are write-once.
func CreateInquiry(ctx context.Context, inq *models.Inquiry) error {
	err := Pool.QueryRow(ctx, `
		INSERT INTO inquiries (property_id, name, email, phone, message, inquiry_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, inq.PropertyID, inq.Name, inq.Email, inq.Phone, inq.Message, inq.InquiryType).Scan(&inq.ID, &inq.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting inquiry: %w", err)
	}
	return nil
}

// GetInquiries returns the inquiries for a listing, newest first.
func GetInquiries(ctx context.Context, propertyID string) ([]models.Inquiry, error) {
	rows, err := Pool.Query(ctx, `
		SELECT id, property_id, name, email, phone, message, inquiry_type, created_at
		FROM inquiries
		WHERE property_id = $1
		ORDER BY created_at DESC
	`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("querying inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []models.Inquiry{}
	for rows.Next() {
		var inq models.Inquiry
		if err := rows.Scan(
			&inq.ID,
			&inq.PropertyID,
			&inq.Name,
			&inq.Email,
			&inq.Phone,
			&inq.Message,
			&inq.InquiryType,
			&inq.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning inquiry row: %w", err)
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, rows.Err()
}
