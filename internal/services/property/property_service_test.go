package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladybug-realty/ladybug-api/internal/models"
)

func validRequest() propertyRequest {
	return propertyRequest{
		Title:        "Classic Victorian Charm",
		Description:  "Historic home with modern updates.",
		Price:        "585000",
		Address:      "789 Elm Street",
		City:         "San Francisco",
		State:        "CA",
		ZipCode:      "94102",
		Bedrooms:     3,
		Bathrooms:    "2.0",
		SquareFeet:   1800,
		PropertyType: "Single Family",
	}
}

func TestPropertyRequestValidate(t *testing.T) {
	req := validRequest()
	assert.NoError(t, req.validate())
}

func TestPropertyRequestValidateRequiredFields(t *testing.T) {
	req := validRequest()
	req.Title = ""
	assert.ErrorContains(t, req.validate(), "title is required")

	req = validRequest()
	req.ZipCode = ""
	assert.ErrorContains(t, req.validate(), "zip_code is required")

	req = validRequest()
	req.SquareFeet = 0
	assert.ErrorContains(t, req.validate(), "square_footage")
}

func TestPropertyRequestValidatePrice(t *testing.T) {
	req := validRequest()
	req.Price = "not a number"
	assert.ErrorContains(t, req.validate(), "price must be a decimal number")
}

func TestPropertyRequestApplyDefaults(t *testing.T) {
	req := validRequest()

	var p models.Property
	req.apply(&p)

	assert.Equal(t, models.StatusForSale, p.Status)
	require.NotNil(t, p.Images)
	require.NotNil(t, p.Features)
	assert.Empty(t, p.Images)
	assert.Empty(t, p.Features)
}

func TestPropertyRequestApplyKeepsStatus(t *testing.T) {
	req := validRequest()
	req.Status = "pending"

	var p models.Property
	req.apply(&p)

	assert.Equal(t, "pending", p.Status)
}
