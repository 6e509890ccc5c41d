package property

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladybug-realty/ladybug-api/internal/models"
)

func sampleProperties() []models.Property {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	return []models.Property{
		{PropertyID: "a", Price: "500000", City: "Reno", Bedrooms: 3, CreatedAt: base},
		{PropertyID: "b", Price: "900000", City: "Reno", Bedrooms: 5, CreatedAt: base.Add(24 * time.Hour)},
		{PropertyID: "c", Price: "700000", City: "Austin", Bedrooms: 4, CreatedAt: base.Add(48 * time.Hour)},
	}
}

func ids(properties []models.Property) []string {
	out := make([]string, len(properties))
	for i, p := range properties {
		out[i] = p.PropertyID
	}
	return out
}

func TestSortPropertiesNewestIsDefault(t *testing.T) {
	properties := sampleProperties()
	SortProperties(properties, SortNewest)
	assert.Equal(t, []string{"c", "b", "a"}, ids(properties))

	properties = sampleProperties()
	SortProperties(properties, "bogus")
	assert.Equal(t, []string{"c", "b", "a"}, ids(properties))
}

func TestSortPropertiesByPrice(t *testing.T) {
	properties := sampleProperties()
	SortProperties(properties, SortPriceLow)
	assert.Equal(t, []string{"a", "c", "b"}, ids(properties))

	SortProperties(properties, SortPriceHigh)
	assert.Equal(t, []string{"b", "c", "a"}, ids(properties))
}

func TestSortPropertiesPriceOrdersAreReversed(t *testing.T) {
	low := sampleProperties()
	high := sampleProperties()
	SortProperties(low, SortPriceLow)
	SortProperties(high, SortPriceHigh)

	require.Len(t, high, len(low))
	for i := range low {
		assert.Equal(t, low[i].PropertyID, high[len(high)-1-i].PropertyID)
	}
}

func TestSortPropertiesByBedrooms(t *testing.T) {
	properties := sampleProperties()
	SortProperties(properties, SortBedrooms)
	assert.Equal(t, []string{"b", "c", "a"}, ids(properties))
}

func TestSortPropertiesIsStableOnTies(t *testing.T) {
	now := time.Now()
	properties := []models.Property{
		{PropertyID: "first", Price: "500000", CreatedAt: now},
		{PropertyID: "second", Price: "500000", CreatedAt: now},
		{PropertyID: "third", Price: "500000", CreatedAt: now},
	}

	SortProperties(properties, SortPriceLow)
	assert.Equal(t, []string{"first", "second", "third"}, ids(properties))
}

// Filtered fetch keeps store order; the caller's sort then orders by price.
func TestCityFilterThenPriceSortScenario(t *testing.T) {
	matches := []models.Property{}
	for _, p := range sampleProperties() {
		if p.City == "Reno" {
			matches = append(matches, p)
		}
	}
	require.Equal(t, []string{"a", "b"}, ids(matches))

	SortProperties(matches, SortPriceLow)
	assert.Equal(t, []string{"a", "b"}, ids(matches))
	assert.Equal(t, "500000", matches[0].Price)
	assert.Equal(t, "900000", matches[1].Price)
}
