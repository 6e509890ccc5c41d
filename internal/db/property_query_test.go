package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFiltersIsZero(t *testing.T) {
	assert.True(t, SearchFilters{}.IsZero())
	assert.False(t, SearchFilters{City: "Reno"}.IsZero())
	assert.False(t, SearchFilters{PriceMin: 1}.IsZero())
	assert.False(t, SearchFilters{Bedrooms: 2}.IsZero())
}

func TestBuildSearchQuerySingleCity(t *testing.T) {
	query, args := buildSearchQuery(SearchFilters{City: "Reno"})

	assert.Contains(t, query, "city ILIKE $1")
	assert.NotContains(t, query, "AND")
	require.Len(t, args, 1)
	assert.Equal(t, "%Reno%", args[0])
}

func TestBuildSearchQueryPriceRange(t *testing.T) {
	query, args := buildSearchQuery(SearchFilters{PriceMin: 500000, PriceMax: 900000})

	assert.Contains(t, query, "CAST(price AS NUMERIC) >= $1")
	assert.Contains(t, query, "CAST(price AS NUMERIC) <= $2")
	assert.Contains(t, query, " AND ")
	require.Len(t, args, 2)
	assert.Equal(t, 500000.0, args[0])
	assert.Equal(t, 900000.0, args[1])
}

func TestBuildSearchQueryMinimumsNotExactMatches(t *testing.T) {
	query, args := buildSearchQuery(SearchFilters{Bedrooms: 3, Bathrooms: 2})

	assert.Contains(t, query, "bedrooms >= $1")
	assert.Contains(t, query, "CAST(bathrooms AS NUMERIC) >= $2")
	require.Len(t, args, 2)
}

func TestBuildSearchQueryExactAndSubstringFields(t *testing.T) {
	query, args := buildSearchQuery(SearchFilters{
		PropertyType: "Condo",
		ZipCode:      "90210",
		Address:      "Main",
		Title:        "Victorian",
	})

	assert.Contains(t, query, "property_type = $1")
	assert.Contains(t, query, "address ILIKE $2")
	assert.Contains(t, query, "title ILIKE $3")
	assert.Contains(t, query, "zip_code ILIKE $4")
	require.Len(t, args, 4)
	assert.Equal(t, "Condo", args[0])
	assert.Equal(t, "%Main%", args[1])
	assert.Equal(t, "%Victorian%", args[2])
	assert.Equal(t, "%90210%", args[3])
}

func TestBuildSearchQueryGeneralIsOrBlock(t *testing.T) {
	query, args := buildSearchQuery(SearchFilters{General: "oak"})

	assert.Contains(t, query, "(address ILIKE $1 OR city ILIKE $2 OR zip_code ILIKE $3 OR title ILIKE $4)")
	require.Len(t, args, 4)
	for _, arg := range args {
		assert.Equal(t, "%oak%", arg)
	}
}

func TestBuildSearchQueryGeneralCombinesWithOtherFilters(t *testing.T) {
	query, args := buildSearchQuery(SearchFilters{Bedrooms: 2, General: "oak"})

	assert.Contains(t, query, "bedrooms >= $1")
	assert.Contains(t, query, "(address ILIKE $2 OR city ILIKE $3 OR zip_code ILIKE $4 OR title ILIKE $5)")
	require.Len(t, args, 5)
}

func TestBuildSearchQueryArgOrderMatchesPlaceholders(t *testing.T) {
	_, args := buildSearchQuery(SearchFilters{
		PriceMin:     100,
		PriceMax:     200,
		Bedrooms:     3,
		Bathrooms:    1.5,
		City:         "Austin",
		PropertyType: "Single Family",
		SearchableID: "1234",
		Address:      "Elm",
		Title:        "Charm",
		PropertyID:   "abc",
		ZipCode:      "78701",
		General:      "park",
	})

	require.Len(t, args, 15)
	assert.Equal(t, []any{
		100.0, 200.0, 3, 1.5,
		"%Austin%", "Single Family", "%1234%", "%Elm%", "%Charm%", "%abc%", "%78701%",
		"%park%", "%park%", "%park%", "%park%",
	}, args)
}

func TestPrefixedPropertyColumns(t *testing.T) {
	cols := prefixedPropertyColumns("p")

	assert.Contains(t, cols, "p.id")
	assert.Contains(t, cols, "p.property_id")
	assert.Contains(t, cols, "p.created_at")
	assert.NotContains(t, cols, "\t")
	assert.NotContains(t, cols, "\n")
}
