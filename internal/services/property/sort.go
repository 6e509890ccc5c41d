package property

import (
	"sort"
	"strconv"

	"github.com/ladybug-realty/ladybug-api/internal/models"
)

// Sort orders accepted by the listings endpoints.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortBedrooms  = "bedrooms"
)

// SortProperties orders a fetched result set in place. The sort is stable,
// so listings tied on the sort key keep their relative order. Unknown values
// fall back to newest-first.
func SortProperties(properties []models.Property, sortBy string) {
	sort.SliceStable(properties, func(i, j int) bool {
		a, b := properties[i], properties[j]
		switch sortBy {
		case SortPriceLow:
			return priceValue(a) < priceValue(b)
		case SortPriceHigh:
			return priceValue(a) > priceValue(b)
		case SortBedrooms:
			return a.Bedrooms > b.Bedrooms
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}

func priceValue(p models.Property) float64 {
	v, _ := strconv.ParseFloat(p.Price, 64)
	return v
}
