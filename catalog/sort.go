package catalog

import (
	"sort"

	"gocraftify.io/store/models"
	"gocraftify.io/store/models/enum"
)

// Sort returns a new slice ordered by the selected key. Every order is
// stable: products comparing equal keep their input order. Newest and the
// default key preserve the supplied order unchanged, since the catalog is
// delivered newest-first and carries no temporal field.
func Sort(products []models.Product, key enum.SortKey) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	switch key {
	case enum.SortKeyPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case enum.SortKeyPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case enum.SortKeyRatingDesc:
		// Ties on rating fall back to review count.
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Rating != sorted[j].Rating {
				return sorted[i].Rating > sorted[j].Rating
			}
			return sorted[i].RatingCount > sorted[j].RatingCount
		})
	case enum.SortKeyPopular:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].RatingCount > sorted[j].RatingCount
		})
	}

	return sorted
}
