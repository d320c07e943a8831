package catalog

import (
	"gocraftify.io/store/models"
)

// DefaultRecommendationLimit caps a recommendation strip at one grid row.
const DefaultRecommendationLimit = 4

// Recommend picks up to limit products related to the current one: same
// category or any shared tag, excluding the product itself. Without a
// current product it falls back to the category, and without either it
// returns the catalog's leading products.
func Recommend(products []models.Product, currentID uint64, category string, limit int) []models.Product {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	recommendations := make([]models.Product, 0, limit)

	if currentID != 0 {
		current := findProduct(products, currentID)
		if current == nil {
			return recommendations
		}
		for _, p := range products {
			if p.ID == currentID {
				continue
			}
			if p.Category == current.Category || sharesTag(&p, current) {
				recommendations = append(recommendations, p)
				if len(recommendations) == limit {
					break
				}
			}
		}
		return recommendations
	}

	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		recommendations = append(recommendations, p)
		if len(recommendations) == limit {
			break
		}
	}
	return recommendations
}

func findProduct(products []models.Product, id uint64) *models.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

func sharesTag(a, b *models.Product) bool {
	for _, tag := range a.Tags {
		if b.HasTag(tag) {
			return true
		}
	}
	return false
}
