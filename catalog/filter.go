// Package catalog implements the pure filter/sort pipeline over the
// storefront's product list. Nothing in this package mutates its input or
// touches storage; every call returns a fresh ordered slice.
package catalog

import (
	"strings"

	"gocraftify.io/store/models"
	"gocraftify.io/store/models/enum"
)

// CategoryAll is the sentinel category imposing no constraint.
const CategoryAll = "all"

// Criteria is the conjunctive set of active filter constraints. Zero-valued
// fields impose no constraint.
type Criteria struct {
	Category   string          `json:"category"`
	SearchTerm string          `json:"search_term"`
	PriceRange enum.PriceRange `json:"price_range"`
}

// Filter narrows products to those matching every present constraint,
// preserving the catalog's original relative order. An empty result is a
// normal outcome.
func Filter(products []models.Product, criteria Criteria) []models.Product {
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if criteria.matches(&p) {
			matched = append(matched, p)
		}
	}
	return matched
}

func (c Criteria) matches(p *models.Product) bool {
	if c.Category != "" && c.Category != CategoryAll && p.Category != c.Category {
		return false
	}

	if term := strings.TrimSpace(c.SearchTerm); term != "" {
		if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
			return false
		}
	}

	return c.PriceRange.Contains(p.Price)
}
