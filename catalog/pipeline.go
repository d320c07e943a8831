package catalog

import (
	"gocraftify.io/store/models"
	"gocraftify.io/store/models/enum"
)

// Pipeline is the composed filter-then-sort stage producing the displayed
// product list. Apply always recomputes from the full catalog, never from a
// previously narrowed snapshot, so relaxing a filter or switching the sort
// key is never lossy.
type Pipeline struct {
	Criteria Criteria
	SortKey  enum.SortKey
}

func (p Pipeline) Apply(catalog []models.Product) []models.Product {
	return Sort(Filter(catalog, p.Criteria), p.SortKey)
}
