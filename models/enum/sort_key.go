package enum

// SortKey selects the total order applied to a product sequence.
// The values mirror the storefront's sort dropdown.
type SortKey string

const (
	SortKeyDefault    SortKey = "default"
	SortKeyPriceAsc   SortKey = "price-low"
	SortKeyPriceDesc  SortKey = "price-high"
	SortKeyRatingDesc SortKey = "rating"
	SortKeyNewest     SortKey = "newest"
	SortKeyPopular    SortKey = "popular"
)
