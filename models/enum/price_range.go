package enum

// PriceRange names a price bucket from the storefront's price filter.
// Every bucket is open at the low end and closed at the high end, except
// the first one which includes both bounds.
type PriceRange string

const (
	PriceRangeAll     PriceRange = "all"
	PriceRangeUnder25 PriceRange = "0-25"
	PriceRange25To50  PriceRange = "25-50"
	PriceRange50To100 PriceRange = "50-100"
	PriceRangeOver100 PriceRange = "100+"
)

// Contains reports whether price falls inside the bucket.
// PriceRangeAll and unknown values impose no constraint.
func (pr PriceRange) Contains(price float64) bool {
	switch pr {
	case PriceRangeUnder25:
		return price >= 0 && price <= 25
	case PriceRange25To50:
		return price > 25 && price <= 50
	case PriceRange50To100:
		return price > 50 && price <= 100
	case PriceRangeOver100:
		return price > 100
	default:
		return true
	}
}
