package models

// Product 代表型錄中的單個商品
type Product struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	Price       float64  `json:"price"`
	Rating      int      `json:"rating"`
	RatingCount int      `json:"rating_count"`
}

// HasTag reports whether the product carries the given tag.
func (p *Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
