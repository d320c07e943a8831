package catalog

import (
	"gocraftify.io/store/models"
)

// Demo returns the fixed product set of the demo storefront, newest first.
// Pages normally supply their own catalog; this one backs the demo pages
// and the recommendation strip.
func Demo() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Vanilla Bean Candle", Category: "candles", Tags: []string{"aromatic", "handmade"}, Image: "images/vanilla-bean-candle.jpg", Price: 35.00, Rating: 4, RatingCount: 124},
		{ID: 2, Name: "Fort Sketch Art", Category: "wall-art", Tags: []string{"decorative", "modern"}, Image: "images/fort-sketch-art.jpg", Price: 25.00, Rating: 4, RatingCount: 36},
		{ID: 3, Name: "Wood Box Gift Set", Category: "gift-box", Tags: []string{"premium", "handmade"}, Image: "images/wood-box-gift-set.jpg", Price: 65.00, Rating: 5, RatingCount: 89},
		{ID: 4, Name: "Lavender Candle", Category: "candles", Tags: []string{"aromatic", "relaxing"}, Image: "images/lavender-candle.jpg", Price: 32.00, Rating: 4, RatingCount: 57},
		{ID: 5, Name: "Abstract Canvas", Category: "wall-art", Tags: []string{"modern", "colorful"}, Image: "images/abstract-canvas.jpg", Price: 28.00, Rating: 3, RatingCount: 18},
		{ID: 6, Name: "Leather Handbag", Category: "handbags", Tags: []string{"premium", "elegant"}, Image: "images/leather-handbag.jpg", Price: 145.00, Rating: 5, RatingCount: 203},
		{ID: 7, Name: "Rose Gift Box", Category: "gift-box", Tags: []string{"romantic", "premium"}, Image: "images/rose-gift-box.jpg", Price: 55.00, Rating: 4, RatingCount: 71},
		{ID: 8, Name: "Jasmine Candle", Category: "candles", Tags: []string{"aromatic", "floral"}, Image: "images/jasmine-candle.jpg", Price: 34.00, Rating: 4, RatingCount: 45},
	}
}
