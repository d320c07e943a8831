// Package render carries the output contract consumed by the page renderer:
// formatted money, ordered product ids for DOM reordering, and the cart
// badge. Monetary values are rounded to two decimals here and nowhere else,
// and the currency symbol is a presentation choice the core never makes.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stripe/stripe-go/v79"

	"gocraftify.io/store/models"
)

// Formatter renders monetary amounts for one currency.
type Formatter struct {
	Currency stripe.Currency
}

// Symbol maps the currency code to its display prefix. Unknown currencies
// fall back to the upper-cased code.
func (f Formatter) Symbol() string {
	switch f.Currency {
	case stripe.CurrencyUSD, "":
		return "$"
	case stripe.CurrencyINR:
		return "Rs "
	default:
		return strings.ToUpper(string(f.Currency)) + " "
	}
}

// Amount renders a monetary value with the currency prefix and exactly two
// decimal places.
func (f Formatter) Amount(value float64) string {
	return fmt.Sprintf("%s%.2f", f.Symbol(), value)
}

// TotalsView is the cart summary ready for display.
type TotalsView struct {
	Subtotal  string `json:"subtotal"`
	Tax       string `json:"tax"`
	Shipping  string `json:"shipping"`
	Total     string `json:"total"`
	ItemCount uint64 `json:"item_count"`
}

func (f Formatter) Totals(t models.Totals) TotalsView {
	return TotalsView{
		Subtotal:  f.Amount(t.Subtotal),
		Tax:       f.Amount(t.Tax),
		Shipping:  f.Amount(t.Shipping),
		Total:     f.Amount(t.Total),
		ItemCount: t.ItemCount,
	}
}

// ProductIDs returns the visible subset as an ordered id list, the form the
// renderer uses to reorder product cards in the DOM.
func ProductIDs(products []models.Product) []uint64 {
	ids := make([]uint64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

// Badge returns the cart badge text and whether the badge is visible.
// The badge counts units, not line items, and hides at zero.
func Badge(cart *models.Cart) (string, bool) {
	count := cart.Totals().ItemCount
	if count == 0 {
		return "", false
	}
	return strconv.FormatUint(count, 10), true
}
