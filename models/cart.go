package models

import (
	"github.com/stripe/stripe-go/v79"
)

const (
	// TaxRate is the fixed sales tax applied to the cart subtotal.
	TaxRate = 0.05

	// FlatShippingFee is charged regardless of cart contents.
	FlatShippingFee = 5.00
)

// Cart 代表購物車
type Cart struct {
	Currency stripe.Currency `json:"currency"`
	Items    []CartItem      `json:"items"`
}

// CartItem 代表購物車中的單個商品項目
type CartItem struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  uint64  `json:"quantity"`
}

// Totals 代表購物車的合計金額
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Shipping  float64 `json:"shipping"`
	Total     float64 `json:"total"`
	ItemCount uint64  `json:"item_count"`
}

func NewCart() *Cart {
	return new(Cart)
}

// ItemIndex returns the position of the item with the given product id,
// or -1 when the cart does not contain it.
func (c *Cart) ItemIndex(productID uint64) int {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			return i
		}
	}
	return -1
}

// Totals 計算購物車的合計金額
// Summations run at full precision; rounding happens only at render time.
func (c *Cart) Totals() Totals {
	t := Totals{Shipping: FlatShippingFee}
	for _, item := range c.Items {
		t.Subtotal += item.UnitPrice * float64(item.Quantity)
		t.ItemCount += item.Quantity
	}
	t.Tax = t.Subtotal * TaxRate
	t.Total = t.Subtotal + t.Tax + t.Shipping
	return t
}
