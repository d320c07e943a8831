package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartTotals(t *testing.T) {
	tests := []struct {
		name          string
		items         []CartItem
		wantSubtotal  float64
		wantTax       float64
		wantTotal     float64
		wantItemCount uint64
	}{
		{
			name:          "empty cart still pays flat shipping",
			items:         nil,
			wantSubtotal:  0,
			wantTax:       0,
			wantTotal:     5.00,
			wantItemCount: 0,
		},
		{
			name: "single line",
			items: []CartItem{
				{ID: 1, Name: "Vanilla Bean Candle", UnitPrice: 35.00, Quantity: 2},
			},
			wantSubtotal:  70.00,
			wantTax:       3.50,
			wantTotal:     78.50,
			wantItemCount: 2,
		},
		{
			name: "multiple lines count units not rows",
			items: []CartItem{
				{ID: 1, UnitPrice: 35.00, Quantity: 2},
				{ID: 7, UnitPrice: 55.00, Quantity: 1},
				{ID: 4, UnitPrice: 32.00, Quantity: 3},
			},
			wantSubtotal:  221.00,
			wantTax:       11.05,
			wantTotal:     237.05,
			wantItemCount: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &Cart{Items: tt.items}
			totals := cart.Totals()

			assert.InDelta(t, tt.wantSubtotal, totals.Subtotal, 1e-9)
			assert.InDelta(t, tt.wantTax, totals.Tax, 1e-9)
			assert.InDelta(t, FlatShippingFee, totals.Shipping, 1e-9)
			assert.InDelta(t, tt.wantTotal, totals.Total, 1e-9)
			assert.Equal(t, tt.wantItemCount, totals.ItemCount)
		})
	}
}

func TestCartTotalsTaxFollowsSubtotal(t *testing.T) {
	cart := &Cart{Items: []CartItem{
		{ID: 1, UnitPrice: 19.99, Quantity: 3},
		{ID: 2, UnitPrice: 0.01, Quantity: 7},
	}}
	totals := cart.Totals()

	assert.InDelta(t, totals.Subtotal*TaxRate, totals.Tax, 1e-12)
	assert.InDelta(t, totals.Subtotal+totals.Tax+totals.Shipping, totals.Total, 1e-12)
}

func TestCartItemIndex(t *testing.T) {
	cart := &Cart{Items: []CartItem{{ID: 3}, {ID: 8}}}

	assert.Equal(t, 0, cart.ItemIndex(3))
	assert.Equal(t, 1, cart.ItemIndex(8))
	assert.Equal(t, -1, cart.ItemIndex(42))
}
