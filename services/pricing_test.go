package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vinca/models"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.CartItem
		subtotal     float64
		shippingCost float64
		tax          float64
		totalPrice   float64
	}{
		{
			name:         "free shipping above threshold",
			items:        []models.CartItem{{Price: 120, Quantity: 1}},
			subtotal:     120,
			shippingCost: 0,
			tax:          9.60,
			totalPrice:   129.60,
		},
		{
			name:         "flat shipping below threshold",
			items:        []models.CartItem{{Price: 25, Quantity: 2}},
			subtotal:     50,
			shippingCost: 10,
			tax:          4,
			totalPrice:   64,
		},
		{
			name:         "threshold is exclusive",
			items:        []models.CartItem{{Price: 100, Quantity: 1}},
			subtotal:     100,
			shippingCost: 10,
			tax:          8,
			totalPrice:   118,
		},
		{
			name:         "tax rounded to cents",
			items:        []models.CartItem{{Price: 19.99, Quantity: 1}},
			subtotal:     19.99,
			shippingCost: 10,
			tax:          1.60, // 1.5992 rounds up
			totalPrice:   31.59,
		},
		{
			name:         "multiple lines",
			items:        []models.CartItem{{Price: 79.50, Quantity: 1}, {Price: 45.25, Quantity: 2}},
			subtotal:     170,
			shippingCost: 0,
			tax:          13.60,
			totalPrice:   183.60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(tt.items)
			assert.Equal(t, tt.subtotal, totals.Subtotal)
			assert.Equal(t, tt.shippingCost, totals.ShippingCost)
			assert.Equal(t, tt.tax, totals.Tax)
			assert.Equal(t, tt.totalPrice, totals.TotalPrice)
		})
	}
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(12960), ToCents(129.60))
	assert.Equal(t, int64(6400), ToCents(64.00))
	assert.Equal(t, int64(0), ToCents(0))
	// half a cent rounds up, matching what the provider is told to charge
	assert.Equal(t, int64(1000), ToCents(9.995))
	assert.Equal(t, int64(1999), ToCents(19.99))
}
