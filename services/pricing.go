package services

import (
	"github.com/shopspring/decimal"

	"vinca/models"
)

const (
	freeShippingThreshold = 100
	flatShippingCost      = 10
	taxRate               = "0.08"
)

// Totals is the priced breakdown of a cart, in decimal dollars.
type Totals struct {
	Subtotal     float64
	ShippingCost float64
	Tax          float64
	TotalPrice   float64
}

// ComputeTotals prices a set of line items from their snapshotted prices.
// Shipping is free above the threshold, otherwise flat; tax is 8% of the
// subtotal rounded to cents.
func ComputeTotals(items []models.CartItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}

	shipping := decimal.NewFromInt(flatShippingCost)
	if subtotal.GreaterThan(decimal.NewFromInt(freeShippingThreshold)) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(decimal.RequireFromString(taxRate)).Round(2)
	total := subtotal.Add(shipping).Add(tax)

	return Totals{
		Subtotal:     subtotal.InexactFloat64(),
		ShippingCost: shipping.InexactFloat64(),
		Tax:          tax.InexactFloat64(),
		TotalPrice:   total.InexactFloat64(),
	}
}

// ToCents converts a dollar amount to integer minor units, rounding half up.
// This is the only place the conversion happens.
func ToCents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
