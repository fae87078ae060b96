package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LensSelection is the lens customization chosen for a single line item.
type LensSelection struct {
	Type    string   `bson:"type,omitempty" json:"type,omitempty"`
	Coating []string `bson:"coating,omitempty" json:"coating,omitempty"`
	Tint    string   `bson:"tint,omitempty" json:"tint,omitempty"`
}

type CartItem struct {
	Product      primitive.ObjectID  `bson:"product" json:"product"`
	Quantity     int                 `bson:"quantity" json:"quantity"`
	Price        float64             `bson:"price" json:"price"`
	Prescription *primitive.ObjectID `bson:"prescription,omitempty" json:"prescription,omitempty"`
	LensOptions  *LensSelection      `bson:"lensOptions,omitempty" json:"lensOptions,omitempty"`
}

// Cart holds one user's prospective line items. Prices are snapshotted at the
// time an item is added; checkout charges the snapshot, not the live catalog
// price.
type Cart struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User       primitive.ObjectID `bson:"user" json:"user"`
	Items      []CartItem         `bson:"items" json:"items"`
	TotalPrice float64            `bson:"totalPrice" json:"totalPrice"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Recalculate sets totalPrice to the sum of price × quantity over all items.
// Called after every item mutation.
func (c *Cart) Recalculate() {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	c.TotalPrice = total.InexactFloat64()
}
