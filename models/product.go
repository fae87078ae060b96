package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Rating struct {
	Average float64 `bson:"average" json:"average"`
	Count   int     `bson:"count" json:"count"`
}

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name" binding:"required"`
	Description   string             `bson:"description" json:"description" binding:"required"`
	Brand         string             `bson:"brand" json:"brand" binding:"required"`
	Category      primitive.ObjectID `bson:"category,omitempty" json:"category"`
	SKU           string             `bson:"sku" json:"sku" binding:"required"`
	Price         float64            `bson:"price" json:"price" binding:"required"`
	DiscountPrice float64            `bson:"discountPrice,omitempty" json:"discountPrice,omitempty"`
	Images        []string           `bson:"images" json:"images"`
	StockQuantity int                `bson:"stockQuantity" json:"stockQuantity"`
	FrameType     string             `bson:"frameType,omitempty" json:"frameType,omitempty"`
	FrameMaterial string             `bson:"frameMaterial,omitempty" json:"frameMaterial,omitempty"`
	LensType      string             `bson:"lensType,omitempty" json:"lensType,omitempty"`
	Gender        string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Ratings       Rating             `bson:"ratings" json:"ratings"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// InStock is derived from stockQuantity and never persisted, so the two can
// never disagree.
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}

func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product
	return json.Marshal(struct {
		alias
		InStock bool `json:"inStock"`
	}{alias(p), p.StockQuantity > 0})
}

// SellingPrice is the price a cart snapshot takes: the discount price when one
// is set, the list price otherwise.
func (p *Product) SellingPrice() float64 {
	if p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	return p.Price
}
