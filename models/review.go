package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is one user's rating of one product; the (user, product) pair is
// unique. VerifiedPurchase is computed once at creation from the user's
// fulfilled orders and never revisited.
type Review struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User             primitive.ObjectID `bson:"user" json:"user"`
	Product          primitive.ObjectID `bson:"product" json:"product"`
	Rating           int                `bson:"rating" json:"rating"`
	Title            string             `bson:"title,omitempty" json:"title,omitempty"`
	Comment          string             `bson:"comment,omitempty" json:"comment,omitempty"`
	VerifiedPurchase bool               `bson:"verifiedPurchase" json:"verifiedPurchase"`
	Helpful          int                `bson:"helpful" json:"helpful"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
