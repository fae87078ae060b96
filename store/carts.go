package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"vinca/errs"
	"vinca/models"
)

type CartStore struct {
	col *mongo.Collection
}

func (s *CartStore) GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := s.col.FindOne(ctx, bson.M{"user": userID}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// ClearItems empties the cart after checkout; the document stays so the next
// visit starts from the same cart.
func (s *CartStore) ClearItems(ctx context.Context, userID primitive.ObjectID) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"user": userID},
		bson.M{"$set": bson.M{
			"items":      []models.CartItem{},
			"totalPrice": 0,
			"updatedAt":  time.Now(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}
