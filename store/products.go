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

type ProductStore struct {
	col *mongo.Collection
}

func (s *ProductStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// DecrementStock applies the decrement only while stockQuantity covers it.
// The filter and $inc commit together, so two concurrent checkouts cannot
// both take the last units.
func (s *ProductStore) DecrementStock(ctx context.Context, id primitive.ObjectID, qty int) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id, "stockQuantity": bson.M{"$gte": qty}},
		bson.M{"$inc": bson.M{"stockQuantity": -qty}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.ErrInsufficientStock
	}
	return nil
}

func (s *ProductStore) IncrementStock(ctx context.Context, id primitive.ObjectID, qty int) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"stockQuantity": qty}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *ProductStore) SetRatings(ctx context.Context, id primitive.ObjectID, average float64, count int) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"ratings.average": average,
			"ratings.count":   count,
			"updatedAt":       time.Now(),
		}},
	)
	return err
}
