package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"vinca/errs"
	"vinca/models"
)

type ReviewStore struct {
	col *mongo.Collection
}

// Insert relies on the unique (user, product) index as the duplicate guard.
func (s *ReviewStore) Insert(ctx context.Context, review *models.Review) error {
	_, err := s.col.InsertOne(ctx, review)
	if mongo.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateReview
	}
	return err
}

func (s *ReviewStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	var review models.Review
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (s *ReviewStore) Update(ctx context.Context, review *models.Review) error {
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": review.ID}, review)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *ReviewStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *ReviewStore) ListByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	cursor, err := s.col.Find(ctx, bson.M{"product": productID})
	if err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
