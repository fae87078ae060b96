package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ratings recomputes a product's rating aggregate from the full review set.
// Always a full scan, never an incremental delta: a recompute may observe
// either side of a concurrent review write, but the last one to commit always
// reflects a real state of the review set.
type Ratings struct {
	Reviews  ReviewStore
	Products ProductStore
}

// Recompute is the sole writer of Product.ratings. It runs after every review
// create, delete, and rating-changing update.
func (s *Ratings) Recompute(ctx context.Context, productID primitive.ObjectID) error {
	reviews, err := s.Reviews.ListByProduct(ctx, productID)
	if err != nil {
		return err
	}

	if len(reviews) == 0 {
		return s.Products.SetRatings(ctx, productID, 0, 0)
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	average := float64(sum) / float64(len(reviews))

	return s.Products.SetRatings(ctx, productID, average, len(reviews))
}
