package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vinca/errs"
	"vinca/models"
)

// Reviews handles review writes and fires the rating recompute hook after
// each committed mutation of a product's review set.
type Reviews struct {
	Reviews ReviewStore
	Orders  OrderStore
	Ratings *Ratings
}

type ReviewInput struct {
	Product primitive.ObjectID
	Rating  int
	Title   string
	Comment string
}

func (s *Reviews) Create(ctx context.Context, userID primitive.ObjectID, in ReviewInput) (*models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, &errs.ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}

	// Verified-purchase is decided once, here; later changes to the order's
	// status never revisit it.
	verified, err := s.Orders.HasFulfilledOrder(ctx, userID, in.Product)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	review := &models.Review{
		ID:               primitive.NewObjectID(),
		User:             userID,
		Product:          in.Product,
		Rating:           in.Rating,
		Title:            in.Title,
		Comment:          in.Comment,
		VerifiedPurchase: verified,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// The unique (user, product) index is the duplicate guard; a lost race
	// with a concurrent create surfaces here as ErrDuplicateReview.
	if err := s.Reviews.Insert(ctx, review); err != nil {
		return nil, err
	}

	if err := s.Ratings.Recompute(ctx, in.Product); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *Reviews) Update(ctx context.Context, reviewID primitive.ObjectID, requester Requester, in ReviewInput) (*models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, &errs.ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}

	review, err := s.Reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if !requester.owns(review.User) {
		return nil, errs.ErrNotAuthorized
	}

	ratingChanged := review.Rating != in.Rating

	review.Rating = in.Rating
	review.Title = in.Title
	review.Comment = in.Comment
	review.UpdatedAt = time.Now()

	if err := s.Reviews.Update(ctx, review); err != nil {
		return nil, err
	}

	if ratingChanged {
		if err := s.Ratings.Recompute(ctx, review.Product); err != nil {
			return nil, err
		}
	}

	return review, nil
}

func (s *Reviews) Delete(ctx context.Context, reviewID primitive.ObjectID, requester Requester) error {
	review, err := s.Reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if !requester.owns(review.User) {
		return errs.ErrNotAuthorized
	}

	if err := s.Reviews.Delete(ctx, reviewID); err != nil {
		return err
	}

	return s.Ratings.Recompute(ctx, review.Product)
}
