package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vinca/errs"
	"vinca/models"
)

func newReviewFixture(product *models.Product) (*Reviews, *Ratings, *fakeReviewStore, *fakeProductStore, *fakeOrderStore) {
	ps := newFakeProductStore(product)
	rs := newFakeReviewStore()
	os := newFakeOrderStore()
	ratings := &Ratings{Reviews: rs, Products: ps}
	reviews := &Reviews{Reviews: rs, Orders: os, Ratings: ratings}
	return reviews, ratings, rs, ps, os
}

func TestRatingAggregateFollowsReviewSet(t *testing.T) {
	product := &models.Product{ID: primitive.NewObjectID(), Name: "Aviator Classic"}
	svc, _, _, ps, _ := newReviewFixture(product)
	ctx := context.Background()

	var ids []primitive.ObjectID
	for _, rating := range []int{5, 4, 3} {
		review, err := svc.Create(ctx, primitive.NewObjectID(), ReviewInput{Product: product.ID, Rating: rating})
		require.NoError(t, err)
		ids = append(ids, review.ID)
	}

	assert.Equal(t, models.Rating{Average: 4.0, Count: 3}, ps.products[product.ID].Ratings)

	// deleting the rating=3 review lifts the average
	owner := Requester{Admin: true}
	require.NoError(t, svc.Delete(ctx, ids[2], owner))
	assert.Equal(t, models.Rating{Average: 4.5, Count: 2}, ps.products[product.ID].Ratings)

	// an empty review set resets the aggregate
	require.NoError(t, svc.Delete(ctx, ids[0], owner))
	require.NoError(t, svc.Delete(ctx, ids[1], owner))
	assert.Equal(t, models.Rating{Average: 0, Count: 0}, ps.products[product.ID].Ratings)
}

func TestDuplicateReviewRejected(t *testing.T) {
	product := &models.Product{ID: primitive.NewObjectID()}
	svc, _, rs, ps, _ := newReviewFixture(product)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	_, err := svc.Create(ctx, userID, ReviewInput{Product: product.ID, Rating: 5})
	require.NoError(t, err)

	_, err = svc.Create(ctx, userID, ReviewInput{Product: product.ID, Rating: 1})
	assert.ErrorIs(t, err, errs.ErrDuplicateReview)

	// existing review and aggregate untouched
	assert.Len(t, rs.reviews, 1)
	assert.Equal(t, models.Rating{Average: 5, Count: 1}, ps.products[product.ID].Ratings)
}

func TestReviewRatingValidation(t *testing.T) {
	product := &models.Product{ID: primitive.NewObjectID()}
	svc, _, _, _, _ := newReviewFixture(product)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), primitive.NewObjectID(), ReviewInput{Product: product.ID, Rating: rating})
		var vErr *errs.ValidationError
		assert.ErrorAs(t, err, &vErr)
	}
}

func TestVerifiedPurchaseFlag(t *testing.T) {
	product := &models.Product{ID: primitive.NewObjectID()}
	svc, _, _, _, os := newReviewFixture(product)
	ctx := context.Background()

	buyer := primitive.NewObjectID()
	browser := primitive.NewObjectID()

	os.orders[primitive.NewObjectID()] = &models.Order{
		ID:          primitive.NewObjectID(),
		User:        buyer,
		OrderStatus: models.OrderDelivered,
		Items:       []models.OrderItem{{Product: product.ID, Quantity: 1}},
	}

	review, err := svc.Create(ctx, buyer, ReviewInput{Product: product.ID, Rating: 4})
	require.NoError(t, err)
	assert.True(t, review.VerifiedPurchase)

	review, err = svc.Create(ctx, browser, ReviewInput{Product: product.ID, Rating: 4})
	require.NoError(t, err)
	assert.False(t, review.VerifiedPurchase)
}

func TestVerifiedPurchaseIgnoresPendingOrders(t *testing.T) {
	product := &models.Product{ID: primitive.NewObjectID()}
	svc, _, _, _, os := newReviewFixture(product)

	buyer := primitive.NewObjectID()
	os.orders[primitive.NewObjectID()] = &models.Order{
		User:        buyer,
		OrderStatus: models.OrderPending,
		Items:       []models.OrderItem{{Product: product.ID, Quantity: 1}},
	}

	review, err := svc.Create(context.Background(), buyer, ReviewInput{Product: product.ID, Rating: 4})
	require.NoError(t, err)
	assert.False(t, review.VerifiedPurchase)
}

func TestReviewUpdateRecomputesOnRatingChange(t *testing.T) {
	product := &models.Product{ID: primitive.NewObjectID()}
	svc, _, _, ps, _ := newReviewFixture(product)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	review, err := svc.Create(ctx, userID, ReviewInput{Product: product.ID, Rating: 2})
	require.NoError(t, err)

	_, err = svc.Update(ctx, review.ID, Requester{UserID: userID}, ReviewInput{Product: product.ID, Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, models.Rating{Average: 5, Count: 1}, ps.products[product.ID].Ratings)
}

func TestReviewDeleteRequiresOwnership(t *testing.T) {
	product := &models.Product{ID: primitive.NewObjectID()}
	svc, _, rs, _, _ := newReviewFixture(product)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	review, err := svc.Create(ctx, owner, ReviewInput{Product: product.ID, Rating: 3})
	require.NoError(t, err)

	err = svc.Delete(ctx, review.ID, Requester{UserID: primitive.NewObjectID()})
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Len(t, rs.reviews, 1)
}
