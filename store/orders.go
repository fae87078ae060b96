package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vinca/errs"
	"vinca/models"
)

type OrderStore struct {
	col *mongo.Collection
}

func (s *OrderStore) Insert(ctx context.Context, order *models.Order) error {
	_, err := s.col.InsertOne(ctx, order)
	return err
}

func (s *OrderStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// MarkCancelled performs the guarded transition in one conditional update:
// only an order still pending or processing matches, so a concurrent cancel
// of the same order finds nothing and cannot restore stock a second time.
func (s *OrderStore) MarkCancelled(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	filter := bson.M{
		"_id":         id,
		"orderStatus": bson.M{"$in": []string{models.OrderPending, models.OrderProcessing}},
	}
	update := bson.M{"$set": bson.M{
		"orderStatus": models.OrderCancelled,
		"updatedAt":   time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order models.Order
	err := s.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrInvalidTransition
		}
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) SetPaymentStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"paymentStatus": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *OrderStore) ApplyPaymentSucceeded(ctx context.Context, intentID string) (bool, error) {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"paymentIntentId": intentID},
		bson.M{"$set": bson.M{
			"paymentStatus": models.PaymentPaid,
			"orderStatus":   models.OrderProcessing,
			"updatedAt":     time.Now(),
		}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *OrderStore) ApplyPaymentFailed(ctx context.Context, intentID string) (bool, error) {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"paymentIntentId": intentID},
		bson.M{"$set": bson.M{
			"paymentStatus": models.PaymentFailed,
			"updatedAt":     time.Now(),
		}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *OrderStore) HasFulfilledOrder(ctx context.Context, userID, productID primitive.ObjectID) (bool, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{
		"user":          userID,
		"items.product": productID,
		"orderStatus":   bson.M{"$in": []string{models.OrderShipped, models.OrderDelivered}},
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
