package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vinca/errs"
	"vinca/models"
)

// Orders owns the cancellation flow: reverse a checkout's stock effects and
// park the order in its terminal cancelled state.
type Orders struct {
	Orders   OrderStore
	Products ProductStore
}

// Cancel cancels an order on behalf of its owner or an admin. Only pending
// and processing orders qualify; the transition itself is conditional in the
// store, so two concurrent cancels cannot both restore stock. A provider-side
// refund, when due, is the caller's follow-up; this flow only records
// paymentStatus=refunded.
func (s *Orders) Cancel(ctx context.Context, orderID primitive.ObjectID, requester Requester) (*models.Order, error) {
	order, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !requester.owns(order.User) {
		return nil, errs.ErrNotAuthorized
	}

	if !order.Cancellable() {
		return nil, errs.ErrInvalidTransition
	}

	cancelled, err := s.Orders.MarkCancelled(ctx, orderID)
	if err != nil {
		return nil, err
	}

	for _, item := range cancelled.Items {
		if err := s.Products.IncrementStock(ctx, item.Product, item.Quantity); err != nil {
			return nil, err
		}
	}

	if cancelled.PaymentStatus == models.PaymentPaid {
		if err := s.Orders.SetPaymentStatus(ctx, orderID, models.PaymentRefunded); err != nil {
			return nil, err
		}
		cancelled.PaymentStatus = models.PaymentRefunded
	}

	return cancelled, nil
}
