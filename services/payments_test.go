package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vinca/models"
)

func TestHandleEventPaymentSucceeded(t *testing.T) {
	order := &models.Order{
		ID:              primitive.NewObjectID(),
		PaymentIntentID: "pi_1",
		PaymentStatus:   models.PaymentPending,
		OrderStatus:     models.OrderPending,
	}
	os := newFakeOrderStore(order)
	svc := &Payments{Orders: os}

	event := PaymentEvent{Type: EventPaymentSucceeded, IntentID: "pi_1"}
	require.NoError(t, svc.HandleEvent(context.Background(), event))

	assert.Equal(t, models.PaymentPaid, os.orders[order.ID].PaymentStatus)
	assert.Equal(t, models.OrderProcessing, os.orders[order.ID].OrderStatus)

	// replay delivers an identical final state
	require.NoError(t, svc.HandleEvent(context.Background(), event))
	assert.Equal(t, models.PaymentPaid, os.orders[order.ID].PaymentStatus)
	assert.Equal(t, models.OrderProcessing, os.orders[order.ID].OrderStatus)
}

func TestHandleEventPaymentFailed(t *testing.T) {
	order := &models.Order{
		ID:              primitive.NewObjectID(),
		PaymentIntentID: "pi_2",
		PaymentStatus:   models.PaymentPending,
		OrderStatus:     models.OrderPending,
	}
	os := newFakeOrderStore(order)
	svc := &Payments{Orders: os}

	err := svc.HandleEvent(context.Background(), PaymentEvent{Type: EventPaymentFailed, IntentID: "pi_2"})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentFailed, os.orders[order.ID].PaymentStatus)
	// orderStatus untouched on failure
	assert.Equal(t, models.OrderPending, os.orders[order.ID].OrderStatus)
}

func TestHandleEventUnknownIntentIsNoOp(t *testing.T) {
	order := &models.Order{
		ID:              primitive.NewObjectID(),
		PaymentIntentID: "pi_known",
		PaymentStatus:   models.PaymentPending,
		OrderStatus:     models.OrderPending,
	}
	os := newFakeOrderStore(order)
	svc := &Payments{Orders: os}

	// the event may arrive before the order's creation is visible; not an error
	err := svc.HandleEvent(context.Background(), PaymentEvent{Type: EventPaymentSucceeded, IntentID: "pi_other"})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentPending, os.orders[order.ID].PaymentStatus)
}

func TestHandleEventUnknownTypeIgnored(t *testing.T) {
	order := &models.Order{
		ID:              primitive.NewObjectID(),
		PaymentIntentID: "pi_1",
		PaymentStatus:   models.PaymentPending,
	}
	os := newFakeOrderStore(order)
	svc := &Payments{Orders: os}

	err := svc.HandleEvent(context.Background(), PaymentEvent{Type: "charge.dispute.created", IntentID: "pi_1"})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, os.orders[order.ID].PaymentStatus)
}
