package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vinca/errs"
	"vinca/models"
)

func newCheckoutFixture(products []*models.Product, cart *models.Cart) (*Checkout, *fakeProductStore, *fakeCartStore, *fakeOrderStore) {
	ps := newFakeProductStore(products...)
	cs := newFakeCartStore()
	if cart != nil {
		cs.carts[cart.User] = cart
	}
	os := newFakeOrderStore()
	return &Checkout{Carts: cs, Products: ps, Orders: os}, ps, cs, os
}

func TestCheckoutEmptyCart(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("no cart document", func(t *testing.T) {
		svc, _, _, _ := newCheckoutFixture(nil, nil)
		_, err := svc.Checkout(context.Background(), userID, CheckoutInput{})
		assert.ErrorIs(t, err, errs.ErrEmptyCart)
	})

	t.Run("cart with no items", func(t *testing.T) {
		svc, _, _, _ := newCheckoutFixture(nil, &models.Cart{User: userID})
		_, err := svc.Checkout(context.Background(), userID, CheckoutInput{})
		assert.ErrorIs(t, err, errs.ErrEmptyCart)
	})
}

func TestCheckoutInsufficientStock(t *testing.T) {
	userID := primitive.NewObjectID()
	frames := &models.Product{ID: primitive.NewObjectID(), Name: "Aviator Classic", StockQuantity: 5}
	readers := &models.Product{ID: primitive.NewObjectID(), Name: "Round Reader", StockQuantity: 1}

	cart := &models.Cart{
		User: userID,
		Items: []models.CartItem{
			{Product: frames.ID, Quantity: 2, Price: 80},
			{Product: readers.ID, Quantity: 3, Price: 40},
		},
	}

	svc, ps, _, os := newCheckoutFixture([]*models.Product{frames, readers}, cart)

	_, err := svc.Checkout(context.Background(), userID, CheckoutInput{})

	var stockErr *errs.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Round Reader", stockErr.ProductName)

	// no partial effect: nothing decremented, no order created
	assert.Equal(t, 5, ps.products[frames.ID].StockQuantity)
	assert.Equal(t, 1, ps.products[readers.ID].StockQuantity)
	assert.Empty(t, os.orders)
}

func TestCheckoutSuccess(t *testing.T) {
	userID := primitive.NewObjectID()
	rxID := primitive.NewObjectID()
	// live catalog price differs from the cart snapshot; the snapshot wins
	frames := &models.Product{ID: primitive.NewObjectID(), Name: "Aviator Classic", Price: 150, StockQuantity: 5}

	cart := &models.Cart{
		User: userID,
		Items: []models.CartItem{
			{
				Product:      frames.ID,
				Quantity:     2,
				Price:        60,
				Prescription: &rxID,
				LensOptions:  &models.LensSelection{Type: "single-vision", Coating: []string{"anti-glare"}},
			},
		},
		TotalPrice: 120,
	}

	svc, ps, cs, os := newCheckoutFixture([]*models.Product{frames}, cart)

	order, err := svc.Checkout(context.Background(), userID, CheckoutInput{
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	assert.Equal(t, userID, order.User)
	assert.NotEmpty(t, order.OrderNumber)
	assert.Equal(t, models.OrderPending, order.OrderStatus)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 60.0, order.Items[0].Price)
	assert.Equal(t, 2, order.Items[0].Quantity)
	require.NotNil(t, order.Items[0].Prescription)
	assert.Equal(t, rxID, *order.Items[0].Prescription)
	require.NotNil(t, order.Items[0].LensOptions)
	assert.Equal(t, "single-vision", order.Items[0].LensOptions.Type)

	// subtotal 120 -> free shipping, 8% tax
	assert.Equal(t, 120.0, order.Subtotal)
	assert.Equal(t, 0.0, order.ShippingCost)
	assert.Equal(t, 9.60, order.Tax)
	assert.Equal(t, 129.60, order.TotalPrice)

	assert.Equal(t, 3, ps.products[frames.ID].StockQuantity)

	// cart emptied, not deleted
	remaining, err := cs.GetByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, remaining.Items)
	assert.Equal(t, 0.0, remaining.TotalPrice)

	stored, err := os.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, stored.OrderNumber)
}

func TestCheckoutWithPaymentIntent(t *testing.T) {
	userID := primitive.NewObjectID()
	frames := &models.Product{ID: primitive.NewObjectID(), Name: "Aviator Classic", StockQuantity: 5}
	cart := &models.Cart{
		User:  userID,
		Items: []models.CartItem{{Product: frames.ID, Quantity: 1, Price: 50}},
	}

	svc, _, _, _ := newCheckoutFixture([]*models.Product{frames}, cart)

	order, err := svc.Checkout(context.Background(), userID, CheckoutInput{
		PaymentMethod:   "card",
		PaymentIntentID: "pi_123",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, order.PaymentStatus)
	assert.Equal(t, "pi_123", order.PaymentIntentID)
}

func TestCheckoutRollsBackOnLostDecrementRace(t *testing.T) {
	userID := primitive.NewObjectID()
	frames := &models.Product{ID: primitive.NewObjectID(), Name: "Aviator Classic", StockQuantity: 5}
	readers := &models.Product{ID: primitive.NewObjectID(), Name: "Round Reader", StockQuantity: 5}

	cart := &models.Cart{
		User: userID,
		Items: []models.CartItem{
			{Product: frames.ID, Quantity: 2, Price: 80},
			{Product: readers.ID, Quantity: 1, Price: 40},
		},
	}

	svc, ps, _, os := newCheckoutFixture([]*models.Product{frames, readers}, cart)
	// pre-check sees enough stock, but the conditional decrement loses to a
	// concurrent checkout
	ps.decrementErr[readers.ID] = errs.ErrInsufficientStock

	_, err := svc.Checkout(context.Background(), userID, CheckoutInput{})

	var stockErr *errs.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Round Reader", stockErr.ProductName)

	// the frames decrement that already applied was compensated
	assert.Equal(t, 5, ps.products[frames.ID].StockQuantity)
	assert.Empty(t, os.orders)
}

func TestCheckoutRollsBackOnOrderInsertFailure(t *testing.T) {
	userID := primitive.NewObjectID()
	frames := &models.Product{ID: primitive.NewObjectID(), Name: "Aviator Classic", StockQuantity: 5}
	cart := &models.Cart{
		User:  userID,
		Items: []models.CartItem{{Product: frames.ID, Quantity: 2, Price: 80}},
	}

	svc, ps, cs, os := newCheckoutFixture([]*models.Product{frames}, cart)
	os.insertErr = errors.New("write concern failure")

	_, err := svc.Checkout(context.Background(), userID, CheckoutInput{})
	require.Error(t, err)

	assert.Equal(t, 5, ps.products[frames.ID].StockQuantity)

	// the cart survives the failed attempt
	remaining, err := cs.GetByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, remaining.Items, 1)
}

func TestOrderNumbersAreUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 200 {
		n := newOrderNumber()
		_, dup := seen[n]
		require.False(t, dup, "duplicate order number %s", n)
		seen[n] = struct{}{}
	}
}
