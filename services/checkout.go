package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vinca/errs"
	"vinca/models"
)

// Checkout converts a user's cart into an order: it verifies stock, reserves
// it with per-item conditional decrements, snapshots pricing, and empties the
// cart. All-or-nothing: any failure rolls back the decrements already applied
// and leaves no order behind.
type Checkout struct {
	Carts    CartStore
	Products ProductStore
	Orders   OrderStore
}

type CheckoutInput struct {
	ShippingAddress models.Address
	BillingAddress  models.Address
	PaymentMethod   string
	PaymentIntentID string
}

func (s *Checkout) Checkout(ctx context.Context, userID primitive.ObjectID, in CheckoutInput) (*models.Order, error) {
	cart, err := s.Carts.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, errs.ErrEmptyCart
	}

	// Sufficiency pre-check before any mutation, so a doomed checkout names
	// the offending product without touching stock.
	names := make(map[primitive.ObjectID]string, len(cart.Items))
	for _, item := range cart.Items {
		product, err := s.Products.GetByID(ctx, item.Product)
		if err != nil {
			return nil, err
		}
		names[item.Product] = product.Name
		if !product.InStock() || product.StockQuantity < item.Quantity {
			return nil, &errs.InsufficientStockError{ProductName: product.Name}
		}
	}

	totals := ComputeTotals(cart.Items)

	paymentStatus := models.PaymentPending
	if in.PaymentIntentID != "" {
		paymentStatus = models.PaymentPaid
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, models.OrderItem{
			Product:      item.Product,
			Quantity:     item.Quantity,
			Price:        item.Price,
			Prescription: item.Prescription,
			LensOptions:  item.LensOptions,
		})
	}

	now := time.Now()
	order := &models.Order{
		ID:              primitive.NewObjectID(),
		User:            userID,
		OrderNumber:     newOrderNumber(),
		Items:           items,
		ShippingAddress: in.ShippingAddress,
		BillingAddress:  in.BillingAddress,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   paymentStatus,
		PaymentIntentID: in.PaymentIntentID,
		OrderStatus:     models.OrderPending,
		Subtotal:        totals.Subtotal,
		ShippingCost:    totals.ShippingCost,
		Tax:             totals.Tax,
		TotalPrice:      totals.TotalPrice,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Reserve stock item by item. Each decrement only applies while enough
	// stock remains, so a concurrent checkout racing past the pre-check fails
	// here instead of driving stock negative.
	var reserved []models.OrderItem
	for _, item := range items {
		if err := s.Products.DecrementStock(ctx, item.Product, item.Quantity); err != nil {
			s.releaseStock(ctx, reserved)
			if errors.Is(err, errs.ErrInsufficientStock) {
				return nil, &errs.InsufficientStockError{ProductName: names[item.Product]}
			}
			return nil, err
		}
		reserved = append(reserved, item)
	}

	if err := s.Orders.Insert(ctx, order); err != nil {
		s.releaseStock(ctx, reserved)
		return nil, err
	}

	if err := s.Carts.ClearItems(ctx, userID); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *Checkout) releaseStock(ctx context.Context, items []models.OrderItem) {
	for _, item := range items {
		_ = s.Products.IncrementStock(ctx, item.Product, item.Quantity)
	}
}

// newOrderNumber generates a globally unique order number. The timestamp keeps
// numbers roughly sortable; the uuid-derived suffix covers concurrent
// checkouts in the same millisecond. A unique index on orderNumber backs the
// guarantee.
func newOrderNumber() string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("VINCA-%d-%s", time.Now().UnixMilli(), suffix)
}
