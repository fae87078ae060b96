// Package services implements the order and inventory consistency engine:
// checkout, payment reconciliation, cancellation with stock restoration, and
// rating aggregation. The database is the sole synchronization point; every
// operation is request-scoped and stateless between requests.
package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vinca/models"
)

// CartStore is the per-user cart collaborator.
type CartStore interface {
	GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	// ClearItems empties the cart's item list and zeroes its total without
	// deleting the cart document.
	ClearItems(ctx context.Context, userID primitive.ObjectID) error
}

// ProductStore is the catalog collaborator. Stock mutations are atomic
// per-product conditional updates applied by the store, not read-modify-write
// cycles in the service.
type ProductStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	// DecrementStock subtracts qty from the product's stockQuantity only if
	// stockQuantity >= qty, returning errs.ErrInsufficientStock otherwise.
	// Stock can never go negative through this path.
	DecrementStock(ctx context.Context, id primitive.ObjectID, qty int) error
	IncrementStock(ctx context.Context, id primitive.ObjectID, qty int) error
	// SetRatings overwrites the product's ratings aggregate. The rating
	// aggregator is the only caller.
	SetRatings(ctx context.Context, id primitive.ObjectID, average float64, count int) error
}

// OrderStore persists orders and applies the status transitions the engine
// needs as single conditional updates.
type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	// MarkCancelled flips orderStatus to cancelled only while the order is
	// still pending or processing, returning the updated order, or
	// errs.ErrInvalidTransition if the order was already past that point.
	MarkCancelled(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	SetPaymentStatus(ctx context.Context, id primitive.ObjectID, status string) error
	// ApplyPaymentSucceeded sets paymentStatus=paid, orderStatus=processing on
	// the order holding the given payment intent id. matched is false when no
	// order holds it.
	ApplyPaymentSucceeded(ctx context.Context, intentID string) (matched bool, err error)
	ApplyPaymentFailed(ctx context.Context, intentID string) (matched bool, err error)
	// HasFulfilledOrder reports whether the user has a shipped or delivered
	// order containing the product.
	HasFulfilledOrder(ctx context.Context, userID, productID primitive.ObjectID) (bool, error)
}

// ReviewStore persists reviews under a unique (user, product) constraint.
type ReviewStore interface {
	// Insert returns errs.ErrDuplicateReview when the user already reviewed
	// the product.
	Insert(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error)
}

// PaymentIntent is the provider-side object representing one attempted charge.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentProvider is the outbound payment boundary. Amounts cross it in
// integer minor units; the dollars-to-cents conversion happens exactly once,
// in ToCents.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*PaymentIntent, error)
}

// Requester identifies who is asking for an operation, for ownership checks.
type Requester struct {
	UserID primitive.ObjectID
	Admin  bool
}

func (r Requester) owns(userID primitive.ObjectID) bool {
	return r.Admin || r.UserID == userID
}
