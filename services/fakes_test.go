package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vinca/errs"
	"vinca/models"
)

type fakeProductStore struct {
	products map[primitive.ObjectID]*models.Product
	// decrementErr forces a failure for a product even when the fake holds
	// enough stock, simulating a concurrent checkout winning the race between
	// the sufficiency pre-check and the conditional decrement.
	decrementErr map[primitive.ObjectID]error
}

func newFakeProductStore(products ...*models.Product) *fakeProductStore {
	s := &fakeProductStore{
		products:     make(map[primitive.ObjectID]*models.Product),
		decrementErr: make(map[primitive.ObjectID]error),
	}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *fakeProductStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *fakeProductStore) DecrementStock(_ context.Context, id primitive.ObjectID, qty int) error {
	if err, ok := s.decrementErr[id]; ok {
		return err
	}
	p, ok := s.products[id]
	if !ok {
		return errs.ErrNotFound
	}
	if p.StockQuantity < qty {
		return errs.ErrInsufficientStock
	}
	p.StockQuantity -= qty
	return nil
}

func (s *fakeProductStore) IncrementStock(_ context.Context, id primitive.ObjectID, qty int) error {
	p, ok := s.products[id]
	if !ok {
		return errs.ErrNotFound
	}
	p.StockQuantity += qty
	return nil
}

func (s *fakeProductStore) SetRatings(_ context.Context, id primitive.ObjectID, average float64, count int) error {
	p, ok := s.products[id]
	if !ok {
		return errs.ErrNotFound
	}
	p.Ratings = models.Rating{Average: average, Count: count}
	return nil
}

type fakeCartStore struct {
	carts map[primitive.ObjectID]*models.Cart
}

func newFakeCartStore(carts ...*models.Cart) *fakeCartStore {
	s := &fakeCartStore{carts: make(map[primitive.ObjectID]*models.Cart)}
	for _, c := range carts {
		s.carts[c.User] = c
	}
	return s
}

func (s *fakeCartStore) GetByUser(_ context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	c, ok := s.carts[userID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cp := *c
	cp.Items = append([]models.CartItem(nil), c.Items...)
	return &cp, nil
}

func (s *fakeCartStore) ClearItems(_ context.Context, userID primitive.ObjectID) error {
	c, ok := s.carts[userID]
	if !ok {
		return errs.ErrNotFound
	}
	c.Items = nil
	c.TotalPrice = 0
	return nil
}

type fakeOrderStore struct {
	orders    map[primitive.ObjectID]*models.Order
	insertErr error
}

func newFakeOrderStore(orders ...*models.Order) *fakeOrderStore {
	s := &fakeOrderStore{orders: make(map[primitive.ObjectID]*models.Order)}
	for _, o := range orders {
		s.orders[o.ID] = o
	}
	return s
}

func (s *fakeOrderStore) Insert(_ context.Context, order *models.Order) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	cp := *order
	s.orders[order.ID] = &cp
	return nil
}

func (s *fakeOrderStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *fakeOrderStore) MarkCancelled(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	if !o.Cancellable() {
		return nil, errs.ErrInvalidTransition
	}
	o.OrderStatus = models.OrderCancelled
	cp := *o
	return &cp, nil
}

func (s *fakeOrderStore) SetPaymentStatus(_ context.Context, id primitive.ObjectID, status string) error {
	o, ok := s.orders[id]
	if !ok {
		return errs.ErrNotFound
	}
	o.PaymentStatus = status
	return nil
}

func (s *fakeOrderStore) ApplyPaymentSucceeded(_ context.Context, intentID string) (bool, error) {
	for _, o := range s.orders {
		if o.PaymentIntentID == intentID {
			o.PaymentStatus = models.PaymentPaid
			o.OrderStatus = models.OrderProcessing
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeOrderStore) ApplyPaymentFailed(_ context.Context, intentID string) (bool, error) {
	for _, o := range s.orders {
		if o.PaymentIntentID == intentID {
			o.PaymentStatus = models.PaymentFailed
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeOrderStore) HasFulfilledOrder(_ context.Context, userID, productID primitive.ObjectID) (bool, error) {
	for _, o := range s.orders {
		if o.User != userID {
			continue
		}
		if o.OrderStatus != models.OrderShipped && o.OrderStatus != models.OrderDelivered {
			continue
		}
		for _, item := range o.Items {
			if item.Product == productID {
				return true, nil
			}
		}
	}
	return false, nil
}

type fakeReviewStore struct {
	reviews map[primitive.ObjectID]*models.Review
}

func newFakeReviewStore(reviews ...*models.Review) *fakeReviewStore {
	s := &fakeReviewStore{reviews: make(map[primitive.ObjectID]*models.Review)}
	for _, r := range reviews {
		s.reviews[r.ID] = r
	}
	return s
}

func (s *fakeReviewStore) Insert(_ context.Context, review *models.Review) error {
	for _, r := range s.reviews {
		if r.User == review.User && r.Product == review.Product {
			return errs.ErrDuplicateReview
		}
	}
	cp := *review
	s.reviews[review.ID] = &cp
	return nil
}

func (s *fakeReviewStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Review, error) {
	r, ok := s.reviews[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *fakeReviewStore) Update(_ context.Context, review *models.Review) error {
	if _, ok := s.reviews[review.ID]; !ok {
		return errs.ErrNotFound
	}
	cp := *review
	s.reviews[review.ID] = &cp
	return nil
}

func (s *fakeReviewStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.reviews[id]; !ok {
		return errs.ErrNotFound
	}
	delete(s.reviews, id)
	return nil
}

func (s *fakeReviewStore) ListByProduct(_ context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	var out []models.Review
	for _, r := range s.reviews {
		if r.Product == productID {
			out = append(out, *r)
		}
	}
	return out, nil
}
