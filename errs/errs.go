// Package errs defines the domain error taxonomy. Services return these;
// controllers translate them to HTTP statuses. Infrastructure errors (store or
// payment provider unreachable) pass through unwrapped.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrDuplicateReview   = errors.New("product already reviewed")
	ErrInvalidSignature  = errors.New("invalid webhook signature")
)

// InsufficientStockError names the first product that failed the stock
// sufficiency check so the caller can render an actionable message.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s is out of stock", e.ProductName)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// ValidationError reports a single malformed or out-of-range input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
