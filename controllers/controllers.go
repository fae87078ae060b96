package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vinca/errs"
	"vinca/payments"
	"vinca/services"
	"vinca/store"
)

var (
	checkoutSvc *services.Checkout
	ordersSvc   *services.Orders
	paymentsSvc *services.Payments
	reviewsSvc  *services.Reviews
	ratingsSvc  *services.Ratings
	payClient   *payments.Client
)

// Init wires the service layer. Called once from main after the database is
// up.
func Init(st *store.Stores, pay *payments.Client) {
	checkoutSvc = &services.Checkout{Carts: st.Carts, Products: st.Products, Orders: st.Orders}
	ordersSvc = &services.Orders{Orders: st.Orders, Products: st.Products}
	paymentsSvc = &services.Payments{Orders: st.Orders}
	ratingsSvc = &services.Ratings{Reviews: st.Reviews, Products: st.Products}
	reviewsSvc = &services.Reviews{Reviews: st.Reviews, Orders: st.Orders, Ratings: ratingsSvc}
	payClient = pay
}

// requester builds the authorization context from the claims the auth
// middleware stored.
func requester(c *gin.Context) (services.Requester, bool) {
	userId, exists := c.Get("userId")
	if !exists {
		return services.Requester{}, false
	}
	objID, err := primitive.ObjectIDFromHex(userId.(string))
	if err != nil {
		return services.Requester{}, false
	}
	role, _ := c.Get("role")
	return services.Requester{UserID: objID, Admin: role == "admin"}, true
}

// respondError maps domain errors to HTTP statuses. Anything outside the
// taxonomy is an infrastructure failure and surfaces as a 500 without leaking
// the internal error.
func respondError(c *gin.Context, err error) {
	var stockErr *errs.InsufficientStockError
	var validationErr *errs.ValidationError

	switch {
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": stockErr.Error(), "product": stockErr.ProductName})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
	case errors.Is(err, errs.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, errs.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
	case errors.Is(err, errs.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status transition"})
	case errors.Is(err, errs.ErrDuplicateReview):
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already reviewed this product"})
	case errors.Is(err, errs.ErrInvalidSignature):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
