package controllers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vinca/services"
)

// CreatePaymentIntent prices the caller's current cart and opens a payment
// intent with the provider. The amount crosses the boundary in cents,
// converted exactly once.
func CreatePaymentIntent(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	cart, err := checkoutSvc.Carts.GetByUser(ctx, req.UserID)
	if err != nil || len(cart.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	totals := services.ComputeTotals(cart.Items)
	amountCents := services.ToCents(totals.TotalPrice)

	intent, err := payClient.CreateIntent(ctx, amountCents, "usd", map[string]string{
		"userId": req.UserID.Hex(),
		"cartId": cart.ID.Hex(),
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret": intent.ClientSecret,
		"amount":       totals.TotalPrice,
	})
}

// StripeWebhook verifies the provider signature and hands the event to the
// reconciliation handler. Unverified payloads never reach order state.
func StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read payload"})
		return
	}

	event, err := payClient.VerifyEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := paymentsSvc.HandleEvent(ctx, event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
