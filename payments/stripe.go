// Package payments wraps the Stripe boundary: outbound payment-intent
// creation and inbound webhook verification. Amounts cross this boundary in
// integer cents only.
package payments

import (
	"context"
	"encoding/json"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"

	"vinca/errs"
	"vinca/services"
)

type Client struct {
	webhookSecret string
}

func New(secretKey, webhookSecret string) *Client {
	stripe.Key = secretKey
	return &Client{webhookSecret: webhookSecret}
}

func (c *Client) CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*services.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return &services.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// VerifyEvent authenticates a raw webhook delivery against the shared secret
// and extracts the payment-intent reference. Nothing downstream sees an
// unverified payload.
func (c *Client) VerifyEvent(payload []byte, signature string) (services.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, c.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return services.PaymentEvent{}, fmt.Errorf("%w: %v", errs.ErrInvalidSignature, err)
	}

	out := services.PaymentEvent{Type: string(event.Type)}

	switch out.Type {
	case services.EventPaymentSucceeded, services.EventPaymentFailed:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return services.PaymentEvent{}, fmt.Errorf("decode payment intent: %w", err)
		}
		out.IntentID = intent.ID
	}

	return out, nil
}
