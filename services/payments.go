package services

import (
	"context"
	"log"
)

// Event types emitted by the payment provider.
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

// PaymentEvent is a verified, authenticated provider notification. Signature
// verification happens at the transport boundary before one of these exists.
type PaymentEvent struct {
	Type     string
	IntentID string
}

// Payments reconciles asynchronous provider events against order state. The
// transitions are find-and-set by intent id, so replaying an event is a
// no-op and delivery before the order is visible simply matches nothing.
type Payments struct {
	Orders OrderStore
}

func (s *Payments) HandleEvent(ctx context.Context, event PaymentEvent) error {
	switch event.Type {
	case EventPaymentSucceeded:
		matched, err := s.Orders.ApplyPaymentSucceeded(ctx, event.IntentID)
		if err != nil {
			return err
		}
		if !matched {
			log.Printf("payment succeeded for unknown intent %s, ignoring", event.IntentID)
		}
		return nil

	case EventPaymentFailed:
		matched, err := s.Orders.ApplyPaymentFailed(ctx, event.IntentID)
		if err != nil {
			return err
		}
		if !matched {
			log.Printf("payment failed for unknown intent %s, ignoring", event.IntentID)
		}
		return nil

	default:
		log.Printf("unhandled payment event type %s", event.Type)
		return nil
	}
}
