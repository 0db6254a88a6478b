package domain

import "context"

// CheckoutSession is the redirect target for a newly created checkout.
type CheckoutSession struct {
	URL string `json:"url"`
}

// BillingService fronts the payment provider. Confirm is the only path in
// the system that mutates the Subscription read model.
type BillingService interface {
	CreateCheckout(ctx context.Context, userID string, plan PlanTier) (*CheckoutSession, error)
	ConfirmCheckout(ctx context.Context, sessionID string) (*Subscription, error)
}
