package service

import (
	"context"
	"time"

	"stylesensai-server/internal/domain"
	apperrors "stylesensai-server/pkg/errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/subscription"
)

// billingService fronts Stripe. ConfirmCheckout is the only write path into
// the subscriptions read model.
type billingService struct {
	subscriptionRepo domain.SubscriptionRepository
	config           domain.Config
	logger           domain.Logger
}

func NewBillingService(subscriptionRepo domain.SubscriptionRepository, config domain.Config, logger domain.Logger) domain.BillingService {
	stripe.Key = config.GetStripeSecretKey()
	return &billingService{
		subscriptionRepo: subscriptionRepo,
		config:           config,
		logger:           logger,
	}
}

// CreateCheckout creates a subscription-mode checkout session for a paid
// plan and returns the hosted payment URL.
func (s *billingService) CreateCheckout(ctx context.Context, userID string, plan domain.PlanTier) (*domain.CheckoutSession, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("userId is required")
	}
	priceID := s.config.GetStripePriceID(plan)
	if priceID == "" {
		return nil, apperrors.NewValidationError("invalid plan", string(plan))
	}

	baseURL := s.config.GetAppBaseURL()
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(baseURL + "/install?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(baseURL + "/pricing"),
	}
	params.AddMetadata("userId", userID)
	params.AddMetadata("plan", string(plan))

	sess, err := session.New(params)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to create checkout session", err)
	}

	s.logger.Info("Checkout session created", "user_id", userID, "plan", plan)
	return &domain.CheckoutSession{URL: sess.URL}, nil
}

// ConfirmCheckout verifies a completed checkout session with Stripe and
// upserts the subscription row. Safe to call more than once for the same
// session.
func (s *billingService) ConfirmCheckout(ctx context.Context, sessionID string) (*domain.Subscription, error) {
	if sessionID == "" {
		return nil, apperrors.NewValidationError("sessionId is required")
	}

	sess, err := session.Get(sessionID, nil)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to retrieve checkout session", err)
	}
	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return nil, apperrors.NewValidationError("payment not completed")
	}

	userID := sess.Metadata["userId"]
	plan := sess.Metadata["plan"]
	if userID == "" || plan == "" {
		return nil, apperrors.NewUpstreamError("checkout session missing metadata", nil)
	}
	if sess.Subscription == nil {
		return nil, apperrors.NewUpstreamError("checkout session has no subscription", nil)
	}

	stripeSub, err := subscription.Get(sess.Subscription.ID, nil)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to retrieve subscription", err)
	}

	periodEnd := time.Unix(stripeSub.CurrentPeriodEnd, 0).UTC()
	sub := &domain.Subscription{
		UserID:           userID,
		Plan:             domain.ParsePlan(plan),
		Status:           string(stripeSub.Status),
		CurrentPeriodEnd: &periodEnd,
	}

	if err := s.subscriptionRepo.Upsert(ctx, sub); err != nil {
		return nil, apperrors.NewStorageError("failed to save subscription", err)
	}

	s.logger.Info("Subscription confirmed", "user_id", userID, "plan", plan, "status", sub.Status)
	return sub, nil
}
