package domain

import (
	"context"
	"time"
)

// Subscription is the read model for a user's paid status. Rows are written
// only by the billing confirmation path and status transitions; they are
// never hard-deleted.
type Subscription struct {
	UserID           string     `json:"user_id"`
	Plan             PlanTier   `json:"plan"`
	Status           string     `json:"status"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
}

// Active reports whether this subscription currently entitles the user to
// its plan.
func (s *Subscription) Active() bool {
	return s != nil && s.Status == "active"
}

// SubscriptionRepository defines persistence for the subscription read model.
type SubscriptionRepository interface {
	// GetActive returns the user's active subscription, or nil if none.
	// A user with no rows is a normal state, not an error.
	GetActive(ctx context.Context, userID string) (*Subscription, error)
	Upsert(ctx context.Context, sub *Subscription) error
}
