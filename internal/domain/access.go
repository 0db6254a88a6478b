package domain

import "context"

// UserAccess answers "what is this user entitled to".
type UserAccess struct {
	Plan                  PlanTier   `json:"plan"`
	Limits                PlanLimits `json:"limits"`
	HasActiveSubscription bool       `json:"hasActiveSubscription"`
	OnboardingComplete    bool       `json:"onboardingComplete"`
}

// FreeAccess returns the defaults every unknown or brand-new user gets.
func FreeAccess() *UserAccess {
	return &UserAccess{
		Plan:   PlanFree,
		Limits: LimitsFor(PlanFree),
	}
}

// WordLimitResult reports whether a request may consume more words.
// Remaining is the pre-consumption balance (quota minus words already used
// today), not the balance after the request; callers display it directly.
type WordLimitResult struct {
	Allowed   bool `json:"allowed"`
	Remaining int  `json:"remaining"`
}

// AccessResolver is the single entry point for entitlement questions.
// The resolver is advisory: it never mutates state, and enforcement of an
// Allowed=false answer is the caller's responsibility. Two implementations
// exist, one with direct store access for code inside the trust boundary
// and one that calls the privileged API over HTTP.
type AccessResolver interface {
	// ResolveAccess never errors for a user with no rows in any table;
	// it returns free-tier defaults instead.
	ResolveAccess(ctx context.Context, userID string) (*UserAccess, error)
	// CheckWordLimit rejects negative wordsToAdd before touching storage.
	// wordsToAdd == 0 acts as a pure remaining-balance probe.
	CheckWordLimit(ctx context.Context, userID string, wordsToAdd int) (*WordLimitResult, error)
}
