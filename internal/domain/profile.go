package domain

import "context"

// Profile holds per-user onboarding and preference state. Orthogonal to
// entitlement; only OnboardingComplete intersects the access gate.
type Profile struct {
	UserID             string `json:"user_id"`
	Purpose            string `json:"purpose,omitempty"`
	Goal               string `json:"goal,omitempty"`
	PreferredLength    string `json:"preferred_length,omitempty"`
	OnboardingComplete bool   `json:"onboarding_complete"`
}

type ProfileRepository interface {
	// Get returns nil, nil when the user has no profile row yet.
	Get(ctx context.Context, userID string) (*Profile, error)
	Upsert(ctx context.Context, profile *Profile) error
}
