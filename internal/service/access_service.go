package service

import (
	"context"
	"time"

	"stylesensai-server/internal/domain"
	apperrors "stylesensai-server/pkg/errors"

	"golang.org/x/sync/errgroup"
)

// AccessService is the privileged AccessResolver implementation with direct
// store access. It owns no state: it reads the subscription and usage tables
// and composes them with the plan registry.
//
// Entitlement reads favor availability: a failing subscription or profile
// read degrades to free-tier defaults instead of failing the request. Only
// malformed input is surfaced as an error.
type AccessService struct {
	subscriptionRepo domain.SubscriptionRepository
	profileRepo      domain.ProfileRepository
	usageRepo        domain.UsageRepository
	logger           domain.Logger

	// now is swappable for day-rollover tests.
	now func() time.Time
}

func NewAccessService(
	subscriptionRepo domain.SubscriptionRepository,
	profileRepo domain.ProfileRepository,
	usageRepo domain.UsageRepository,
	logger domain.Logger,
) *AccessService {
	return &AccessService{
		subscriptionRepo: subscriptionRepo,
		profileRepo:      profileRepo,
		usageRepo:        usageRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// ResolveAccess answers "what is this user entitled to". Safe to call for a
// user with zero rows in any table: returns free-tier defaults, never an
// error.
func (s *AccessService) ResolveAccess(ctx context.Context, userID string) (*domain.UserAccess, error) {
	var (
		sub     *domain.Subscription
		profile *domain.Profile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.subscriptionRepo.GetActive(gctx, userID)
		if err != nil {
			s.logger.Warn("Subscription read failed, defaulting to free plan", "user_id", userID, "error", err)
			return nil
		}
		sub = found
		return nil
	})
	g.Go(func() error {
		found, err := s.profileRepo.Get(gctx, userID)
		if err != nil {
			s.logger.Warn("Profile read failed, defaulting onboarding to false", "user_id", userID, "error", err)
			return nil
		}
		profile = found
		return nil
	})
	_ = g.Wait()

	access := domain.FreeAccess()
	if sub.Active() {
		access.Plan = sub.Plan
		access.Limits = domain.LimitsFor(sub.Plan)
		access.HasActiveSubscription = true
	}
	if profile != nil {
		access.OnboardingComplete = profile.OnboardingComplete
	}
	return access, nil
}

// CheckWordLimit answers "may this user consume wordsToAdd more words now".
// Remaining is the pre-consumption balance; wordsToAdd == 0 is a pure probe.
func (s *AccessService) CheckWordLimit(ctx context.Context, userID string, wordsToAdd int) (*domain.WordLimitResult, error) {
	if wordsToAdd < 0 {
		return nil, apperrors.NewValidationError("wordsToAdd must be non-negative")
	}

	access, err := s.ResolveAccess(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := domain.UsageDay(s.now())
	used, err := s.usageRepo.GetUsage(ctx, userID, today)
	if err != nil {
		s.logger.Warn("Usage read failed, treating usage as zero", "user_id", userID, "date", today, "error", err)
		used = 0
	}

	remaining := access.Limits.DailyWords - used
	return &domain.WordLimitResult{
		Allowed:   remaining >= wordsToAdd,
		Remaining: remaining,
	}, nil
}
