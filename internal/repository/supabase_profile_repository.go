package repository

import (
	"context"
	"encoding/json"

	"stylesensai-server/internal/domain"
	apperrors "stylesensai-server/pkg/errors"

	"github.com/supabase-community/supabase-go"
)

// SupabaseProfileRepository implements domain.ProfileRepository against the
// profiles table.
type SupabaseProfileRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewSupabaseProfileRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.ProfileRepository {
	return &SupabaseProfileRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// clientFor prefers a client scoped to the caller's token so row level
// security applies as that user; entitlement reads without a request token
// (the access resolver's internal reads) use the service role client.
func (r *SupabaseProfileRepository) clientFor(ctx context.Context) *supabase.Client {
	if token, ok := domain.AccessTokenFromContext(ctx); ok {
		if client, err := r.supabaseClient.GetClientWithToken(token); err == nil {
			return client
		}
	}
	return r.supabaseClient.Admin()
}

// Get returns the user's profile, or nil if no row exists yet.
func (r *SupabaseProfileRepository) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	client := r.clientFor(ctx)
	if client == nil {
		return nil, apperrors.NewStorageError("supabase client not initialized", nil)
	}

	data, _, err := client.From("profiles").
		Select("user_id,purpose,goal,preferred_length,onboarding_complete", "", false).
		Eq("user_id", userID).
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to get profile", err)
	}

	var rows []domain.Profile
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, apperrors.NewStorageError("failed to unmarshal profile", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// Upsert creates or updates the user's profile row.
func (r *SupabaseProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	client := r.clientFor(ctx)
	if client == nil {
		return apperrors.NewStorageError("supabase client not initialized", nil)
	}

	data := map[string]interface{}{
		"user_id":             profile.UserID,
		"purpose":             profile.Purpose,
		"goal":                profile.Goal,
		"preferred_length":    profile.PreferredLength,
		"onboarding_complete": profile.OnboardingComplete,
	}

	_, _, err := client.From("profiles").
		Upsert(data, "user_id", "", "").
		Execute()
	if err != nil {
		return apperrors.NewStorageError("failed to upsert profile", err)
	}

	r.logger.Info("Profile updated", "user_id", profile.UserID, "onboarding_complete", profile.OnboardingComplete)
	return nil
}
