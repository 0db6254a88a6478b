package repository

import (
	"context"
	"encoding/json"
	"time"

	"stylesensai-server/internal/domain"
	apperrors "stylesensai-server/pkg/errors"
)

// SupabaseSubscriptionRepository implements domain.SubscriptionRepository
// against the subscriptions table.
type SupabaseSubscriptionRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewSupabaseSubscriptionRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.SubscriptionRepository {
	return &SupabaseSubscriptionRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

type subscriptionRow struct {
	UserID           string  `json:"user_id"`
	Plan             string  `json:"plan"`
	Status           string  `json:"status"`
	CurrentPeriodEnd *string `json:"current_period_end"`
}

// GetActive returns the user's active subscription, or nil if none exists.
func (r *SupabaseSubscriptionRepository) GetActive(ctx context.Context, userID string) (*domain.Subscription, error) {
	client := r.supabaseClient.Admin()
	if client == nil {
		return nil, apperrors.NewStorageError("supabase client not initialized", nil)
	}

	data, _, err := client.From("subscriptions").
		Select("user_id,plan,status,current_period_end", "", false).
		Eq("user_id", userID).
		Eq("status", "active").
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to get subscription", err)
	}

	var rows []subscriptionRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, apperrors.NewStorageError("failed to unmarshal subscription", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	sub := &domain.Subscription{
		UserID: rows[0].UserID,
		Plan:   domain.ParsePlan(rows[0].Plan),
		Status: rows[0].Status,
	}
	if rows[0].CurrentPeriodEnd != nil {
		if end, err := time.Parse(time.RFC3339, *rows[0].CurrentPeriodEnd); err == nil {
			sub.CurrentPeriodEnd = &end
		}
	}
	return sub, nil
}

// Upsert creates or replaces the user's subscription row. Only the billing
// confirmation path calls this.
func (r *SupabaseSubscriptionRepository) Upsert(ctx context.Context, sub *domain.Subscription) error {
	client := r.supabaseClient.Admin()
	if client == nil {
		return apperrors.NewStorageError("supabase client not initialized", nil)
	}

	data := map[string]interface{}{
		"user_id": sub.UserID,
		"plan":    string(sub.Plan),
		"status":  sub.Status,
	}
	if sub.CurrentPeriodEnd != nil {
		data["current_period_end"] = sub.CurrentPeriodEnd.UTC().Format(time.RFC3339)
	}

	_, _, err := client.From("subscriptions").
		Upsert(data, "user_id", "", "").
		Execute()
	if err != nil {
		return apperrors.NewStorageError("failed to upsert subscription", err)
	}

	r.logger.Info("Subscription saved", "user_id", sub.UserID, "plan", sub.Plan, "status", sub.Status)
	return nil
}
