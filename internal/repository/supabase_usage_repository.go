package repository

import (
	"context"
	"encoding/json"

	"stylesensai-server/internal/domain"
	apperrors "stylesensai-server/pkg/errors"
)

// SupabaseUsageRepository implements domain.UsageRepository against the
// usage_counters table. Increments go through the increment_words_used
// Postgres function so two concurrent increments for the same user/day both
// land in the final total; there is no read-then-write window on this path.
//
// create or replace function increment_words_used(p_user_id uuid, p_date date, p_words int)
// returns void as $$
//   insert into usage_counters (user_id, date, words_used)
//   values (p_user_id, p_date, p_words)
//   on conflict (user_id, date)
//   do update set words_used = usage_counters.words_used + excluded.words_used;
// $$ language sql;
type SupabaseUsageRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewSupabaseUsageRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.UsageRepository {
	return &SupabaseUsageRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// GetUsage returns words used for the given day. A missing row is zero.
func (r *SupabaseUsageRepository) GetUsage(ctx context.Context, userID, day string) (int, error) {
	client := r.supabaseClient.Admin()
	if client == nil {
		return 0, apperrors.NewStorageError("supabase client not initialized", nil)
	}

	data, _, err := client.From("usage_counters").
		Select("words_used", "", false).
		Eq("user_id", userID).
		Eq("date", day).
		Limit(1, "").
		Execute()
	if err != nil {
		return 0, apperrors.NewStorageError("failed to get usage", err)
	}

	var rows []struct {
		WordsUsed int `json:"words_used"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return 0, apperrors.NewStorageError("failed to unmarshal usage", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].WordsUsed, nil
}

// IncrementUsage atomically adds words to the (userID, day) counter,
// creating the row on first use.
func (r *SupabaseUsageRepository) IncrementUsage(ctx context.Context, userID, day string, words int) error {
	if words < 0 {
		return apperrors.NewValidationError("words must be non-negative")
	}

	client := r.supabaseClient.Admin()
	if client == nil {
		return apperrors.NewStorageError("supabase client not initialized", nil)
	}

	params := map[string]interface{}{
		"p_user_id": userID,
		"p_date":    day,
		"p_words":   words,
	}

	// Rpc returns the raw response body; postgrest surfaces errors as an
	// empty or error-shaped body rather than a Go error in this client
	// version.
	resp := client.Rpc("increment_words_used", "", params)
	if resp != "" && resp != "null" {
		var rpcErr struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal([]byte(resp), &rpcErr); err == nil && rpcErr.Message != "" {
			return apperrors.NewStorageError("failed to increment usage: "+rpcErr.Message, nil)
		}
	}

	r.logger.Debug("Usage incremented", "user_id", userID, "date", day, "words", words)
	return nil
}
