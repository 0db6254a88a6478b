package repository

import (
	"context"
	"encoding/json"
	"time"

	"stylesensai-server/internal/domain"
	apperrors "stylesensai-server/pkg/errors"

	"github.com/supabase-community/postgrest-go"
)

// SupabaseHistoryRepository implements domain.HistoryRepository against the
// histories table.
type SupabaseHistoryRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewSupabaseHistoryRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.HistoryRepository {
	return &SupabaseHistoryRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

type historyRow struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	Tone         string   `json:"tone"`
	InputText    string   `json:"input_text"`
	OutputText   string   `json:"output_text"`
	Explanations []string `json:"explanations"`
	CreatedAt    string   `json:"created_at"`
}

func (row *historyRow) toDomain() *domain.History {
	entry := &domain.History{
		ID:           row.ID,
		UserID:       row.UserID,
		Tone:         row.Tone,
		InputText:    row.InputText,
		OutputText:   row.OutputText,
		Explanations: row.Explanations,
	}
	if created, err := time.Parse(time.RFC3339, row.CreatedAt); err == nil {
		entry.CreatedAt = created
	}
	return entry
}

// Save inserts a history entry and returns the generated id.
func (r *SupabaseHistoryRepository) Save(ctx context.Context, entry *domain.History) (string, error) {
	client := r.supabaseClient.Admin()
	if client == nil {
		return "", apperrors.NewStorageError("supabase client not initialized", nil)
	}

	data := map[string]interface{}{
		"user_id":      entry.UserID,
		"tone":         entry.Tone,
		"input_text":   entry.InputText,
		"output_text":  entry.OutputText,
		"explanations": entry.Explanations,
	}

	// PostgREST only returns the inserted row when return=representation is
	// preferred; anything else leaves the body empty and the id unknowable.
	resp, _, err := client.From("histories").Insert(data, false, "", "representation", "").Execute()
	if err != nil {
		return "", apperrors.NewStorageError("failed to save history", err)
	}

	var rows []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp, &rows); err != nil || len(rows) == 0 {
		return "", apperrors.NewStorageError("history saved but id not returned", err)
	}
	return rows[0].ID, nil
}

// ListByUser returns the user's saved analyses, newest first.
func (r *SupabaseHistoryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.History, error) {
	client := r.supabaseClient.Admin()
	if client == nil {
		return nil, apperrors.NewStorageError("supabase client not initialized", nil)
	}

	data, _, err := client.From("histories").
		Select("*", "", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		Execute()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to list history", err)
	}

	var rows []historyRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, apperrors.NewStorageError("failed to unmarshal history", err)
	}

	entries := make([]*domain.History, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].toDomain())
	}
	return entries, nil
}

// GetByID returns one entry scoped to its owner, or nil when absent.
func (r *SupabaseHistoryRepository) GetByID(ctx context.Context, userID, id string) (*domain.History, error) {
	client := r.supabaseClient.Admin()
	if client == nil {
		return nil, apperrors.NewStorageError("supabase client not initialized", nil)
	}

	data, _, err := client.From("histories").
		Select("*", "", false).
		Eq("id", id).
		Eq("user_id", userID).
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to get history entry", err)
	}

	var rows []historyRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, apperrors.NewStorageError("failed to unmarshal history entry", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toDomain(), nil
}

// Delete removes one entry scoped to its owner.
func (r *SupabaseHistoryRepository) Delete(ctx context.Context, userID, id string) error {
	client := r.supabaseClient.Admin()
	if client == nil {
		return apperrors.NewStorageError("supabase client not initialized", nil)
	}

	_, _, err := client.From("histories").
		Delete("", "").
		Eq("id", id).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return apperrors.NewStorageError("failed to delete history entry", err)
	}
	return nil
}
