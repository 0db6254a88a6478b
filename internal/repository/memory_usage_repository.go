package repository

import (
	"context"
	"sync"

	"stylesensai-server/internal/domain"
	apperrors "stylesensai-server/pkg/errors"
)

// MemoryUsageRepository is an in-process domain.UsageRepository with the
// same atomic-increment contract as the Supabase implementation. Used in
// tests and for local development without a database.
type MemoryUsageRepository struct {
	mu       sync.Mutex
	counters map[string]int
}

var _ domain.UsageRepository = (*MemoryUsageRepository)(nil)

func NewMemoryUsageRepository() *MemoryUsageRepository {
	return &MemoryUsageRepository{
		counters: make(map[string]int),
	}
}

func usageKey(userID, day string) string {
	return userID + "|" + day
}

func (r *MemoryUsageRepository) GetUsage(ctx context.Context, userID, day string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters[usageKey(userID, day)], nil
}

func (r *MemoryUsageRepository) IncrementUsage(ctx context.Context, userID, day string, words int) error {
	if words < 0 {
		return apperrors.NewValidationError("words must be non-negative")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[usageKey(userID, day)] += words
	return nil
}
