package domain

import (
	"context"
	"time"
)

// UsageCounter tracks word consumption for a single user on a single
// UTC calendar day. Exactly one row exists per (user_id, date) and
// words_used never decreases within a day.
type UsageCounter struct {
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
	WordsUsed int    `json:"words_used"`
}

// UsageDay returns the ledger day key for t. Daily quotas reset at UTC
// midnight; every caller must derive day keys through this helper.
func UsageDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// UsageRepository is the durable per-user per-day word ledger.
type UsageRepository interface {
	// GetUsage returns words used for the day. A missing row is zero,
	// not an error.
	GetUsage(ctx context.Context, userID, day string) (int, error)
	// IncrementUsage adds words to the day's counter as a single atomic
	// upsert: concurrent increments for the same user/day must all be
	// reflected in the final total.
	IncrementUsage(ctx context.Context, userID, day string, words int) error
}
