package domain

import (
	"context"
	"time"
)

// History is one saved rewrite analysis.
type History struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Tone         string    `json:"tone"`
	InputText    string    `json:"input_text"`
	OutputText   string    `json:"output_text"`
	Explanations []string  `json:"explanations"`
	CreatedAt    time.Time `json:"created_at"`
}

type HistoryRepository interface {
	Save(ctx context.Context, entry *History) (string, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*History, error)
	// GetByID returns nil, nil when no row matches the id for this user.
	GetByID(ctx context.Context, userID, id string) (*History, error)
	Delete(ctx context.Context, userID, id string) error
}
