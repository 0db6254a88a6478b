package service

import (
	"context"
	"fmt"
	"testing"

	"stylesensai-server/internal/domain"
	apperrors "stylesensai-server/pkg/errors"
)

type mockHistoryRepo struct {
	entries map[string]*domain.History
	nextID  int
}

func newMockHistoryRepo() *mockHistoryRepo {
	return &mockHistoryRepo{entries: make(map[string]*domain.History)}
}

func (m *mockHistoryRepo) Save(ctx context.Context, entry *domain.History) (string, error) {
	m.nextID++
	id := fmt.Sprintf("hist-%d", m.nextID)
	stored := *entry
	stored.ID = id
	m.entries[id] = &stored
	return id, nil
}

func (m *mockHistoryRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.History, error) {
	var out []*domain.History
	for _, e := range m.entries {
		if e.UserID == userID && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockHistoryRepo) GetByID(ctx context.Context, userID, id string) (*domain.History, error) {
	e, ok := m.entries[id]
	if !ok || e.UserID != userID {
		return nil, nil
	}
	return e, nil
}

func (m *mockHistoryRepo) Delete(ctx context.Context, userID, id string) error {
	if e, ok := m.entries[id]; ok && e.UserID == userID {
		delete(m.entries, id)
	}
	return nil
}

func TestHistoryService_SaveAndGet(t *testing.T) {
	repo := newMockHistoryRepo()
	svc := NewHistoryService(repo, NewMockLogger())
	ctx := context.Background()

	id, err := svc.Save(ctx, "user-1", &domain.History{
		Tone:       "formal",
		InputText:  "helo world",
		OutputText: "Hello, world.",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if id == "" {
		t.Fatal("Expected non-empty id")
	}

	entry, err := svc.Get(ctx, "user-1", id)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if entry.OutputText != "Hello, world." {
		t.Errorf("Unexpected output text: %s", entry.OutputText)
	}
	if entry.Explanations == nil {
		t.Error("Expected explanations to default to empty slice")
	}
}

func TestHistoryService_Save_Validation(t *testing.T) {
	svc := NewHistoryService(newMockHistoryRepo(), NewMockLogger())

	_, err := svc.Save(context.Background(), "user-1", &domain.History{InputText: " ", OutputText: "x"})
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestHistoryService_OwnerScoping(t *testing.T) {
	repo := newMockHistoryRepo()
	svc := NewHistoryService(repo, NewMockLogger())
	ctx := context.Background()

	id, err := svc.Save(ctx, "user-1", &domain.History{InputText: "a", OutputText: "b"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Another user cannot read the entry; they get not-found, not a leak.
	_, err = svc.Get(ctx, "user-2", id)
	if err == nil {
		t.Fatal("Expected not-found for other user's entry")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		t.Errorf("Expected not-found error, got %v", err)
	}

	// Another user's delete is a no-op.
	if err := svc.Delete(ctx, "user-2", id); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := svc.Get(ctx, "user-1", id); err != nil {
		t.Fatalf("Expected owner's entry to survive, got %v", err)
	}
}
