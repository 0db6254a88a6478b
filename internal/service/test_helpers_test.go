package service

import (
	"context"
	"sync"

	"stylesensai-server/internal/domain"
	apperrors "stylesensai-server/pkg/errors"
)

// Mock logger used by service package tests.
type MockLogger struct{}

func NewMockLogger() domain.Logger {
	return &MockLogger{}
}

func (l *MockLogger) Info(msg string, fields ...interface{})             {}
func (l *MockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockLogger) Warn(msg string, fields ...interface{})             {}

type mockSubscriptionRepo struct {
	subs map[string]*domain.Subscription
	err  error
}

func newMockSubscriptionRepo() *mockSubscriptionRepo {
	return &mockSubscriptionRepo{subs: make(map[string]*domain.Subscription)}
}

func (m *mockSubscriptionRepo) GetActive(ctx context.Context, userID string) (*domain.Subscription, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.subs[userID], nil
}

func (m *mockSubscriptionRepo) Upsert(ctx context.Context, sub *domain.Subscription) error {
	if m.err != nil {
		return m.err
	}
	m.subs[sub.UserID] = sub
	return nil
}

type mockProfileRepo struct {
	profiles map[string]*domain.Profile
	err      error
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func (m *mockProfileRepo) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.profiles[userID], nil
}

func (m *mockProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.profiles[profile.UserID] = profile
	return nil
}

// mockUsageRepo counts calls so tests can assert no storage I/O happened.
type mockUsageRepo struct {
	mu             sync.Mutex
	counters       map[string]int
	getErr         error
	incrementErr   error
	getCalls       int
	incrementCalls int
}

func newMockUsageRepo() *mockUsageRepo {
	return &mockUsageRepo{counters: make(map[string]int)}
}

func (m *mockUsageRepo) GetUsage(ctx context.Context, userID, day string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.getErr != nil {
		return 0, m.getErr
	}
	return m.counters[userID+"|"+day], nil
}

func (m *mockUsageRepo) IncrementUsage(ctx context.Context, userID, day string, words int) error {
	if words < 0 {
		return apperrors.NewValidationError("words must be non-negative")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.incrementCalls++
	if m.incrementErr != nil {
		return m.incrementErr
	}
	m.counters[userID+"|"+day] += words
	return nil
}
