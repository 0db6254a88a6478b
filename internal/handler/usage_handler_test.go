package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"stylesensai-server/internal/domain"
	apperrors "stylesensai-server/pkg/errors"
)

type mockAccessResolver struct {
	access *domain.UserAccess
	result *domain.WordLimitResult
	err    error
}

func (m *mockAccessResolver) ResolveAccess(ctx context.Context, userID string) (*domain.UserAccess, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.access == nil {
		return domain.FreeAccess(), nil
	}
	return m.access, nil
}

func (m *mockAccessResolver) CheckWordLimit(ctx context.Context, userID string, wordsToAdd int) (*domain.WordLimitResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type mockHandlerUsageRepo struct {
	mu       sync.Mutex
	counters map[string]int
	err      error
}

func newMockHandlerUsageRepo() *mockHandlerUsageRepo {
	return &mockHandlerUsageRepo{counters: make(map[string]int)}
}

func (m *mockHandlerUsageRepo) GetUsage(ctx context.Context, userID, day string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return m.counters[userID+"|"+day], nil
}

func (m *mockHandlerUsageRepo) IncrementUsage(ctx context.Context, userID, day string, words int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.counters[userID+"|"+day] += words
	return nil
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(req.Context(), userContextKey, &domain.SupabaseUser{ID: "user-1", Email: "test@example.com"})
	ctx = domain.WithAccessToken(ctx, "good")
	return req.WithContext(ctx)
}

func TestUsageHandler_Check(t *testing.T) {
	access := &mockAccessResolver{result: &domain.WordLimitResult{Allowed: true, Remaining: 1400}}
	handler := NewUsageHandler(access, newMockHandlerUsageRepo(), NewMockHandlerLogger())

	req := authedRequest(http.MethodPost, "/api/v1/usage/check", `{"wordsToAdd":100}`)
	rr := httptest.NewRecorder()

	handler.Check(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var result domain.WordLimitResult
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !result.Allowed {
		t.Error("expected allowed")
	}
	if result.Remaining != 1400 {
		t.Errorf("expected remaining 1400, got %d", result.Remaining)
	}
}

func TestUsageHandler_Check_BadInput(t *testing.T) {
	access := &mockAccessResolver{result: &domain.WordLimitResult{Allowed: true, Remaining: 1500}}
	handler := NewUsageHandler(access, newMockHandlerUsageRepo(), NewMockHandlerLogger())

	cases := []string{
		``,                     // empty body
		`{}`,                   // missing field
		`{"wordsToAdd":-5}`,    // negative
		`{"wordsToAdd":"ten"}`, // wrong type
	}

	for _, body := range cases {
		req := authedRequest(http.MethodPost, "/api/v1/usage/check", body)
		rr := httptest.NewRecorder()

		handler.Check(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected status %d, got %d", body, http.StatusBadRequest, rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "Invalid wordsToAdd parameter") {
			t.Errorf("body %q: unexpected response body: %s", body, rr.Body.String())
		}
	}
}

func TestUsageHandler_Check_Unauthenticated(t *testing.T) {
	access := &mockAccessResolver{result: &domain.WordLimitResult{Allowed: true, Remaining: 1500}}
	handler := NewUsageHandler(access, newMockHandlerUsageRepo(), NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/usage/check", strings.NewReader(`{"wordsToAdd":100}`))
	rr := httptest.NewRecorder()

	handler.Check(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestUsageHandler_Check_StorageError(t *testing.T) {
	access := &mockAccessResolver{err: apperrors.NewStorageError("usage check request failed", nil)}
	handler := NewUsageHandler(access, newMockHandlerUsageRepo(), NewMockHandlerLogger())

	req := authedRequest(http.MethodPost, "/api/v1/usage/check", `{"wordsToAdd":100}`)
	rr := httptest.NewRecorder()

	handler.Check(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rr.Code)
	}
}

func TestUsageHandler_Increment(t *testing.T) {
	usageRepo := newMockHandlerUsageRepo()
	handler := NewUsageHandler(&mockAccessResolver{}, usageRepo, NewMockHandlerLogger())

	req := authedRequest(http.MethodPost, "/api/v1/usage/increment", `{"wordsUsed":250}`)
	rr := httptest.NewRecorder()

	handler.Increment(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"success":true`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}

	total := 0
	for _, v := range usageRepo.counters {
		total += v
	}
	if total != 250 {
		t.Errorf("expected 250 words recorded, got %d", total)
	}
}

func TestUsageHandler_Increment_BadInput(t *testing.T) {
	handler := NewUsageHandler(&mockAccessResolver{}, newMockHandlerUsageRepo(), NewMockHandlerLogger())

	cases := []string{
		`{}`,
		`{"wordsUsed":-1}`,
	}

	for _, body := range cases {
		req := authedRequest(http.MethodPost, "/api/v1/usage/increment", body)
		rr := httptest.NewRecorder()

		handler.Increment(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected status %d, got %d", body, http.StatusBadRequest, rr.Code)
		}
	}
}
