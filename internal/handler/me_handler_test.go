package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stylesensai-server/internal/domain"
)

func TestMeHandler_Guest(t *testing.T) {
	handler := NewMeHandler(&mockAccessResolver{}, NewMockHandlerLogger())

	// No user in context: guests get a 200 with authenticated:false, not
	// a 401.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	rr := httptest.NewRecorder()

	handler.Me(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var body meResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Authenticated {
		t.Error("expected authenticated false for guest")
	}
	if body.Plan != nil {
		t.Errorf("expected nil plan for guest, got %v", *body.Plan)
	}
}

func TestMeHandler_Authenticated(t *testing.T) {
	access := &mockAccessResolver{
		access: &domain.UserAccess{
			Plan:                  domain.PlanPro,
			Limits:                domain.LimitsFor(domain.PlanPro),
			HasActiveSubscription: true,
			OnboardingComplete:    true,
		},
	}
	handler := NewMeHandler(access, NewMockHandlerLogger())

	req := authedRequest(http.MethodGet, "/api/v1/me", "")
	rr := httptest.NewRecorder()

	handler.Me(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var body meResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Authenticated {
		t.Error("expected authenticated true")
	}
	if body.Plan == nil || *body.Plan != domain.PlanPro {
		t.Errorf("expected pro plan, got %v", body.Plan)
	}
	if body.Limits == nil || body.Limits.DailyWords != 60000 {
		t.Errorf("expected 60000 daily words, got %v", body.Limits)
	}
	if !body.OnboardingComplete {
		t.Error("expected onboarding complete")
	}
}
