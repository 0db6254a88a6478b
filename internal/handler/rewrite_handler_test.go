package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stylesensai-server/internal/domain"
	apperrors "stylesensai-server/pkg/errors"
)

type mockRewriteService struct {
	resp *domain.RewriteResponse
	err  error
}

func (m *mockRewriteService) Rewrite(ctx context.Context, userID string, req domain.RewriteRequest) (*domain.RewriteResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func TestRewriteHandler_Success(t *testing.T) {
	svc := &mockRewriteService{
		resp: &domain.RewriteResponse{
			CorrectedText: "Hello, world.",
			Suggestions: []domain.Suggestion{
				{Original: "helo", Suggestion: "Hello", Explanation: "Spelling"},
			},
		},
	}
	handler := NewRewriteHandler(svc, NewMockHandlerLogger())

	req := authedRequest(http.MethodPost, "/api/v1/rewrite", `{"text":"helo world","style":"formal"}`)
	rr := httptest.NewRecorder()

	handler.Rewrite(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var body domain.RewriteResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.CorrectedText != "Hello, world." {
		t.Errorf("unexpected corrected text: %s", body.CorrectedText)
	}
	if len(body.Suggestions) != 1 {
		t.Errorf("expected 1 suggestion, got %d", len(body.Suggestions))
	}
}

func TestRewriteHandler_MissingFields(t *testing.T) {
	handler := NewRewriteHandler(&mockRewriteService{}, NewMockHandlerLogger())

	cases := []string{
		`{"style":"formal"}`,
		`{"text":"hello"}`,
		`{"text":"  ","style":"formal"}`,
	}

	for _, body := range cases {
		req := authedRequest(http.MethodPost, "/api/v1/rewrite", body)
		rr := httptest.NewRecorder()

		handler.Rewrite(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected status %d, got %d", body, http.StatusBadRequest, rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "Missing text or style") {
			t.Errorf("body %q: unexpected response body: %s", body, rr.Body.String())
		}
	}
}

func TestRewriteHandler_QuotaExceeded(t *testing.T) {
	svc := &mockRewriteService{err: apperrors.NewQuotaError(7)}
	handler := NewRewriteHandler(svc, NewMockHandlerLogger())

	req := authedRequest(http.MethodPost, "/api/v1/rewrite", `{"text":"hello world","style":"formal"}`)
	rr := httptest.NewRecorder()

	handler.Rewrite(rr, req)

	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status %d, got %d", http.StatusTooManyRequests, rr.Code)
	}

	var body struct {
		Error     string `json:"error"`
		Remaining int    `json:"remaining"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Remaining != 7 {
		t.Errorf("expected remaining 7 in quota response, got %d", body.Remaining)
	}
}

func TestRewriteHandler_UpstreamFailure(t *testing.T) {
	svc := &mockRewriteService{err: apperrors.NewUpstreamError("AI provider call failed", nil)}
	handler := NewRewriteHandler(svc, NewMockHandlerLogger())

	req := authedRequest(http.MethodPost, "/api/v1/rewrite", `{"text":"hello world","style":"formal"}`)
	rr := httptest.NewRecorder()

	handler.Rewrite(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, rr.Code)
	}
}
