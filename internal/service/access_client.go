package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"stylesensai-server/internal/domain"
	apperrors "stylesensai-server/pkg/errors"
)

// RemoteAccessResolver is the restricted AccessResolver implementation for
// callers outside the trust boundary. It has no store access and only calls
// the privileged HTTP surface with the user's bearer token.
type RemoteAccessResolver struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewRemoteAccessResolver(baseURL, token string, timeout time.Duration) *RemoteAccessResolver {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RemoteAccessResolver{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ResolveAccess calls GET /api/v1/me. Any failure, including an
// unauthenticated answer, degrades to free-tier defaults.
func (r *RemoteAccessResolver) ResolveAccess(ctx context.Context, userID string) (*domain.UserAccess, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", r.baseURL+"/api/v1/me", nil)
	if err != nil {
		return domain.FreeAccess(), nil
	}
	r.authorize(req)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return domain.FreeAccess(), nil
	}
	defer resp.Body.Close()

	var body struct {
		Authenticated      bool               `json:"authenticated"`
		OnboardingComplete bool               `json:"onboardingComplete"`
		Plan               *domain.PlanTier   `json:"plan"`
		Limits             *domain.PlanLimits `json:"limits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || !body.Authenticated {
		return domain.FreeAccess(), nil
	}

	plan := domain.PlanFree
	if body.Plan != nil {
		plan = domain.ParsePlan(string(*body.Plan))
	}
	access := &domain.UserAccess{
		Plan:                  plan,
		Limits:                domain.LimitsFor(plan),
		HasActiveSubscription: plan != domain.PlanFree,
		OnboardingComplete:    body.OnboardingComplete,
	}
	if body.Limits != nil {
		access.Limits = *body.Limits
	}
	return access, nil
}

// CheckWordLimit calls POST /api/v1/usage/check.
func (r *RemoteAccessResolver) CheckWordLimit(ctx context.Context, userID string, wordsToAdd int) (*domain.WordLimitResult, error) {
	if wordsToAdd < 0 {
		return nil, apperrors.NewValidationError("wordsToAdd must be non-negative")
	}

	payload, err := json.Marshal(map[string]int{"wordsToAdd": wordsToAdd})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", r.baseURL+"/api/v1/usage/check", bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	r.authorize(req)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewStorageError("usage check request failed", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var result domain.WordLimitResult
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return nil, apperrors.NewStorageError("failed to decode usage check response", err)
		}
		return &result, nil
	case http.StatusUnauthorized:
		return nil, apperrors.NewUnauthorizedError("usage check rejected: not authenticated")
	case http.StatusBadRequest:
		return nil, apperrors.NewValidationError("usage check rejected the request")
	default:
		return nil, apperrors.NewStorageError(fmt.Sprintf("usage check returned status %d", resp.StatusCode), nil)
	}
}

func (r *RemoteAccessResolver) authorize(req *http.Request) {
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
}
