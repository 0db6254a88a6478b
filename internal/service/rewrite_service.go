package service

import (
	"context"
	"strings"
	"time"

	"stylesensai-server/internal/domain"
	"stylesensai-server/internal/provider"
	apperrors "stylesensai-server/pkg/errors"
)

// rewriteService runs the gated transform flow. The ordering is a hard
// invariant: check the word limit, call the provider only if allowed, and
// increment the ledger only after a successful response with the word count
// actually consumed. A failed provider call never charges the user; a failed
// increment after a delivered rewrite never fails the response.
type rewriteService struct {
	access    domain.AccessResolver
	usageRepo domain.UsageRepository
	providers *provider.Registry
	logger    domain.Logger
	timeout   time.Duration

	now func() time.Time
}

func NewRewriteService(
	access domain.AccessResolver,
	usageRepo domain.UsageRepository,
	providers *provider.Registry,
	logger domain.Logger,
	timeout time.Duration,
) domain.RewriteService {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &rewriteService{
		access:    access,
		usageRepo: usageRepo,
		providers: providers,
		logger:    logger,
		timeout:   timeout,
		now:       time.Now,
	}
}

// CountWords returns the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(strings.TrimSpace(text)))
}

func (s *rewriteService) Rewrite(ctx context.Context, userID string, req domain.RewriteRequest) (*domain.RewriteResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperrors.NewValidationError("text is required")
	}
	if strings.TrimSpace(req.Style) == "" {
		return nil, apperrors.NewValidationError("style is required")
	}

	aiProvider, ok := s.providers.Get(req.Provider)
	if !ok {
		return nil, apperrors.NewValidationError("unknown provider", req.Provider)
	}

	wordCount := CountWords(req.Text)

	limit, err := s.access.CheckWordLimit(ctx, userID, wordCount)
	if err != nil {
		return nil, err
	}
	if !limit.Allowed {
		return nil, apperrors.NewQuotaError(limit.Remaining)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := aiProvider.Rewrite(callCtx, SystemPrompt, BuildUserPrompt(req.Text, req.Style))
	if err != nil {
		// No charge for failed work.
		return nil, apperrors.NewUpstreamError("AI provider call failed", err)
	}

	today := domain.UsageDay(s.now())
	if err := s.usageRepo.IncrementUsage(ctx, userID, today, wordCount); err != nil {
		// The user already has their rewrite; usage-not-recorded is an
		// accepted soft failure.
		s.logger.Error("Failed to record usage after rewrite", err, "user_id", userID, "words", wordCount)
	}

	return result, nil
}
