package service

import (
	"context"
	"strings"

	"stylesensai-server/internal/domain"
	apperrors "stylesensai-server/pkg/errors"
)

const historyListLimit = 20

// historyService wraps the history repository with validation and owner
// scoping.
type historyService struct {
	historyRepo domain.HistoryRepository
	logger      domain.Logger
}

type HistoryService interface {
	Save(ctx context.Context, userID string, entry *domain.History) (string, error)
	List(ctx context.Context, userID string) ([]*domain.History, error)
	Get(ctx context.Context, userID, id string) (*domain.History, error)
	Delete(ctx context.Context, userID, id string) error
}

func NewHistoryService(historyRepo domain.HistoryRepository, logger domain.Logger) HistoryService {
	return &historyService{
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (s *historyService) Save(ctx context.Context, userID string, entry *domain.History) (string, error) {
	if strings.TrimSpace(entry.InputText) == "" || strings.TrimSpace(entry.OutputText) == "" {
		return "", apperrors.NewValidationError("input and output text are required")
	}
	entry.UserID = userID
	if entry.Explanations == nil {
		entry.Explanations = []string{}
	}
	return s.historyRepo.Save(ctx, entry)
}

func (s *historyService) List(ctx context.Context, userID string) ([]*domain.History, error) {
	return s.historyRepo.ListByUser(ctx, userID, historyListLimit)
}

func (s *historyService) Get(ctx context.Context, userID, id string) (*domain.History, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("id is required")
	}
	entry, err := s.historyRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperrors.NewNotFoundError("history entry not found")
	}
	return entry, nil
}

func (s *historyService) Delete(ctx context.Context, userID, id string) error {
	if id == "" {
		return apperrors.NewValidationError("id is required")
	}
	return s.historyRepo.Delete(ctx, userID, id)
}
