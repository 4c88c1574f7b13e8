package services

import (
	"fmt"

	"repair_shop_backend/internal/models"
	"repair_shop_backend/internal/repositories"
)

// --- HistoryService Interface ---
type HistoryService interface {
	GetHistory() ([]models.HistoryEvent, error)
}

type historyService struct {
	historyRepo repositories.HistoryRepository
}

// NewHistoryService creates a new instance of HistoryService.
func NewHistoryService(repo repositories.HistoryRepository) HistoryService {
	return &historyService{historyRepo: repo}
}

func (s *historyService) GetHistory() ([]models.HistoryEvent, error) {
	events, err := s.historyRepo.GetHistory()
	if err != nil {
		return nil, fmt.Errorf("failed to get history feed: %w", err)
	}
	return events, nil
}
