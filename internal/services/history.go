package services

import (
	"context"
	"fmt"
	"time"

	"gameonbaby/internal/domain"
)

type historyService struct {
	historyRepo    domain.HistoryRepository
	contextTimeout time.Duration
}

func NewHistoryService(historyRepo domain.HistoryRepository, timeout time.Duration) domain.HistoryService {
	return &historyService{historyRepo: historyRepo, contextTimeout: timeout}
}

func (s *historyService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.HistoryEntry, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	entries, total, err := s.historyRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list history: %w", err)
	}
	if entries == nil {
		entries = []*domain.HistoryEntry{}
	}
	return entries, total, nil
}
