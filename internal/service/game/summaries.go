package game

import (
	"context"

	"elephant_backend/internal/model"
)

const (
	defaultSummaryLimit = 30
	maxSummaryLimit     = 100
)

// RecentSummaries - последние сохраненные итоги сессий
func (s *serv) RecentSummaries(ctx context.Context, limit int) ([]model.SummaryRecord, error) {
	if limit < 1 {
		limit = defaultSummaryLimit
	}
	if limit > maxSummaryLimit {
		limit = maxSummaryLimit
	}

	return s.summaryRepo.ListRecent(ctx, limit)
}
