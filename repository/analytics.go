package repository

import (
	"context"

	"github.com/timeplan/backend/domain"
)

// AnalyticsDelta carries counter increments applied atomically to a user's
// analytics row.
type AnalyticsDelta struct {
	TasksCompleted  int
	ProductiveHours float64
	StreakDays      int
	GoalsAchieved   int
}

type AnalyticsRepository interface {
	Get(ctx context.Context, userID string) (*domain.Analytics, error)
	Apply(ctx context.Context, userID string, delta AnalyticsDelta) (*domain.Analytics, error)
}
