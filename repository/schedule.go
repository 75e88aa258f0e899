package repository

import (
	"context"

	"github.com/timeplan/backend/domain"
)

// ScheduleCache stores the most recently generated schedule per user and
// horizon. A schedule is a derived view, so every save replaces the prior
// entry wholesale.
type ScheduleCache interface {
	Get(ctx context.Context, userID string, horizon domain.Horizon) (*domain.Schedule, error)
	Save(ctx context.Context, userID string, schedule *domain.Schedule) error
	Invalidate(ctx context.Context, userID string) error
}
