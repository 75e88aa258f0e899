package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/timeplan/backend/domain"
	"github.com/timeplan/backend/repository"
)

type analyticsRepository struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository returns a Postgres-backed AnalyticsRepository.
func NewAnalyticsRepository(pool *pgxpool.Pool) repository.AnalyticsRepository {
	return &analyticsRepository{pool: pool}
}

func (r *analyticsRepository) Get(ctx context.Context, userID string) (*domain.Analytics, error) {
	const query = `
	SELECT user_id, tasks_completed, productive_hours, streak_days, goals_achieved, updated_at
	FROM analytics
	WHERE user_id = $1
	`
	var a domain.Analytics
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&a.UserID,
		&a.TasksCompleted,
		&a.ProductiveHours,
		&a.StreakDays,
		&a.GoalsAchieved,
		&a.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAnalyticsNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Apply upserts the counter row and increments it in a single statement so
// concurrent completions never lose updates.
func (r *analyticsRepository) Apply(ctx context.Context, userID string, delta repository.AnalyticsDelta) (*domain.Analytics, error) {
	if userID == "" {
		return nil, domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO analytics (user_id, tasks_completed, productive_hours, streak_days, goals_achieved)
	VALUES ($1, GREATEST($2, 0), GREATEST($3, 0), GREATEST($4, 0), GREATEST($5, 0))
	ON CONFLICT (user_id) DO UPDATE
	SET tasks_completed = GREATEST(analytics.tasks_completed + $2, 0),
		productive_hours = GREATEST(analytics.productive_hours + $3, 0),
		streak_days = GREATEST(analytics.streak_days + $4, 0),
		goals_achieved = GREATEST(analytics.goals_achieved + $5, 0),
		updated_at = NOW()
	RETURNING user_id, tasks_completed, productive_hours, streak_days, goals_achieved, updated_at
	`
	var a domain.Analytics
	if err := r.pool.QueryRow(ctx, query,
		userID,
		delta.TasksCompleted,
		delta.ProductiveHours,
		delta.StreakDays,
		delta.GoalsAchieved,
	).Scan(
		&a.UserID,
		&a.TasksCompleted,
		&a.ProductiveHours,
		&a.StreakDays,
		&a.GoalsAchieved,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
