package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/timeplan/backend/domain"
	"github.com/timeplan/backend/repository"
)

type settingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository returns a Postgres-backed SettingsRepository.
func NewSettingsRepository(pool *pgxpool.Pool) repository.SettingsRepository {
	return &settingsRepository{pool: pool}
}

func (r *settingsRepository) Get(ctx context.Context, userID string) (*domain.Settings, error) {
	const query = `
	SELECT user_id, work_start, work_end, auto_breaks, break_duration, task_reminders, goal_reminders, updated_at
	FROM settings
	WHERE user_id = $1
	`
	var s domain.Settings
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&s.UserID,
		&s.WorkStart,
		&s.WorkEnd,
		&s.AutoBreaks,
		&s.BreakDuration,
		&s.TaskReminders,
		&s.GoalReminders,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	if settings == nil || settings.UserID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO settings (user_id, work_start, work_end, auto_breaks, break_duration, task_reminders, goal_reminders)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (user_id) DO UPDATE
	SET work_start = EXCLUDED.work_start,
		work_end = EXCLUDED.work_end,
		auto_breaks = EXCLUDED.auto_breaks,
		break_duration = EXCLUDED.break_duration,
		task_reminders = EXCLUDED.task_reminders,
		goal_reminders = EXCLUDED.goal_reminders,
		updated_at = NOW()
	RETURNING updated_at
	`
	return r.pool.QueryRow(ctx, query,
		settings.UserID,
		settings.WorkStart,
		settings.WorkEnd,
		settings.AutoBreaks,
		settings.BreakDuration,
		settings.TaskReminders,
		settings.GoalReminders,
	).Scan(&settings.UpdatedAt)
}
