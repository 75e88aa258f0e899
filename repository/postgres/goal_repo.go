package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/timeplan/backend/domain"
	"github.com/timeplan/backend/repository"
)

type goalRepository struct {
	pool *pgxpool.Pool
}

// NewGoalRepository returns a Postgres-backed implementation of GoalRepository.
// Milestones are persisted as a JSONB column alongside the goal row.
func NewGoalRepository(pool *pgxpool.Pool) repository.GoalRepository {
	return &goalRepository{pool: pool}
}

func (r *goalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	const query = `
	SELECT id, user_id, title, category, deadline, progress, completed, milestones, created_at, updated_at
	FROM goals
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanGoal(row)
}

func (r *goalRepository) List(ctx context.Context, filter repository.GoalFilter) ([]domain.Goal, error) {
	const query = `
	SELECT id, user_id, title, category, deadline, progress, completed, milestones, created_at, updated_at
	FROM goals
	WHERE ($1 = '' OR user_id = $1)
	  AND ($2::boolean IS NULL OR completed = $2)
	ORDER BY deadline ASC
	LIMIT $3 OFFSET $4
	`
	rows, err := r.pool.Query(ctx, query, filter.UserID, filter.Completed, clampLimit(filter.Limit), filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *goal)
	}
	return goals, rows.Err()
}

func (r *goalRepository) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	if goal == nil {
		return nil, domain.ErrInvalidPayload
	}
	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO goals (id, user_id, title, category, deadline, progress, completed, milestones)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		goal.ID,
		goal.UserID,
		goal.Title,
		string(goal.Category),
		goal.Deadline,
		goal.Progress,
		goal.Completed,
		marshalMilestones(goal.Milestones),
	).Scan(&goal.CreatedAt, &goal.UpdatedAt); err != nil {
		return nil, err
	}

	return goal, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	if goal == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE goals
	SET title = $2,
		category = $3,
		deadline = $4,
		progress = $5,
		completed = $6,
		milestones = $7,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		goal.ID,
		goal.Title,
		string(goal.Category),
		goal.Deadline,
		goal.Progress,
		goal.Completed,
		marshalMilestones(goal.Milestones),
	).Scan(&goal.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrGoalNotFound
		}
		return err
	}

	return nil
}

func (r *goalRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM goals WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

func scanGoal(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Goal, error) {
	var goal domain.Goal
	var category string
	var milestones []byte

	if err := row.Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Title,
		&category,
		&goal.Deadline,
		&goal.Progress,
		&goal.Completed,
		&milestones,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}

	goal.Category = domain.GoalCategory(category)
	goal.Milestones = unmarshalMilestones(milestones)
	return &goal, nil
}
