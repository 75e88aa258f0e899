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

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	const query = `
	SELECT id, user_id, title, priority, duration, category, completed, created_at, updated_at
	FROM tasks
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanTask(row)
}

func (r *taskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	const query = `
	SELECT id, user_id, title, priority, duration, category, completed, created_at, updated_at
	FROM tasks
	WHERE ($1 = '' OR user_id = $1)
	  AND ($2::boolean IS NULL OR completed = $2)
	  AND ($3 = '' OR category = $3)
	ORDER BY created_at ASC
	LIMIT $4 OFFSET $5
	`
	rows, err := r.pool.Query(ctx, query,
		filter.UserID,
		filter.Completed,
		string(filter.Category),
		clampLimit(filter.Limit),
		filter.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO tasks (id, user_id, title, priority, duration, category, completed)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		string(task.Priority),
		task.Duration,
		string(task.Category),
		task.Completed,
	).Scan(&task.CreatedAt, &task.UpdatedAt); err != nil {
		return nil, err
	}

	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE tasks
	SET title = $2,
		priority = $3,
		duration = $4,
		category = $5,
		completed = $6,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.Title,
		string(task.Priority),
		task.Duration,
		string(task.Category),
		task.Completed,
	).Scan(&task.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		return err
	}

	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) DeleteIncomplete(ctx context.Context, userID string) (int, error) {
	const query = `DELETE FROM tasks WHERE user_id = $1 AND completed = FALSE`
	tag, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func scanTask(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Task, error) {
	var task domain.Task
	var priority, category string

	if err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&priority,
		&task.Duration,
		&category,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task.Priority = domain.Priority(priority)
	task.Category = domain.Category(category)
	return &task, nil
}
