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

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation of UserRepository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
	SELECT id, email, name, status, created_at, updated_at
	FROM users
	WHERE id = $1
	`
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListWithReminders returns active users whose settings opt in to task
// reminders, for the daily summary job.
func (r *userRepository) ListWithReminders(ctx context.Context) ([]domain.User, error) {
	const query = `
	SELECT u.id, u.email, u.name, u.status, u.created_at, u.updated_at
	FROM users u
	JOIN settings s ON s.user_id = u.id
	WHERE u.status = 'active' AND s.task_reminders = TRUE
	ORDER BY u.id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Name,
			&user.Status,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	if user == nil {
		return domain.ErrInvalidPayload
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Status == "" {
		user.Status = "active"
	}

	const query = `
	INSERT INTO users (id, email, name, status)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (id) DO UPDATE
	SET email = EXCLUDED.email,
		name = EXCLUDED.name,
		status = EXCLUDED.status,
		updated_at = NOW()
	RETURNING created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.Status,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}
