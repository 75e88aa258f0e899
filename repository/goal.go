package repository

import (
	"context"

	"github.com/timeplan/backend/domain"
)

type GoalFilter struct {
	UserID    string
	Completed *bool
	Limit     int
	Offset    int
}

type GoalRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context, filter GoalFilter) ([]domain.Goal, error)
	Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, id string) error
}
