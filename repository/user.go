package repository

import (
	"context"

	"github.com/timeplan/backend/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListWithReminders(ctx context.Context) ([]domain.User, error)
	Upsert(ctx context.Context, user *domain.User) error
}
