package repository

import (
	"context"

	"github.com/timeplan/backend/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context, userID string) (*domain.Settings, error)
	Save(ctx context.Context, settings *domain.Settings) error
}
