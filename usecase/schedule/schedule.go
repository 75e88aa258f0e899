package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/timeplan/backend/domain"
	"github.com/timeplan/backend/planner"
	"github.com/timeplan/backend/repository"
)

type UseCase struct {
	tasks    repository.TaskRepository
	settings repository.SettingsRepository
	cache    repository.ScheduleCache
	logger   *zap.Logger
}

func New(
	tasks repository.TaskRepository,
	settings repository.SettingsRepository,
	cache repository.ScheduleCache,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:    tasks,
		settings: settings,
		cache:    cache,
		logger:   logger,
	}
}

// Generate builds a fresh schedule for the requested horizon from the user's
// current tasks and preferences, then caches it for subsequent reads.
func (uc *UseCase) Generate(ctx context.Context, userID string, horizon domain.Horizon) (*domain.Schedule, error) {
	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	settings, err := uc.loadSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	generated := planner.Generate(horizon, tasks, settings, time.Now())

	if uc.cache != nil {
		if err := uc.cache.Save(ctx, userID, &generated); err != nil {
			uc.logger.Warn("failed to cache schedule", zap.String("user_id", userID), zap.Error(err))
		}
	}
	return &generated, nil
}

// Get returns the cached schedule for the horizon, regenerating when the
// cache has nothing.
func (uc *UseCase) Get(ctx context.Context, userID string, horizon domain.Horizon) (*domain.Schedule, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, userID, horizon)
		if err == nil {
			return cached, nil
		}
		if err != domain.ErrScheduleNotFound {
			uc.logger.Warn("schedule cache read failed", zap.String("user_id", userID), zap.Error(err))
		}
	}
	return uc.Generate(ctx, userID, horizon)
}

// Export renders the horizon's schedule as plain text for download.
func (uc *UseCase) Export(ctx context.Context, userID string, horizon domain.Horizon) (string, error) {
	generated, err := uc.Get(ctx, userID, horizon)
	if err != nil {
		return "", err
	}
	return planner.ExportText(*generated), nil
}

func (uc *UseCase) loadSettings(ctx context.Context, userID string) (domain.Settings, error) {
	stored, err := uc.settings.Get(ctx, userID)
	if err != nil {
		if err == domain.ErrSettingsNotFound {
			return domain.DefaultSettings(userID), nil
		}
		return domain.Settings{}, err
	}
	return *stored, nil
}
