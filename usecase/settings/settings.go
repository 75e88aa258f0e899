package settings

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/timeplan/backend/domain"
	"github.com/timeplan/backend/planner"
	"github.com/timeplan/backend/repository"
)

type UseCase struct {
	settings repository.SettingsRepository
	cache    repository.ScheduleCache
	logger   *zap.Logger
}

func New(settings repository.SettingsRepository, cache repository.ScheduleCache, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		settings: settings,
		cache:    cache,
		logger:   logger,
	}
}

// Get returns the user's preferences, falling back to defaults for accounts
// that never saved any.
func (uc *UseCase) Get(ctx context.Context, userID string) (*domain.Settings, error) {
	stored, err := uc.settings.Get(ctx, userID)
	if err != nil {
		if err == domain.ErrSettingsNotFound {
			defaults := domain.DefaultSettings(userID)
			return &defaults, nil
		}
		return nil, err
	}
	return stored, nil
}

// Save validates the working window and persists the preferences. A changed
// window makes every cached schedule stale, so the cache is dropped.
func (uc *UseCase) Save(ctx context.Context, settings *domain.Settings) (*domain.Settings, error) {
	if settings == nil || settings.UserID == "" {
		return nil, domain.ErrInvalidPayload
	}
	if _, err := planner.ParseClock(settings.WorkStart); err != nil {
		return nil, err
	}
	if _, err := planner.ParseClock(settings.WorkEnd); err != nil {
		return nil, err
	}
	if settings.BreakDuration <= 0 {
		settings.BreakDuration = domain.DefaultSettings(settings.UserID).BreakDuration
	}
	settings.UpdatedAt = time.Now()

	if err := uc.settings.Save(ctx, settings); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, settings.UserID); err != nil {
			uc.logger.Warn("failed to invalidate schedule cache",
				zap.String("user_id", settings.UserID), zap.Error(err))
		}
	}
	return settings, nil
}
