package task

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/timeplan/backend/domain"
	"github.com/timeplan/backend/planner"
	"github.com/timeplan/backend/repository"
	"github.com/timeplan/backend/usecase"
)

type UseCase struct {
	tasks     repository.TaskRepository
	analytics repository.AnalyticsRepository
	cache     repository.ScheduleCache
	buffer    usecase.OperationBuffer
	logger    *zap.Logger
}

func New(
	tasks repository.TaskRepository,
	analytics repository.AnalyticsRepository,
	cache repository.ScheduleCache,
	buffer usecase.OperationBuffer,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:     tasks,
		analytics: analytics,
		cache:     cache,
		buffer:    buffer,
		logger:    logger,
	}
}

func (uc *UseCase) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return uc.tasks.List(ctx, filter)
}

func (uc *UseCase) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, id)
}

// CreateTask fills in any field the client left blank: duration and
// category are inferred from the title, priority from the category.
func (uc *UseCase) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return nil, domain.ErrEmptyTitle
	}

	classification := planner.Classify(task.Title)
	if task.Duration <= 0 {
		task.Duration = classification.Duration
	}
	if !task.Category.Valid() {
		task.Category = classification.Category
	}
	if !task.Priority.Valid() {
		task.Priority = planner.PriorityForCategory(task.Category)
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	task.Completed = false

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationCreate, task) {
			uc.invalidateCache(ctx, task.UserID)
			return task, nil
		}
		return nil, err
	}
	uc.invalidateCache(ctx, created.UserID)
	return created, nil
}

// UpdateTask replaces the task's title and re-infers duration and category
// from it unless the client pinned them explicitly. Priority is left alone.
func (uc *UseCase) UpdateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return nil, domain.ErrEmptyTitle
	}

	if task.Duration <= 0 {
		task.Duration = planner.InferDuration(task.Title)
	}
	if !task.Category.Valid() {
		task.Category = planner.InferCategory(task.Title)
	}
	task.UpdatedAt = time.Now()

	if err := uc.tasks.Update(ctx, task); err != nil {
		if err == domain.ErrTaskNotFound {
			return nil, err
		}
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, task) {
			uc.invalidateCache(ctx, task.UserID)
			return task, nil
		}
		return nil, err
	}
	uc.invalidateCache(ctx, task.UserID)
	return task, nil
}

// ToggleTask flips the completion flag. Completing a task bumps the user's
// analytics counters; unchecking never decrements them.
func (uc *UseCase) ToggleTask(ctx context.Context, id string) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed
	task.UpdatedAt = time.Now()

	if err := uc.tasks.Update(ctx, task); err != nil {
		if !uc.shouldBuffer(ctx, usecase.OperationToggle, task) {
			return nil, err
		}
	}

	if task.Completed && uc.analytics != nil {
		delta := repository.AnalyticsDelta{
			TasksCompleted:  1,
			ProductiveHours: float64(task.Duration) / 60,
		}
		if _, err := uc.analytics.Apply(ctx, task.UserID, delta); err != nil {
			uc.logger.Error("failed to update analytics after completion",
				zap.String("task_id", task.ID), zap.Error(err))
		}
	}

	uc.invalidateCache(ctx, task.UserID)
	return task, nil
}

func (uc *UseCase) DeleteTask(ctx context.Context, id string) error {
	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.tasks.Delete(ctx, id); err != nil {
		if err == domain.ErrTaskNotFound {
			return err
		}
		if uc.shouldBuffer(ctx, usecase.OperationDelete, task) {
			uc.invalidateCache(ctx, task.UserID)
			return nil
		}
		return err
	}
	uc.invalidateCache(ctx, task.UserID)
	return nil
}

// ClearIncomplete removes every pending task and reports how many went away.
// Completed tasks stay so analytics history keeps its source rows.
func (uc *UseCase) ClearIncomplete(ctx context.Context, userID string) (int, error) {
	removed, err := uc.tasks.DeleteIncomplete(ctx, userID)
	if err != nil {
		return 0, err
	}
	uc.invalidateCache(ctx, userID)
	return removed, nil
}

// ExpandTemplate splits a comma-joined template into individual titles and
// creates one classified task per entry.
func (uc *UseCase) ExpandTemplate(ctx context.Context, userID, template string) ([]domain.Task, error) {
	titles := strings.Split(template, ",")
	created := make([]domain.Task, 0, len(titles))

	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		task, err := uc.CreateTask(ctx, &domain.Task{UserID: userID, Title: title})
		if err != nil {
			return created, err
		}
		created = append(created, *task)
	}

	if len(created) == 0 {
		return nil, domain.ErrEmptyTitle
	}
	return created, nil
}

func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, task *domain.Task) bool {
	if uc.buffer == nil {
		return false
	}
	if err := uc.buffer.BufferTask(ctx, operation, task); err != nil {
		uc.logger.Error("failed to buffer task operation", zap.String("operation", operation), zap.Error(err))
		return false
	}
	uc.logger.Warn("task operation buffered", zap.String("operation", operation))
	return true
}

func (uc *UseCase) invalidateCache(ctx context.Context, userID string) {
	if uc.cache == nil || userID == "" {
		return
	}
	if err := uc.cache.Invalidate(ctx, userID); err != nil {
		uc.logger.Warn("failed to invalidate schedule cache", zap.String("user_id", userID), zap.Error(err))
	}
}
