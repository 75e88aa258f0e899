package analytics

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/timeplan/backend/domain"
	"github.com/timeplan/backend/repository"
)

type UseCase struct {
	analytics repository.AnalyticsRepository
	tasks     repository.TaskRepository
	logger    *zap.Logger
}

func New(analytics repository.AnalyticsRepository, tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		analytics: analytics,
		tasks:     tasks,
		logger:    logger,
	}
}

// Get returns the user's counters, starting from zeros for accounts with no
// recorded activity yet.
func (uc *UseCase) Get(ctx context.Context, userID string) (*domain.Analytics, error) {
	stats, err := uc.analytics.Get(ctx, userID)
	if err != nil {
		if err == domain.ErrAnalyticsNotFound {
			return &domain.Analytics{UserID: userID}, nil
		}
		return nil, err
	}
	return stats, nil
}

// ChartData recomputes the chart series from the user's task list on every
// call: completed tasks bucketed by creation weekday (Monday first) and
// counts per category group. Work and meeting tasks share one group.
func (uc *UseCase) ChartData(ctx context.Context, userID string) (*domain.ChartData, error) {
	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	data := &domain.ChartData{
		Categories: map[string]int{
			"work":     0,
			"personal": 0,
			"study":    0,
			"exercise": 0,
			"creative": 0,
		},
	}

	for _, task := range tasks {
		switch task.Category {
		case domain.CategoryWork, domain.CategoryMeeting:
			data.Categories["work"]++
		case domain.CategoryPersonal:
			data.Categories["personal"]++
		case domain.CategoryStudy:
			data.Categories["study"]++
		case domain.CategoryExercise:
			data.Categories["exercise"]++
		case domain.CategoryCreative:
			data.Categories["creative"]++
		}

		if task.Completed {
			data.WeeklyCompletion[mondayFirst(task.CreatedAt.Weekday())]++
		}
	}
	return data, nil
}

func mondayFirst(day time.Weekday) int {
	if day == time.Sunday {
		return 6
	}
	return int(day) - 1
}
