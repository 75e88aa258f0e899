package tips

import (
	"context"

	"go.uber.org/zap"

	"github.com/timeplan/backend/planner"
	"github.com/timeplan/backend/repository"
)

// Bundle is what the tips endpoint returns: two random tips, a quote and a
// behavioral observation derived from the user's task history.
type Bundle struct {
	Productivity string `json:"productivity"`
	Wellness     string `json:"wellness"`
	Quote        string `json:"quote"`
	Insight      string `json:"insight"`
}

type UseCase struct {
	tasks  repository.TaskRepository
	picker *planner.TipPicker
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, picker *planner.TipPicker, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if picker == nil {
		picker = planner.NewTipPicker(nil)
	}
	return &UseCase{
		tasks:  tasks,
		picker: picker,
		logger: logger,
	}
}

func (uc *UseCase) Bundle(ctx context.Context, userID string) (*Bundle, error) {
	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	return &Bundle{
		Productivity: uc.picker.Productivity(),
		Wellness:     uc.picker.Wellness(),
		Quote:        uc.picker.Quote(),
		Insight:      uc.picker.BehaviorInsight(tasks),
	}, nil
}
