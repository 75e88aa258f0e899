package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/timeplan/backend/domain"
	"github.com/timeplan/backend/repository"
)

// Reminder runs a daily morning job that summarizes each opted-in user's
// pending workload. The summary is logged; a notification transport can
// subscribe to these entries downstream.
type Reminder struct {
	users  repository.UserRepository
	tasks  repository.TaskRepository
	goals  repository.GoalRepository
	logger *zap.Logger
	cron   *cron.Cron
	spec   string
}

// NewReminder fails when the configured cron expression does not parse, so
// a typo in REMINDER_CRON surfaces at startup instead of silently disabling
// the job.
func NewReminder(
	users repository.UserRepository,
	tasks repository.TaskRepository,
	goals repository.GoalRepository,
	spec string,
	logger *zap.Logger,
) (*Reminder, error) {
	if spec == "" {
		spec = "0 8 * * *"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Reminder{
		users:  users,
		tasks:  tasks,
		goals:  goals,
		logger: logger,
		cron:   cron.New(),
		spec:   spec,
	}

	if _, err := r.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		r.Run(ctx)
	}); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}
	return r, nil
}

func (r *Reminder) Start() {
	if r == nil || r.cron == nil {
		return
	}
	r.cron.Start()
	r.logger.Info("reminder service started", zap.String("schedule", r.spec))
}

func (r *Reminder) Stop(ctx context.Context) {
	if r == nil || r.cron == nil {
		return
	}
	stopCtx := r.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	r.logger.Info("reminder service stopped")
}

// Run produces one summary per user with reminders enabled.
func (r *Reminder) Run(ctx context.Context) {
	users, err := r.users.ListWithReminders(ctx)
	if err != nil {
		r.logger.Error("failed to list reminder recipients", zap.Error(err))
		return
	}

	for _, user := range users {
		if err := r.summarize(ctx, user); err != nil {
			r.logger.Error("failed to build reminder summary",
				zap.String("user_id", user.ID), zap.Error(err))
		}
	}
}

func (r *Reminder) summarize(ctx context.Context, user domain.User) error {
	pending := false
	tasks, err := r.tasks.List(ctx, repository.TaskFilter{UserID: user.ID, Completed: &pending})
	if err != nil {
		return err
	}

	totalMinutes := 0
	for _, t := range tasks {
		totalMinutes += t.Duration
	}

	overdue := 0
	goals, err := r.goals.List(ctx, repository.GoalFilter{UserID: user.ID, Completed: &pending})
	if err != nil {
		return err
	}
	now := time.Now()
	for i := range goals {
		if goals[i].DaysUntilDeadline(now) < 0 {
			overdue++
		}
	}

	r.logger.Info("daily summary",
		zap.String("user_id", user.ID),
		zap.Int("pending_tasks", len(tasks)),
		zap.Int("planned_minutes", totalMinutes),
		zap.Int("overdue_goals", overdue),
	)
	return nil
}
