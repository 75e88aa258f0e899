package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/timeplan/backend/domain"
	"github.com/timeplan/backend/repository"
)

type fakeUserRepo struct {
	users []domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) ListWithReminders(_ context.Context) ([]domain.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) Upsert(_ context.Context, _ *domain.User) error { return nil }

type fakeTaskRepo struct {
	tasks []domain.Task
}

func (f *fakeTaskRepo) GetByID(_ context.Context, _ string) (*domain.Task, error) {
	return nil, domain.ErrTaskNotFound
}

func (f *fakeTaskRepo) List(_ context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range f.tasks {
		if filter.UserID != "" && t.UserID != filter.UserID {
			continue
		}
		if filter.Completed != nil && t.Completed != *filter.Completed {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	return task, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, _ *domain.Task) error { return nil }
func (f *fakeTaskRepo) Delete(_ context.Context, _ string) error      { return nil }
func (f *fakeTaskRepo) DeleteIncomplete(_ context.Context, _ string) (int, error) {
	return 0, nil
}

type fakeGoalRepo struct {
	goals []domain.Goal
}

func (f *fakeGoalRepo) GetByID(_ context.Context, _ string) (*domain.Goal, error) {
	return nil, domain.ErrGoalNotFound
}

func (f *fakeGoalRepo) List(_ context.Context, filter repository.GoalFilter) ([]domain.Goal, error) {
	var out []domain.Goal
	for _, g := range f.goals {
		if filter.UserID != "" && g.UserID != filter.UserID {
			continue
		}
		if filter.Completed != nil && g.Completed != *filter.Completed {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGoalRepo) Create(_ context.Context, goal *domain.Goal) (*domain.Goal, error) {
	return goal, nil
}

func (f *fakeGoalRepo) Update(_ context.Context, _ *domain.Goal) error { return nil }
func (f *fakeGoalRepo) Delete(_ context.Context, _ string) error      { return nil }

func TestNewReminderRejectsInvalidSchedule(t *testing.T) {
	_, err := NewReminder(&fakeUserRepo{}, &fakeTaskRepo{}, &fakeGoalRepo{}, "every morning", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reminder schedule")
}

func TestNewReminderDefaultsSchedule(t *testing.T) {
	r, err := NewReminder(&fakeUserRepo{}, &fakeTaskRepo{}, &fakeGoalRepo{}, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "0 8 * * *", r.spec)
}

func TestReminderRunSummarizesOptedInUsers(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	users := &fakeUserRepo{users: []domain.User{{ID: "u1", Status: "active"}}}
	tasks := &fakeTaskRepo{tasks: []domain.Task{
		{ID: "t1", UserID: "u1", Duration: 45},
		{ID: "t2", UserID: "u1", Duration: 30},
		{ID: "t3", UserID: "u1", Duration: 60, Completed: true},
		{ID: "t4", UserID: "other", Duration: 90},
	}}
	goals := &fakeGoalRepo{goals: []domain.Goal{
		{ID: "g1", UserID: "u1", Deadline: time.Now().Add(-48 * time.Hour)},
		{ID: "g2", UserID: "u1", Deadline: time.Now().Add(72 * time.Hour)},
	}}

	r, err := NewReminder(users, tasks, goals, "0 8 * * *", zap.New(core))
	require.NoError(t, err)

	r.Run(context.Background())

	entries := logs.FilterMessage("daily summary").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "u1", fields["user_id"])
	assert.EqualValues(t, 2, fields["pending_tasks"])
	assert.EqualValues(t, 75, fields["planned_minutes"])
	assert.EqualValues(t, 1, fields["overdue_goals"])
}
