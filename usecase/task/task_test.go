package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeplan/backend/domain"
	"github.com/timeplan/backend/repository"
)

type fakeTaskRepo struct {
	tasks map[string]*domain.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*domain.Task{}}
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id string) (*domain.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	clone := *t
	return &clone, nil
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
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	clone := *task
	f.tasks[task.ID] = &clone
	return task, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, task *domain.Task) error {
	if _, ok := f.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	clone := *task
	f.tasks[task.ID] = &clone
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeTaskRepo) DeleteIncomplete(_ context.Context, userID string) (int, error) {
	removed := 0
	for id, t := range f.tasks {
		if t.UserID == userID && !t.Completed {
			delete(f.tasks, id)
			removed++
		}
	}
	return removed, nil
}

type fakeAnalyticsRepo struct {
	applied []repository.AnalyticsDelta
}

func (f *fakeAnalyticsRepo) Get(_ context.Context, userID string) (*domain.Analytics, error) {
	return &domain.Analytics{UserID: userID}, nil
}

func (f *fakeAnalyticsRepo) Apply(_ context.Context, userID string, delta repository.AnalyticsDelta) (*domain.Analytics, error) {
	f.applied = append(f.applied, delta)
	return &domain.Analytics{UserID: userID}, nil
}

type fakeScheduleCache struct {
	invalidated int
}

func (f *fakeScheduleCache) Get(_ context.Context, _ string, _ domain.Horizon) (*domain.Schedule, error) {
	return nil, domain.ErrScheduleNotFound
}

func (f *fakeScheduleCache) Save(_ context.Context, _ string, _ *domain.Schedule) error {
	return nil
}

func (f *fakeScheduleCache) Invalidate(_ context.Context, _ string) error {
	f.invalidated++
	return nil
}

func TestCreateTaskInfersBlankFields(t *testing.T) {
	repo := newFakeTaskRepo()
	cache := &fakeScheduleCache{}
	uc := New(repo, &fakeAnalyticsRepo{}, cache, nil, nil)

	created, err := uc.CreateTask(context.Background(), &domain.Task{
		UserID: "u1",
		Title:  "team meeting about roadmap",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.CategoryMeeting, created.Category)
	assert.Equal(t, 60, created.Duration)
	assert.Equal(t, domain.PriorityHigh, created.Priority)
	assert.Equal(t, 1, cache.invalidated)
}

func TestCreateTaskKeepsExplicitFields(t *testing.T) {
	uc := New(newFakeTaskRepo(), &fakeAnalyticsRepo{}, nil, nil, nil)

	created, err := uc.CreateTask(context.Background(), &domain.Task{
		UserID:   "u1",
		Title:    "team meeting about roadmap",
		Duration: 120,
		Category: domain.CategoryStudy,
		Priority: domain.PriorityLow,
	})
	require.NoError(t, err)

	assert.Equal(t, 120, created.Duration)
	assert.Equal(t, domain.CategoryStudy, created.Category)
	assert.Equal(t, domain.PriorityLow, created.Priority)
}

func TestCreateTaskRejectsBlankTitle(t *testing.T) {
	uc := New(newFakeTaskRepo(), &fakeAnalyticsRepo{}, nil, nil, nil)

	_, err := uc.CreateTask(context.Background(), &domain.Task{UserID: "u1", Title: "  "})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestToggleTaskCompletionUpdatesAnalytics(t *testing.T) {
	repo := newFakeTaskRepo()
	analytics := &fakeAnalyticsRepo{}
	uc := New(repo, analytics, nil, nil, nil)

	created, err := uc.CreateTask(context.Background(), &domain.Task{
		UserID:   "u1",
		Title:    "write report",
		Duration: 90,
	})
	require.NoError(t, err)

	toggled, err := uc.ToggleTask(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	require.Len(t, analytics.applied, 1)
	assert.Equal(t, 1, analytics.applied[0].TasksCompleted)
	assert.InDelta(t, 1.5, analytics.applied[0].ProductiveHours, 1e-9)

	// Unchecking leaves the counters untouched.
	untoggled, err := uc.ToggleTask(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, untoggled.Completed)
	assert.Len(t, analytics.applied, 1)
}

func TestClearIncompleteKeepsCompletedTasks(t *testing.T) {
	repo := newFakeTaskRepo()
	uc := New(repo, &fakeAnalyticsRepo{}, nil, nil, nil)

	a, err := uc.CreateTask(context.Background(), &domain.Task{UserID: "u1", Title: "write report"})
	require.NoError(t, err)
	_, err = uc.CreateTask(context.Background(), &domain.Task{UserID: "u1", Title: "buy groceries"})
	require.NoError(t, err)

	_, err = uc.ToggleTask(context.Background(), a.ID)
	require.NoError(t, err)

	removed, err := uc.ClearIncomplete(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	remaining, err := uc.ListTasks(context.Background(), repository.TaskFilter{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.True(t, remaining[0].Completed)
}

func TestExpandTemplateCreatesClassifiedTasks(t *testing.T) {
	repo := newFakeTaskRepo()
	uc := New(repo, &fakeAnalyticsRepo{}, nil, nil, nil)

	created, err := uc.ExpandTemplate(context.Background(), "u1", "morning workout, team standup, review code")
	require.NoError(t, err)
	require.Len(t, created, 3)

	assert.Equal(t, "morning workout", created[0].Title)
	assert.Equal(t, domain.CategoryExercise, created[0].Category)
	for _, task := range created {
		assert.NotEmpty(t, task.ID)
		assert.Greater(t, task.Duration, 0)
	}
}

func TestExpandTemplateAllBlank(t *testing.T) {
	uc := New(newFakeTaskRepo(), &fakeAnalyticsRepo{}, nil, nil, nil)

	_, err := uc.ExpandTemplate(context.Background(), "u1", " , ,")
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}
