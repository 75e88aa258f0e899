package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeplan/backend/domain"
	"github.com/timeplan/backend/repository"
)

type fakeAnalyticsRepo struct {
	stats map[string]*domain.Analytics
}

func (f *fakeAnalyticsRepo) Get(_ context.Context, userID string) (*domain.Analytics, error) {
	s, ok := f.stats[userID]
	if !ok {
		return nil, domain.ErrAnalyticsNotFound
	}
	clone := *s
	return &clone, nil
}

func (f *fakeAnalyticsRepo) Apply(_ context.Context, userID string, _ repository.AnalyticsDelta) (*domain.Analytics, error) {
	return &domain.Analytics{UserID: userID}, nil
}

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
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	f.tasks = append(f.tasks, *task)
	return task, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, _ *domain.Task) error { return nil }
func (f *fakeTaskRepo) Delete(_ context.Context, _ string) error      { return nil }
func (f *fakeTaskRepo) DeleteIncomplete(_ context.Context, _ string) (int, error) {
	return 0, nil
}

func TestGetStartsFromZeros(t *testing.T) {
	uc := New(&fakeAnalyticsRepo{stats: map[string]*domain.Analytics{}}, &fakeTaskRepo{}, nil)

	stats, err := uc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", stats.UserID)
	assert.Zero(t, stats.TasksCompleted)
	assert.Zero(t, stats.ProductiveHours)
}

func TestGetReturnsStoredCounters(t *testing.T) {
	repo := &fakeAnalyticsRepo{stats: map[string]*domain.Analytics{
		"u1": {UserID: "u1", TasksCompleted: 7, ProductiveHours: 5.5, GoalsAchieved: 2},
	}}
	uc := New(repo, &fakeTaskRepo{}, nil)

	stats, err := uc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 7, stats.TasksCompleted)
	assert.InDelta(t, 5.5, stats.ProductiveHours, 1e-9)
	assert.Equal(t, 2, stats.GoalsAchieved)
}

func TestChartDataBucketsByWeekdayAndCategoryGroup(t *testing.T) {
	// 2026-08-24 is a Monday, 2026-08-30 a Sunday.
	monday := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	tasks := &fakeTaskRepo{tasks: []domain.Task{
		{UserID: "u1", Category: domain.CategoryWork, Completed: true, CreatedAt: monday},
		{UserID: "u1", Category: domain.CategoryMeeting, Completed: true, CreatedAt: monday},
		{UserID: "u1", Category: domain.CategoryStudy, Completed: true, CreatedAt: sunday},
		{UserID: "u1", Category: domain.CategoryExercise, Completed: false, CreatedAt: monday},
		{UserID: "u1", Category: domain.CategoryBreak, Completed: true, CreatedAt: monday},
		{UserID: "u2", Category: domain.CategoryWork, Completed: true, CreatedAt: monday},
	}}
	uc := New(&fakeAnalyticsRepo{stats: map[string]*domain.Analytics{}}, tasks, nil)

	data, err := uc.ChartData(context.Background(), "u1")
	require.NoError(t, err)

	// Breaks count toward completion totals but have no category group.
	assert.Equal(t, 3, data.WeeklyCompletion[0])
	assert.Equal(t, 1, data.WeeklyCompletion[6])
	assert.Equal(t, 0, data.WeeklyCompletion[2])

	assert.Equal(t, 2, data.Categories["work"])
	assert.Equal(t, 1, data.Categories["study"])
	assert.Equal(t, 1, data.Categories["exercise"])
	assert.Equal(t, 0, data.Categories["creative"])
}
