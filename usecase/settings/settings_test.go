package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeplan/backend/domain"
)

type fakeSettingsRepo struct {
	stored map[string]*domain.Settings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{stored: map[string]*domain.Settings{}}
}

func (f *fakeSettingsRepo) Get(_ context.Context, userID string) (*domain.Settings, error) {
	s, ok := f.stored[userID]
	if !ok {
		return nil, domain.ErrSettingsNotFound
	}
	clone := *s
	return &clone, nil
}

func (f *fakeSettingsRepo) Save(_ context.Context, settings *domain.Settings) error {
	clone := *settings
	f.stored[settings.UserID] = &clone
	return nil
}

func TestGetFallsBackToDefaults(t *testing.T) {
	uc := New(newFakeSettingsRepo(), nil, nil)

	settings, err := uc.Get(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "09:00", settings.WorkStart)
	assert.Equal(t, "17:00", settings.WorkEnd)
	assert.True(t, settings.AutoBreaks)
	assert.Equal(t, 10, settings.BreakDuration)
}

func TestSaveRoundTrip(t *testing.T) {
	repo := newFakeSettingsRepo()
	uc := New(repo, nil, nil)

	saved, err := uc.Save(context.Background(), &domain.Settings{
		UserID:        "u1",
		WorkStart:     "08:30",
		WorkEnd:       "16:30",
		AutoBreaks:    false,
		BreakDuration: 15,
	})
	require.NoError(t, err)
	assert.False(t, saved.UpdatedAt.IsZero())

	loaded, err := uc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "08:30", loaded.WorkStart)
	assert.Equal(t, 15, loaded.BreakDuration)
	assert.False(t, loaded.AutoBreaks)
}

func TestSaveRejectsMalformedWindow(t *testing.T) {
	uc := New(newFakeSettingsRepo(), nil, nil)

	cases := []struct {
		name  string
		start string
		end   string
	}{
		{name: "missing colon", start: "0900", end: "17:00"},
		{name: "out of range hour", start: "09:00", end: "25:00"},
		{name: "empty start", start: "", end: "17:00"},
		{name: "garbage", start: "soon", end: "later"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Save(context.Background(), &domain.Settings{
				UserID:    "u1",
				WorkStart: tc.start,
				WorkEnd:   tc.end,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidTime)
		})
	}
}

func TestSaveDefaultsBreakDuration(t *testing.T) {
	uc := New(newFakeSettingsRepo(), nil, nil)

	saved, err := uc.Save(context.Background(), &domain.Settings{
		UserID:    "u1",
		WorkStart: "09:00",
		WorkEnd:   "17:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, saved.BreakDuration)
}
