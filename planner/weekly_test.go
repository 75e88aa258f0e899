package planner

import (
	"testing"
	"time"

	"github.com/timeplan/backend/domain"
)

func weeklyFixture() []domain.Task {
	mk := func(id string, p domain.Priority, c domain.Category, d int) domain.Task {
		return domain.Task{ID: id, Title: "task " + id, Priority: p, Category: c, Duration: d}
	}
	return []domain.Task{
		mk("h1", domain.PriorityHigh, domain.CategoryWork, 60),
		mk("h2", domain.PriorityHigh, domain.CategoryMeeting, 30),
		mk("m1", domain.PriorityMedium, domain.CategoryCreative, 45),
		mk("m2", domain.PriorityMedium, domain.CategoryExercise, 120),
		mk("m3", domain.PriorityMedium, domain.CategoryMeal, 30),
		mk("l1", domain.PriorityLow, domain.CategoryPersonal, 20),
		mk("l2", domain.PriorityLow, domain.CategoryBreak, 15),
	}
}

func TestBuildWeeklyShape(t *testing.T) {
	week := BuildWeekly(weeklyFixture(), testSettings(), testNow)

	if len(week.Days) != 7 {
		t.Fatalf("got %d days, want 7", len(week.Days))
	}
	if week.Days[0].DayName != "Monday" {
		t.Errorf("first day = %q, want Monday", week.Days[0].DayName)
	}
	if week.Days[6].DayName != "Sunday" {
		t.Errorf("last day = %q, want Sunday", week.Days[6].DayName)
	}
	for i, day := range week.Days {
		wantWeekend := i >= 5
		if day.Weekend != wantWeekend {
			t.Errorf("day %d weekend = %v, want %v", i, day.Weekend, wantWeekend)
		}
	}
}

func TestBuildWeeklySlotsStayInsideWindows(t *testing.T) {
	week := BuildWeekly(weeklyFixture(), testSettings(), testNow)

	for i, day := range week.Days {
		open, _ := ParseClock("09:00")
		close, _ := ParseClock("17:00")
		if day.Weekend {
			open, _ = ParseClock(weekendStart)
			close, _ = ParseClock(weekendEnd)
		}
		for _, slot := range day.Slots {
			start, _ := ParseClock(slot.Start)
			end, _ := ParseClock(slot.End)
			if start < open || end > close {
				t.Errorf("day %d slot %s-%s escapes window %s-%s", i, slot.Start, slot.End, open.Format(), close.Format())
			}
		}
	}
}

func TestBuildWeeklyWeekendSelection(t *testing.T) {
	week := BuildWeekly(weeklyFixture(), testSettings(), testNow)

	// Weekend days draw from the personal-category bucket plus at most one
	// low-priority task.
	for _, di := range []int{5, 6} {
		for _, slot := range week.Days[di].Slots {
			if slot.Kind == domain.SlotBreak {
				continue
			}
			switch slot.TaskID {
			case "m2", "l1", "l2": // personal bucket: exercise/personal/break categories
			default:
				t.Errorf("weekend day %d contains unexpected task %q", di, slot.TaskID)
			}
		}
	}
}

func TestBuildWeeklyBucketsOverlapAcrossDays(t *testing.T) {
	// One task that is both high priority and work category is selected by
	// both of Monday's bucket slices; the duplication is deliberate.
	tasks := []domain.Task{
		{ID: "only", Title: "ship release", Priority: domain.PriorityHigh, Category: domain.CategoryWork, Duration: 60},
	}
	settings := testSettings()
	settings.AutoBreaks = false

	week := BuildWeekly(tasks, settings, testNow)

	monday := week.Days[0]
	count := 0
	for _, slot := range monday.Slots {
		if slot.TaskID == "only" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("monday selections of the same task = %d, want 2", count)
	}
}

func TestBuildWeeklySilentOverflowDrop(t *testing.T) {
	// Weekend window is 6 hours; a 7 hour personal task cannot fit and is
	// dropped without a partial slot.
	tasks := []domain.Task{
		{ID: "huge", Title: "reorganize the whole house", Priority: domain.PriorityLow, Category: domain.CategoryPersonal, Duration: 420},
	}
	week := BuildWeekly(tasks, testSettings(), testNow)

	for _, di := range []int{5, 6} {
		if n := len(week.Days[di].Slots); n != 0 {
			t.Errorf("weekend day %d has %d slots, want 0", di, n)
		}
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC), time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)}, // Monday
		{time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC), time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)}, // Thursday
		{time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)}, // Sunday
	}
	for _, tt := range tests {
		if got := StartOfWeek(tt.in); !got.Equal(tt.want) {
			t.Errorf("StartOfWeek(%s) = %s, want %s", tt.in.Format("2006-01-02"), got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
		}
	}
}
