package planner

import (
	"testing"
	"time"

	"github.com/timeplan/backend/domain"
)

func testSettings() domain.Settings {
	return domain.Settings{
		WorkStart:     "09:00",
		WorkEnd:       "17:00",
		AutoBreaks:    true,
		BreakDuration: 10,
	}
}

func task(id string, priority domain.Priority, duration int) domain.Task {
	return domain.Task{
		ID:       id,
		Title:    "task " + id,
		Priority: priority,
		Duration: duration,
		Category: domain.CategoryWork,
	}
}

var testNow = time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC)

func TestBuildDailyPriorityOrdering(t *testing.T) {
	tasks := []domain.Task{
		task("a", domain.PriorityHigh, 50),
		task("b", domain.PriorityLow, 10),
		task("c", domain.PriorityHigh, 20),
	}

	settings := testSettings()
	settings.AutoBreaks = false

	day := BuildDaily(tasks, settings, testNow)

	var order []string
	for _, slot := range day.Slots {
		order = append(order, slot.TaskID)
	}
	want := []string{"c", "a", "b"}
	if len(order) != len(want) {
		t.Fatalf("got %d slots, want %d: %v", len(order), len(want), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("slot %d: got task %q, want %q", i, order[i], want[i])
		}
	}
}

func TestBuildDailySlotInvariants(t *testing.T) {
	tasks := []domain.Task{
		task("a", domain.PriorityHigh, 90),
		task("b", domain.PriorityMedium, 45),
		task("c", domain.PriorityLow, 30),
		task("d", domain.PriorityMedium, 60),
	}

	day := BuildDaily(tasks, testSettings(), testNow)
	if len(day.Slots) == 0 {
		t.Fatal("expected slots")
	}

	workEnd, _ := ParseClock("17:00")
	var prevEnd Clock
	for i, slot := range day.Slots {
		start, err := ParseClock(slot.Start)
		if err != nil {
			t.Fatalf("slot %d start %q: %v", i, slot.Start, err)
		}
		end, err := ParseClock(slot.End)
		if err != nil {
			t.Fatalf("slot %d end %q: %v", i, slot.End, err)
		}
		if end.Sub(start) != slot.Duration {
			t.Errorf("slot %d: end-start = %d, duration = %d", i, end.Sub(start), slot.Duration)
		}
		if i > 0 && start < prevEnd {
			t.Errorf("slot %d starts at %s before previous end %s", i, slot.Start, prevEnd.Format())
		}
		if end > workEnd {
			t.Errorf("slot %d ends at %s past work end", i, slot.End)
		}
		prevEnd = end
	}
}

func TestBuildDailyOverflowEmitsSinglePartial(t *testing.T) {
	settings := domain.Settings{WorkStart: "09:00", WorkEnd: "10:00"}
	tasks := []domain.Task{task("big", domain.PriorityHigh, 90)}

	day := BuildDaily(tasks, settings, testNow)
	if len(day.Slots) != 1 {
		t.Fatalf("got %d slots, want 1 partial", len(day.Slots))
	}
	slot := day.Slots[0]
	if slot.Kind != domain.SlotPartial {
		t.Errorf("kind = %q, want partial", slot.Kind)
	}
	if slot.Start != "09:00" || slot.End != "10:00" || slot.Duration != 60 {
		t.Errorf("partial slot = %s-%s (%dmin), want 09:00-10:00 (60min)", slot.Start, slot.End, slot.Duration)
	}
	if slot.TaskID != "big" {
		t.Errorf("partial slot task id = %q, want big", slot.TaskID)
	}
}

func TestBuildDailyOverflowStopsWholePass(t *testing.T) {
	// The 30-minute task would fit after the overflow, but the pass must
	// terminate as soon as one task runs past the window.
	settings := domain.Settings{WorkStart: "09:00", WorkEnd: "11:00"}
	tasks := []domain.Task{
		task("long", domain.PriorityHigh, 150),
		task("short", domain.PriorityLow, 30),
	}

	day := BuildDaily(tasks, settings, testNow)
	if len(day.Slots) != 1 {
		t.Fatalf("got %d slots, want only the partial", len(day.Slots))
	}
	if day.Slots[0].Kind != domain.SlotPartial {
		t.Errorf("kind = %q, want partial", day.Slots[0].Kind)
	}
}

func TestBuildDailyBreakAfterEachButLastSorted(t *testing.T) {
	settings := domain.Settings{
		WorkStart:     "09:00",
		WorkEnd:       "11:30",
		AutoBreaks:    true,
		BreakDuration: 15,
	}
	tasks := []domain.Task{
		task("a", domain.PriorityHigh, 60),
		task("b", domain.PriorityMedium, 60),
		task("c", domain.PriorityLow, 60),
	}

	day := BuildDaily(tasks, settings, testNow)

	// a, break, b, then a break is still inserted even though c will not
	// fit afterwards; c overflows with no window time left, so no partial.
	var kinds []domain.SlotKind
	for _, slot := range day.Slots {
		kinds = append(kinds, slot.Kind)
	}
	want := []domain.SlotKind{domain.SlotTask, domain.SlotBreak, domain.SlotTask, domain.SlotBreak}
	if len(kinds) != len(want) {
		t.Fatalf("got kinds %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("got kinds %v, want %v", kinds, want)
		}
	}
}

func TestBuildDailyNoBreakAfterLastTask(t *testing.T) {
	tasks := []domain.Task{
		task("a", domain.PriorityHigh, 60),
		task("b", domain.PriorityLow, 30),
	}

	day := BuildDaily(tasks, testSettings(), testNow)
	if len(day.Slots) != 3 {
		t.Fatalf("got %d slots, want task/break/task", len(day.Slots))
	}
	if last := day.Slots[len(day.Slots)-1]; last.Kind != domain.SlotTask {
		t.Errorf("last slot kind = %q, want task (no trailing break)", last.Kind)
	}
}

func TestBuildDailyEmptyTaskList(t *testing.T) {
	day := BuildDaily(nil, testSettings(), testNow)
	if len(day.Slots) != 0 {
		t.Errorf("got %d slots, want 0", len(day.Slots))
	}
	if len(day.Insights) == 0 {
		t.Error("expected insights even for an empty day")
	}
}

func TestBuildDailyInvertedWindowSchedulesNothing(t *testing.T) {
	settings := domain.Settings{WorkStart: "17:00", WorkEnd: "09:00"}
	tasks := []domain.Task{task("a", domain.PriorityHigh, 30)}

	day := BuildDaily(tasks, settings, testNow)
	if len(day.Slots) != 0 {
		t.Errorf("got %d slots, want 0 for inverted window", len(day.Slots))
	}
}

func TestBuildDailyDoesNotMutateInput(t *testing.T) {
	tasks := []domain.Task{
		task("a", domain.PriorityLow, 50),
		task("b", domain.PriorityHigh, 20),
	}
	BuildDaily(tasks, testSettings(), testNow)

	if tasks[0].ID != "a" || tasks[1].ID != "b" {
		t.Errorf("input order changed: %q, %q", tasks[0].ID, tasks[1].ID)
	}
}
