package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/timeplan/backend/domain"
)

// BuildDaily packs tasks greedily into the work window defined by settings
// and returns the resulting day plan with derived insights.
//
// Tasks are laid out in priority order (high first, shorter first within a
// tier) starting at WorkStart. A task that would run past WorkEnd ends the
// whole pass: if any window time remains it is emitted as a single partial
// slot, and no later task is considered even if it would fit.
func BuildDaily(tasks []domain.Task, settings domain.Settings, now time.Time) domain.DaySchedule {
	sorted := sortForDay(tasks)

	start, _ := ParseClock(settings.WorkStart)
	end, _ := ParseClock(settings.WorkEnd)

	var slots []domain.Slot
	current := start

	for i, task := range sorted {
		taskEnd := current.Add(task.Duration)

		if taskEnd > end {
			if current < end {
				slots = append(slots, domain.Slot{
					Start:    current.Format(),
					End:      end.Format(),
					Label:    "⚠️ Partial: " + task.Title,
					Duration: end.Sub(current),
					Kind:     domain.SlotPartial,
					Priority: task.Priority,
					Category: task.Category,
					TaskID:   task.ID,
				})
			}
			break
		}

		slots = append(slots, domain.Slot{
			Start:    current.Format(),
			End:      taskEnd.Format(),
			Label:    task.Title,
			Duration: task.Duration,
			Kind:     domain.SlotTask,
			Priority: task.Priority,
			Category: task.Category,
			TaskID:   task.ID,
		})
		current = taskEnd

		// Break suppression keys off the position in the priority-sorted
		// slice, not the emitted slot list.
		if settings.AutoBreaks && i < len(sorted)-1 {
			breakEnd := current.Add(settings.BreakDuration)
			if breakEnd <= end {
				slots = append(slots, domain.Slot{
					Start:    current.Format(),
					End:      breakEnd.Format(),
					Label:    fmt.Sprintf("☕ Break (%d min)", settings.BreakDuration),
					Duration: settings.BreakDuration,
					Kind:     domain.SlotBreak,
				})
				current = breakEnd
			}
		}
	}

	return domain.DaySchedule{
		Date:     now,
		Slots:    slots,
		Insights: Insights(slots),
	}
}

// sortForDay orders tasks by priority descending, breaking ties with
// ascending duration so short wins slot in first. The sort is stable and
// works on a copy; the caller's slice is left untouched.
func sortForDay(tasks []domain.Task) []domain.Task {
	sorted := make([]domain.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority.Weight() != sorted[j].Priority.Weight() {
			return sorted[i].Priority.Weight() > sorted[j].Priority.Weight()
		}
		return sorted[i].Duration < sorted[j].Duration
	})
	return sorted
}
