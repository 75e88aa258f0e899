package planner

import (
	"time"

	"github.com/timeplan/backend/domain"
)

// Weekend day windows are fixed regardless of work-hour settings.
const (
	weekendStart = "10:00"
	weekendEnd   = "16:00"
)

// buckets groups tasks by shared attributes for per-weekday distribution.
// A task can land in several buckets at once; buckets are never consumed,
// so the same task may be suggested on multiple days.
type buckets struct {
	high     []domain.Task
	medium   []domain.Task
	low      []domain.Task
	work     []domain.Task
	personal []domain.Task
	creative []domain.Task
	short    []domain.Task
	long     []domain.Task
}

func groupTasks(tasks []domain.Task) buckets {
	var b buckets
	for _, t := range tasks {
		switch t.Priority {
		case domain.PriorityHigh:
			b.high = append(b.high, t)
		case domain.PriorityMedium:
			b.medium = append(b.medium, t)
		case domain.PriorityLow:
			b.low = append(b.low, t)
		}

		switch t.Category {
		case domain.CategoryWork, domain.CategoryMeeting, domain.CategoryStudy:
			b.work = append(b.work, t)
		case domain.CategoryPersonal, domain.CategoryExercise, domain.CategoryBreak:
			b.personal = append(b.personal, t)
		case domain.CategoryCreative:
			b.creative = append(b.creative, t)
		}

		if t.Duration <= 30 {
			b.short = append(b.short, t)
		}
		if t.Duration > 90 {
			b.long = append(b.long, t)
		}
	}
	return b
}

// weekdayTasks selects the task subset for a weekday offset (0 = Monday)
// from fixed bucket slices. Slice indices are bucket-local.
func weekdayTasks(b buckets, offset int) []domain.Task {
	switch offset {
	case 0: // Monday: high energy, tackle the difficult work first
		return concat(slice(b.high, 0, 2), slice(b.work, 0, 2))
	case 1: // Tuesday: peak productivity
		return concat(slice(b.long, 0, 1), slice(b.medium, 0, 3))
	case 2: // Wednesday: mid-week balance
		return concat(slice(b.creative, 0, 1), slice(b.short, 0, 3))
	case 3: // Thursday: preparation day
		return concat(slice(b.work, 2, 4), slice(b.medium, 3, 5))
	case 4: // Friday: wrap up and plan ahead
		return concat(slice(b.short, 3, 6), slice(b.low, 0, 2))
	default:
		return slice(b.medium, 0, 3)
	}
}

// BuildWeekly distributes tasks over Monday through Sunday. Weekdays draw
// from heuristic bucket slices and use the configured work hours; weekends
// get a lighter personal selection inside the fixed 10:00-16:00 window.
func BuildWeekly(tasks []domain.Task, settings domain.Settings, now time.Time) domain.WeekSchedule {
	start := StartOfWeek(now)
	b := groupTasks(tasks)

	days := make([]domain.WeekDay, 0, 7)
	for offset := 0; offset < 7; offset++ {
		date := start.AddDate(0, 0, offset)
		weekend := offset >= 5

		var dayTasks []domain.Task
		if weekend {
			dayTasks = concat(slice(b.personal, 0, 2), slice(b.low, 0, 1))
		} else {
			dayTasks = weekdayTasks(b, offset)
		}

		days = append(days, domain.WeekDay{
			Date:    date,
			DayName: date.Weekday().String(),
			Weekend: weekend,
			Slots:   packDay(dayTasks, settings, weekend),
		})
	}

	return domain.WeekSchedule{StartDate: start, Days: days}
}

// packDay lays the given tasks out chronologically inside the day's window.
// Unlike the daily scheduler there is no re-sorting and no partial slot:
// the first task that would overflow the window stops the layout silently.
func packDay(tasks []domain.Task, settings domain.Settings, weekend bool) []domain.Slot {
	startStr, endStr := settings.WorkStart, settings.WorkEnd
	if weekend {
		startStr, endStr = weekendStart, weekendEnd
	}
	start, _ := ParseClock(startStr)
	end, _ := ParseClock(endStr)

	var slots []domain.Slot
	current := start

	for _, task := range tasks {
		taskEnd := current.Add(task.Duration)
		if taskEnd > end {
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

		if settings.AutoBreaks {
			breakEnd := current.Add(settings.BreakDuration)
			if breakEnd <= end {
				slots = append(slots, domain.Slot{
					Start:    current.Format(),
					End:      breakEnd.Format(),
					Label:    "☕ Break",
					Duration: settings.BreakDuration,
					Kind:     domain.SlotBreak,
				})
				current = breakEnd
			}
		}
	}

	return slots
}

// StartOfWeek returns the Monday of the week containing t, at t's clock.
func StartOfWeek(t time.Time) time.Time {
	day := int(t.Weekday())
	if day == 0 {
		day = 7
	}
	return t.AddDate(0, 0, 1-day)
}

// slice is a bounds-safe s[from:to].
func slice(s []domain.Task, from, to int) []domain.Task {
	if from > len(s) {
		from = len(s)
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}

func concat(a, b []domain.Task) []domain.Task {
	out := make([]domain.Task, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
