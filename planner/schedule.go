package planner

import (
	"time"

	"github.com/timeplan/backend/domain"
)

// Generate produces a fresh schedule for the requested horizon from the
// user's still-pending tasks. Completed tasks are filtered out; the input
// slice is never modified. An unrecognized horizon falls back to daily.
func Generate(horizon domain.Horizon, tasks []domain.Task, settings domain.Settings, now time.Time) domain.Schedule {
	pending := domain.Incomplete(tasks)

	schedule := domain.Schedule{
		Horizon:     horizon,
		GeneratedAt: now,
	}

	switch horizon {
	case domain.HorizonWeekly:
		weekly := BuildWeekly(pending, settings, now)
		schedule.Weekly = &weekly
	case domain.HorizonMonthly:
		monthly := BuildMonthly(pending, now)
		schedule.Monthly = &monthly
	default:
		schedule.Horizon = domain.HorizonDaily
		daily := BuildDaily(pending, settings, now)
		schedule.Daily = &daily
	}

	return schedule
}
