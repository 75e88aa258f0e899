package planner

import (
	"time"

	"github.com/timeplan/backend/domain"
)

var weekFocusLabels = []string{
	"Foundation Building",
	"Momentum Growth",
	"Skill Development",
	"Goal Achievement",
}

var weekMilestoneTexts = []string{
	"Complete initial research and planning",
	"Establish consistent daily routines",
	"Review progress and adjust strategies",
	"Finalize and celebrate achievements",
}

// BuildMonthly splits tasks into four contiguous near-equal chunks, one per
// week, each carrying a fixed focus label and milestone.
func BuildMonthly(tasks []domain.Task, now time.Time) domain.MonthSchedule {
	// Tasks over two hours are earmarked as month-long goals. The subset is
	// deliberately unconsumed; the canned list alone drives milestone text.
	var longTerm []domain.Task
	for _, t := range tasks {
		if t.Duration > 120 {
			longTerm = append(longTerm, t)
		}
	}

	weeks := make([]domain.MonthWeek, 0, 4)
	for week := 0; week < 4; week++ {
		weeks = append(weeks, domain.MonthWeek{
			Number:     week + 1,
			StartDate:  now.AddDate(0, 0, week*7),
			Focus:      weekFocus(week),
			Tasks:      weekChunk(tasks, week),
			Milestones: weekMilestones(longTerm, week),
		})
	}

	return domain.MonthSchedule{StartDate: now, Weeks: weeks}
}

func weekFocus(week int) string {
	if week < len(weekFocusLabels) {
		return weekFocusLabels[week]
	}
	return "Progress Consolidation"
}

// weekChunk returns the week's contiguous share of the task list. The four
// chunks concatenated in order reproduce the input exactly.
func weekChunk(tasks []domain.Task, week int) []domain.Task {
	perWeek := (len(tasks) + 3) / 4
	return slice(tasks, week*perWeek, week*perWeek+perWeek)
}

func weekMilestones(longTerm []domain.Task, week int) []string {
	if week < len(weekMilestoneTexts) {
		return []string{weekMilestoneTexts[week]}
	}
	return []string{"Continue steady progress"}
}
