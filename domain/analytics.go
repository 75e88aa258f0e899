package domain

import "time"

// Analytics accumulates per-user productivity counters. Completing a task
// increments TasksCompleted and adds its duration (in hours) to
// ProductiveHours; completing a goal increments GoalsAchieved.
type Analytics struct {
	UserID          string    `json:"user_id"`
	TasksCompleted  int       `json:"tasks_completed"`
	ProductiveHours float64   `json:"productive_hours"`
	StreakDays      int       `json:"streak_days"`
	GoalsAchieved   int       `json:"goals_achieved"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ChartData carries the series the client-side charts render: completed
// tasks per weekday (Monday first) and task counts per category group.
type ChartData struct {
	WeeklyCompletion [7]int         `json:"weekly_completion"`
	Categories       map[string]int `json:"categories"`
}
