package domain

import "time"

// Settings holds a user's scheduling preferences. The planner treats a
// Settings value as immutable within a single scheduling call.
type Settings struct {
	UserID        string    `json:"user_id"`
	WorkStart     string    `json:"work_start"`
	WorkEnd       string    `json:"work_end"`
	AutoBreaks    bool      `json:"auto_breaks"`
	BreakDuration int       `json:"break_duration"`
	TaskReminders bool      `json:"task_reminders"`
	GoalReminders bool      `json:"goal_reminders"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DefaultSettings mirrors the preferences a fresh account starts with.
func DefaultSettings(userID string) Settings {
	return Settings{
		UserID:        userID,
		WorkStart:     "09:00",
		WorkEnd:       "17:00",
		AutoBreaks:    true,
		BreakDuration: 10,
		TaskReminders: true,
		GoalReminders: true,
	}
}
