package transport

// TaskRequest carries task fields from the client. Duration, category and
// priority may be left blank; the server infers them from the title.
type TaskRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Priority string `json:"priority"`
	Duration int    `json:"duration"`
	Category string `json:"category"`
}

// TemplateRequest expands a comma-joined list of task titles.
type TemplateRequest struct {
	Tasks string `json:"tasks"`
}

type ScheduleRequest struct {
	Horizon string `json:"horizon"`
}

type GoalRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Deadline string `json:"deadline"`
}

type ProgressRequest struct {
	Progress int `json:"progress"`
}

type SettingsRequest struct {
	WorkStart     string `json:"work_start"`
	WorkEnd       string `json:"work_end"`
	AutoBreaks    bool   `json:"auto_breaks"`
	BreakDuration int    `json:"break_duration"`
	TaskReminders bool   `json:"task_reminders"`
	GoalReminders bool   `json:"goal_reminders"`
}

type AuthLoginRequest struct {
	UserID string `json:"user_id"`
	TTL    int    `json:"ttl_seconds"`
}

type RefreshRequest struct {
	SessionID string `json:"session_id"`
	TTL       int    `json:"ttl_seconds"`
}
