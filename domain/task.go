package domain

import "time"

// Priority reflects how urgently a task should be scheduled.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight maps the priority to its sort score (high=3, medium=2, low=1).
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether p is one of the known priority tiers.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Category is the fixed activity taxonomy the classifier assigns from.
type Category string

const (
	CategoryStudy    Category = "study"
	CategoryMeeting  Category = "meeting"
	CategoryExercise Category = "exercise"
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryCreative Category = "creative"
	CategoryBreak    Category = "break"
	CategoryMeal     Category = "meal"
)

// Categories lists every category in classifier precedence order.
var Categories = []Category{
	CategoryStudy,
	CategoryMeeting,
	CategoryExercise,
	CategoryWork,
	CategoryPersonal,
	CategoryCreative,
	CategoryBreak,
	CategoryMeal,
}

// Valid reports whether c is one of the fixed category values.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Task represents a single plannable activity owned by a user.
// Duration is always positive; Category is always one of the fixed values.
type Task struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Priority  Priority  `json:"priority"`
	Duration  int       `json:"duration"`
	Category  Category  `json:"category"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Incomplete filters tasks down to the ones still pending. The returned
// slice is freshly allocated; the input is never modified.
func Incomplete(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}
