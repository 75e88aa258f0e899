package domain

import "time"

// GoalCategory groups goals for recommendation purposes.
type GoalCategory string

const (
	GoalLearning GoalCategory = "learning"
	GoalFitness  GoalCategory = "fitness"
	GoalCareer   GoalCategory = "career"
	GoalPersonal GoalCategory = "personal"
)

// Milestone is an intermediate checkpoint derived from a goal deadline.
type Milestone struct {
	Title      string    `json:"title"`
	TargetDate time.Time `json:"target_date"`
	Completed  bool      `json:"completed"`
}

// Goal is a longer-running objective tracked alongside day-to-day tasks.
// Progress runs 0-100; reaching 100 marks the goal completed.
type Goal struct {
	ID         string       `json:"id"`
	UserID     string       `json:"user_id"`
	Title      string       `json:"title"`
	Category   GoalCategory `json:"category"`
	Deadline   time.Time    `json:"deadline"`
	Progress   int          `json:"progress"`
	Completed  bool         `json:"completed"`
	Milestones []Milestone  `json:"milestones,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// DaysUntilDeadline counts whole days left, rounding partial days up. A
// negative result means the goal is overdue.
func (g *Goal) DaysUntilDeadline(now time.Time) int {
	diff := g.Deadline.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}
