package domain

import "time"

// Horizon selects the scheduling scope of a generated plan.
type Horizon string

const (
	HorizonDaily   Horizon = "daily"
	HorizonWeekly  Horizon = "weekly"
	HorizonMonthly Horizon = "monthly"
)

// Valid reports whether h names a supported horizon.
func (h Horizon) Valid() bool {
	return h == HorizonDaily || h == HorizonWeekly || h == HorizonMonthly
}

// SlotKind distinguishes the three block types a day can contain.
type SlotKind string

const (
	SlotTask    SlotKind = "task"
	SlotBreak   SlotKind = "break"
	SlotPartial SlotKind = "partial"
)

// Slot is one contiguous time block in a generated schedule. Start and End
// are "HH:MM" labels; End always equals Start advanced by Duration minutes.
type Slot struct {
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Label    string   `json:"label"`
	Duration int      `json:"duration"`
	Kind     SlotKind `json:"kind"`
	Priority Priority `json:"priority,omitempty"`
	Category Category `json:"category,omitempty"`
	TaskID   string   `json:"task_id,omitempty"`
}

// DaySchedule is the daily-horizon plan: a chronological, non-overlapping
// slot list plus derived commentary.
type DaySchedule struct {
	Date     time.Time `json:"date"`
	Slots    []Slot    `json:"slots"`
	Insights []string  `json:"insights"`
}

// WeekDay is one of the seven entries of a weekly-horizon plan.
type WeekDay struct {
	Date    time.Time `json:"date"`
	DayName string    `json:"day_name"`
	Weekend bool      `json:"weekend"`
	Slots   []Slot    `json:"slots"`
}

// WeekSchedule covers Monday through Sunday of the current week.
type WeekSchedule struct {
	StartDate time.Time `json:"start_date"`
	Days      []WeekDay `json:"days"`
}

// MonthWeek is one of the four focus weeks of a monthly-horizon plan.
type MonthWeek struct {
	Number     int       `json:"number"`
	StartDate  time.Time `json:"start_date"`
	Focus      string    `json:"focus"`
	Tasks      []Task    `json:"tasks"`
	Milestones []string  `json:"milestones"`
}

// MonthSchedule distributes tasks over four consecutive weeks.
type MonthSchedule struct {
	StartDate time.Time   `json:"start_date"`
	Weeks     []MonthWeek `json:"weeks"`
}

// Schedule is the tagged union returned by the planner. Exactly one of the
// horizon bodies is populated, matching the Horizon tag. A Schedule is a
// derived view: every generation call produces a fresh value and never
// mutates its inputs.
type Schedule struct {
	Horizon     Horizon        `json:"horizon"`
	GeneratedAt time.Time      `json:"generated_at"`
	Daily       *DaySchedule   `json:"daily,omitempty"`
	Weekly      *WeekSchedule  `json:"weekly,omitempty"`
	Monthly     *MonthSchedule `json:"monthly,omitempty"`
}
