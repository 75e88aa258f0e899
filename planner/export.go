package planner

import (
	"fmt"
	"strings"

	"github.com/timeplan/backend/domain"
)

// ExportText renders a schedule as the plain-text document offered for
// file download.
func ExportText(schedule domain.Schedule) string {
	var b strings.Builder

	b.WriteString("TimePlan Schedule Export\n")
	fmt.Fprintf(&b, "Generated on: %s\n", schedule.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Schedule Type: %s\n\n", titleCase(string(schedule.Horizon)))

	switch {
	case schedule.Daily != nil:
		fmt.Fprintf(&b, "Date: %s\n\n", schedule.Daily.Date.Format("2006-01-02"))
		for _, slot := range schedule.Daily.Slots {
			fmt.Fprintf(&b, "%s - %s: %s (%dmin)\n", slot.Start, slot.End, slot.Label, slot.Duration)
		}
	case schedule.Weekly != nil:
		for _, day := range schedule.Weekly.Days {
			fmt.Fprintf(&b, "\n%s - %s\n", day.DayName, day.Date.Format("2006-01-02"))
			b.WriteString(strings.Repeat("=", 40) + "\n")
			for _, slot := range day.Slots {
				fmt.Fprintf(&b, "%s: %s (%dmin)\n", slot.Start, slot.Label, slot.Duration)
			}
		}
	case schedule.Monthly != nil:
		for _, week := range schedule.Monthly.Weeks {
			fmt.Fprintf(&b, "\nWeek %d - Focus: %s (%s)\n", week.Number, week.Focus, week.StartDate.Format("2006-01-02"))
			b.WriteString(strings.Repeat("=", 40) + "\n")
			for _, task := range week.Tasks {
				fmt.Fprintf(&b, "[%s] %s (%dmin)\n", task.Priority, task.Title, task.Duration)
			}
			for _, milestone := range week.Milestones {
				fmt.Fprintf(&b, "Milestone: %s\n", milestone)
			}
		}
	}

	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
