package planner

import "github.com/timeplan/backend/domain"

// utilizationBase is the reference workload for the utilization insight:
// an eight hour day in minutes.
const utilizationBase = 8 * 60

// Insights derives human-readable observations from a day's slot list.
// Every ratio is guarded so an empty or break-only day produces sensible
// output instead of dividing by zero.
func Insights(slots []domain.Slot) []string {
	var insights []string

	var taskMinutes, breakMinutes int
	var workSlots []domain.Slot
	for _, slot := range slots {
		if slot.Kind == domain.SlotBreak {
			breakMinutes += slot.Duration
			continue
		}
		taskMinutes += slot.Duration
		workSlots = append(workSlots, slot)
	}

	utilization := float64(taskMinutes) / utilizationBase * 100
	switch {
	case utilization > 90:
		insights = append(insights, "Your schedule is quite packed. Consider adding more buffer time between tasks.")
	case utilization < 60:
		insights = append(insights, "You have good flexibility in your schedule. Consider adding some stretch goals.")
	default:
		insights = append(insights, "Your schedule has a good balance of tasks and flexibility.")
	}

	if len(workSlots) > 0 {
		highPriority := 0
		for _, slot := range workSlots {
			if slot.Priority == domain.PriorityHigh {
				highPriority++
			}
		}
		if float64(highPriority)/float64(len(workSlots)) > 0.6 {
			insights = append(insights, "Most of your tasks are high priority. Consider if some can be delegated or rescheduled.")
		}
	}

	if breakMinutes < 60 && len(workSlots) > 4 {
		insights = append(insights, "Consider adding more breaks to maintain focus and productivity.")
	}

	seen := make(map[domain.Category]struct{})
	for _, slot := range workSlots {
		seen[slot.Category] = struct{}{}
	}
	if len(seen) > 4 {
		insights = append(insights, "You have diverse tasks today. Try to group similar activities together.")
	}

	return insights
}
