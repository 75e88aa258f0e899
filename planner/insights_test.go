package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timeplan/backend/domain"
)

func slot(kind domain.SlotKind, duration int, priority domain.Priority, category domain.Category) domain.Slot {
	return domain.Slot{Kind: kind, Duration: duration, Priority: priority, Category: category}
}

func TestInsightsUtilizationBands(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{"packed", 460, "quite packed"},
		{"balanced", 360, "good balance"},
		{"flexible", 120, "good flexibility"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := []domain.Slot{slot(domain.SlotTask, tt.minutes, domain.PriorityMedium, domain.CategoryWork)}
			got := Insights(slots)
			assert.NotEmpty(t, got)
			assert.Contains(t, got[0], tt.want)
		})
	}
}

func TestInsightsPrioritySkew(t *testing.T) {
	slots := []domain.Slot{
		slot(domain.SlotTask, 60, domain.PriorityHigh, domain.CategoryWork),
		slot(domain.SlotTask, 60, domain.PriorityHigh, domain.CategoryWork),
		slot(domain.SlotTask, 60, domain.PriorityLow, domain.CategoryPersonal),
	}
	got := strings.Join(Insights(slots), "\n")
	assert.Contains(t, got, "high priority")
}

func TestInsightsNoSkewMessageAtBoundary(t *testing.T) {
	// Exactly 60% high priority must not trigger the caution.
	slots := []domain.Slot{
		slot(domain.SlotTask, 30, domain.PriorityHigh, domain.CategoryWork),
		slot(domain.SlotTask, 30, domain.PriorityHigh, domain.CategoryWork),
		slot(domain.SlotTask, 30, domain.PriorityHigh, domain.CategoryWork),
		slot(domain.SlotTask, 30, domain.PriorityLow, domain.CategoryPersonal),
		slot(domain.SlotTask, 30, domain.PriorityLow, domain.CategoryPersonal),
	}
	got := strings.Join(Insights(slots), "\n")
	assert.NotContains(t, got, "high priority")
}

func TestInsightsBreakAdequacy(t *testing.T) {
	var slots []domain.Slot
	for i := 0; i < 5; i++ {
		slots = append(slots, slot(domain.SlotTask, 45, domain.PriorityMedium, domain.CategoryWork))
	}
	slots = append(slots, slot(domain.SlotBreak, 20, "", ""))

	got := strings.Join(Insights(slots), "\n")
	assert.Contains(t, got, "more breaks")
}

func TestInsightsVariety(t *testing.T) {
	categories := []domain.Category{
		domain.CategoryStudy,
		domain.CategoryMeeting,
		domain.CategoryExercise,
		domain.CategoryWork,
		domain.CategoryCreative,
	}
	var slots []domain.Slot
	for _, c := range categories {
		slots = append(slots, slot(domain.SlotTask, 30, domain.PriorityMedium, c))
	}

	got := strings.Join(Insights(slots), "\n")
	assert.Contains(t, got, "diverse tasks")
}

func TestInsightsEmptySlotsSkipsRatios(t *testing.T) {
	got := Insights(nil)
	// Only the utilization line applies; the skew check is undefined over
	// zero slots and must be skipped rather than emitted as NaN.
	assert.Len(t, got, 1)
	assert.Contains(t, got[0], "good flexibility")
}

func TestInsightsPartialCountsAsWork(t *testing.T) {
	slots := []domain.Slot{
		slot(domain.SlotPartial, 480, domain.PriorityHigh, domain.CategoryWork),
	}
	got := Insights(slots)
	assert.Contains(t, got[0], "quite packed")
}
