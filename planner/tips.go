package planner

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/timeplan/backend/domain"
)

var productivityTips = []string{
	"Use the Pomodoro Technique: Work for 25 minutes, then take a 5-minute break.",
	"Schedule your most important tasks during your peak energy hours.",
	"Batch similar tasks together to minimize context switching.",
	"Set specific, measurable goals for each task.",
	"Use time blocking to dedicate focused time to important work.",
	"Take regular breaks to maintain mental clarity and focus.",
	"Prioritize tasks using the Eisenhower Matrix: Urgent vs Important.",
	"Review and adjust your schedule regularly based on actual time spent.",
}

var wellnessTips = []string{
	"Stay hydrated - drink water every hour.",
	"Take a 5-minute walk between tasks to refresh your mind.",
	"Practice deep breathing exercises during breaks.",
	"Ensure good posture and ergonomics at your workspace.",
	"Get natural light exposure, especially in the morning.",
	"Limit caffeine intake after 2 PM for better sleep quality.",
	"Do some light stretching every 2 hours.",
	"Take time for mindfulness or meditation during breaks.",
}

var motivationQuotes = []string{
	"The key is not to prioritize what's on your schedule, but to schedule your priorities. - Stephen Covey",
	"Time is what we want most, but what we use worst. - William Penn",
	"Don't watch the clock; do what it does. Keep going. - Sam Levenson",
	"The future depends on what you do today. - Mahatma Gandhi",
	"Time is more valuable than money. You can get more money, but you cannot get more time. - Jim Rohn",
	"Your limitation - it's only your imagination.",
	"Success is not final, failure is not fatal: it is the courage to continue that counts. - Winston Churchill",
	"The only way to do great work is to love what you do. - Steve Jobs",
}

// TipPicker draws tips and quotes from the fixed lists. The random source
// is injected so callers (and tests) control the selection. One picker is
// shared across requests, and rand.Rand is not safe for concurrent use, so
// every draw goes through the mutex.
type TipPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewTipPicker builds a picker over rng; a nil rng gets a time-seeded one.
func NewTipPicker(rng *rand.Rand) *TipPicker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &TipPicker{rng: rng}
}

func (p *TipPicker) intn(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(n)
}

func (p *TipPicker) Productivity() string {
	return productivityTips[p.intn(len(productivityTips))]
}

func (p *TipPicker) Wellness() string {
	return wellnessTips[p.intn(len(wellnessTips))]
}

func (p *TipPicker) Quote() string {
	return motivationQuotes[p.intn(len(motivationQuotes))]
}

// BehaviorInsight summarizes the user's habits from their task history:
// completion rate, dominant category, and typical task length. One of the
// applicable observations is drawn via the picker's random source.
func (p *TipPicker) BehaviorInsight(tasks []domain.Task) string {
	var completed []domain.Task
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		}
	}
	if len(completed) == 0 {
		return "Start by completing a few tasks to receive personalized insights about your productivity patterns."
	}

	var insights []string

	completionRate := float64(len(completed)) / float64(len(tasks)) * 100
	switch {
	case completionRate > 80:
		insights = append(insights, "Excellent! You have a very high task completion rate. Consider setting more challenging goals.")
	case completionRate > 60:
		insights = append(insights, "Good progress! You're completing most of your tasks. Try to identify what's preventing 100% completion.")
	default:
		insights = append(insights, "Your completion rate could be improved. Consider breaking down larger tasks into smaller, manageable pieces.")
	}

	recent := tasks
	if len(recent) > 10 {
		recent = recent[:10]
	}
	if dominant := dominantCategory(recent); dominant != "" {
		insights = append(insights, fmt.Sprintf("You seem to focus heavily on %s tasks. Consider adding variety to maintain engagement.", dominant))
	}

	total := 0
	for _, t := range recent {
		total += t.Duration
	}
	avg := float64(total) / float64(len(recent))
	if avg > 90 {
		insights = append(insights, "Your tasks tend to be quite long. Try the time-blocking technique with focused 25-50 minute sessions.")
	} else if avg < 30 {
		insights = append(insights, "You prefer shorter tasks. Consider batching similar quick tasks together for better efficiency.")
	}

	return insights[p.intn(len(insights))]
}

// dominantCategory finds the most frequent category; on a tie the category
// seen later in the list wins.
func dominantCategory(tasks []domain.Task) domain.Category {
	counts := make(map[domain.Category]int)
	var order []domain.Category
	for _, t := range tasks {
		if _, seen := counts[t.Category]; !seen {
			order = append(order, t.Category)
		}
		counts[t.Category]++
	}
	if len(order) == 0 {
		return ""
	}
	dominant := order[0]
	for _, c := range order[1:] {
		if counts[dominant] <= counts[c] {
			dominant = c
		}
	}
	return dominant
}
