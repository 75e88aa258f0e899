package planner

import (
	"regexp"
	"strings"

	"github.com/timeplan/backend/domain"
)

// explicitDuration matches a number followed by a minute- or hour-like unit
// anywhere in the title, e.g. "review PR 45 min" or "deep work 2h".
var explicitDuration = regexp.MustCompile(`(\d+)\s*(min|minutes|hour|hours|hr|h)`)

// categoryDefaults holds the default minutes used when a title literally
// names a category.
var categoryDefaults = map[domain.Category]int{
	domain.CategoryStudy:    60,
	domain.CategoryMeeting:  60,
	domain.CategoryExercise: 45,
	domain.CategoryWork:     90,
	domain.CategoryPersonal: 30,
	domain.CategoryCreative: 90,
	domain.CategoryBreak:    15,
	domain.CategoryMeal:     30,
}

// keywordRule pairs a keyword group with its outcome. Rules are evaluated
// in declaration order and the first hit wins, so precedence stays auditable.
type keywordRule[T any] struct {
	keywords []string
	result   T
}

func (r keywordRule[T]) matches(text string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

var durationRules = []keywordRule[int]{
	{keywords: []string{"study", "learn", "read", "research"}, result: 60},
	{keywords: []string{"exercise", "gym", "workout", "run"}, result: 45},
	{keywords: []string{"meeting", "call", "presentation"}, result: 60},
	{keywords: []string{"email", "message", "quick"}, result: 15},
	{keywords: []string{"project", "develop", "build", "create"}, result: 120},
	{keywords: []string{"break", "rest", "lunch", "dinner", "eat"}, result: 30},
}

var categoryRules = []keywordRule[domain.Category]{
	{keywords: []string{"study", "learn", "read", "research", "exam", "homework", "assignment"}, result: domain.CategoryStudy},
	{keywords: []string{"meeting", "call", "presentation", "interview", "discussion"}, result: domain.CategoryMeeting},
	{keywords: []string{"exercise", "gym", "workout", "run", "walk", "yoga", "sport"}, result: domain.CategoryExercise},
	{keywords: []string{"work", "project", "develop", "build", "code", "design", "analyze"}, result: domain.CategoryWork},
	{keywords: []string{"shopping", "cleaning", "laundry", "errands", "personal", "appointment"}, result: domain.CategoryPersonal},
	{keywords: []string{"write", "create", "art", "music", "draw", "paint", "creative"}, result: domain.CategoryCreative},
	{keywords: []string{"break", "rest", "relax", "meditation", "downtime"}, result: domain.CategoryBreak},
	{keywords: []string{"lunch", "dinner", "breakfast", "eat", "meal", "cook"}, result: domain.CategoryMeal},
}

// InferDuration estimates how many minutes a task will take from its title.
// Precedence: explicit "<n> min/h" mention, literal category name, keyword
// groups, then a word-count fallback. Total over all inputs.
func InferDuration(title string) int {
	text := strings.ToLower(title)

	if m := explicitDuration.FindStringSubmatch(text); m != nil {
		value := atoiLoose(m[1])
		if strings.Contains(m[2], "h") {
			return value * 60
		}
		return value
	}

	for _, category := range domain.Categories {
		if strings.Contains(text, string(category)) {
			return categoryDefaults[category]
		}
	}

	for _, rule := range durationRules {
		if rule.matches(text) {
			return rule.result
		}
	}

	words := len(strings.Split(title, " "))
	switch {
	case words <= 3:
		return 30
	case words <= 6:
		return 60
	default:
		return 90
	}
}

// InferCategory assigns the task category from title keywords, defaulting
// to work when nothing matches.
func InferCategory(title string) domain.Category {
	text := strings.ToLower(title)
	for _, rule := range categoryRules {
		if rule.matches(text) {
			return rule.result
		}
	}
	return domain.CategoryWork
}

// PriorityForCategory derives the default priority tier for a category.
func PriorityForCategory(category domain.Category) domain.Priority {
	switch category {
	case domain.CategoryWork, domain.CategoryMeeting, domain.CategoryStudy:
		return domain.PriorityHigh
	case domain.CategoryBreak, domain.CategoryPersonal:
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}

// Classification bundles everything the classifier infers from a title.
type Classification struct {
	Duration int             `json:"duration"`
	Category domain.Category `json:"category"`
	Priority domain.Priority `json:"priority"`
}

// Classify runs the full inference pipeline on a task title.
func Classify(title string) Classification {
	category := InferCategory(title)
	return Classification{
		Duration: InferDuration(title),
		Category: category,
		Priority: PriorityForCategory(category),
	}
}

func atoiLoose(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
