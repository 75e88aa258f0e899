// Package planner implements the TimePlan scheduling engine: pure,
// deterministic transformations from tasks and preferences to time-blocked
// plans. Nothing in this package performs I/O or mutates its inputs.
package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/timeplan/backend/domain"
)

// Clock is a wall-clock time of day measured in minutes since midnight.
type Clock int

// ParseClock converts an "HH:MM" string into a Clock. Input validation for
// user-supplied settings happens at the transport boundary; the schedulers
// assume well-formed values.
func ParseClock(s string) (Clock, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, domain.ErrInvalidTime
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, domain.ErrInvalidTime
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, domain.ErrInvalidTime
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, domain.ErrInvalidTime
	}
	return Clock(hours*60 + minutes), nil
}

// Format renders the clock back to 24-hour "HH:MM". Values past midnight
// wrap around, matching wall-clock display.
func (c Clock) Format() string {
	total := int(c)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60%24, total%60)
}

// Add advances the clock by n minutes.
func (c Clock) Add(n int) Clock {
	return c + Clock(n)
}

// Sub returns the whole-minute difference c - other.
func (c Clock) Sub(other Clock) int {
	return int(c - other)
}
