package planner

import "testing"

func TestParseClockRoundTrip(t *testing.T) {
	for _, input := range []string{"00:00", "09:00", "14:30", "23:59"} {
		c, err := ParseClock(input)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", input, err)
		}
		if got := c.Add(0).Format(); got != input {
			t.Errorf("round trip %q: got %q", input, got)
		}
	}
}

func TestParseClockRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "9", "9:0:0x", "24:00", "12:60", "ab:cd", "-1:30"} {
		if _, err := ParseClock(input); err == nil {
			t.Errorf("ParseClock(%q): expected error", input)
		}
	}
}

func TestClockArithmetic(t *testing.T) {
	c, _ := ParseClock("14:30")
	if got := c.Add(45).Format(); got != "15:15" {
		t.Errorf("14:30 + 45min: got %q, want 15:15", got)
	}

	start, _ := ParseClock("09:00")
	end, _ := ParseClock("17:00")
	if diff := end.Sub(start); diff != 480 {
		t.Errorf("17:00 - 09:00: got %d minutes, want 480", diff)
	}
}
