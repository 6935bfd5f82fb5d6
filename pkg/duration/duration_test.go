package duration

import (
	"fmt"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		minutes   int
		defaulted bool
	}{
		{"minutes only", "30 minutes", 30, false},
		{"single minute", "1 minute", 1, false},
		{"min abbreviation", "45 min", 45, false},
		{"hours only", "2 hours", 120, false},
		{"single hour", "1 hour", 60, false},
		{"hr abbreviation", "1 hr", 60, false},
		{"hours and minutes", "1 hour 30 minutes", 90, false},
		{"two hours fifteen", "2 hours 15 minutes", 135, false},
		{"uppercase", "1 HOUR 15 MINUTES", 75, false},
		{"extra whitespace", "  1   hour   30   minutes  ", 90, false},
		{"trailing punctuation", "30 mins.", 30, false},
		{"empty", "", DefaultMinutes, true},
		{"garbage", "soon", DefaultMinutes, true},
		{"odd token count", "1 hour 30", DefaultMinutes, true},
		{"non-numeric value", "one hour", DefaultMinutes, true},
		{"unknown unit", "30 parsecs", DefaultMinutes, true},
		{"zero sum", "0 minutes", DefaultMinutes, true},
		{"negative", "-15 minutes", DefaultMinutes, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got.Minutes != tt.minutes {
				t.Errorf("Parse(%q).Minutes = %d, want %d", tt.input, got.Minutes, tt.minutes)
			}
			if got.Defaulted != tt.defaulted {
				t.Errorf("Parse(%q).Defaulted = %v, want %v", tt.input, got.Defaulted, tt.defaulted)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"09:05", 545, false},
		{"18:00", 1080, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9:5", 0, true},
		{"09", 0, true},
		{"09:60", 0, true},
		{"-1:00", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) expected error, got %d", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.minutes {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.input, got, tt.minutes)
		}
	}
}

func TestEndTime(t *testing.T) {
	tests := []struct {
		start   string
		minutes int
		want    string
	}{
		{"10:00", 30, "10:30"},
		{"10:00", 5, "10:05"},
		{"09:55", 10, "10:05"},
		{"17:55", 5, "18:00"},
		{"23:30", 60, "24:30"},
		{"23:00", 120, "25:00"},
	}

	for _, tt := range tests {
		got, err := EndTime(tt.start, tt.minutes)
		if err != nil {
			t.Errorf("EndTime(%q, %d) unexpected error: %v", tt.start, tt.minutes, err)
			continue
		}
		if got != tt.want {
			t.Errorf("EndTime(%q, %d) = %q, want %q", tt.start, tt.minutes, got, tt.want)
		}
	}

	if _, err := EndTime("25:00", 30); err == nil {
		t.Error("EndTime with invalid start expected error")
	}
}

func TestCrossesMidnight(t *testing.T) {
	tests := []struct {
		end  string
		want bool
	}{
		{"10:30", false},
		{"23:59", false},
		{"24:00", true},
		{"24:30", true},
		{"25:15", true},
	}

	for _, tt := range tests {
		if got := CrossesMidnight(tt.end); got != tt.want {
			t.Errorf("CrossesMidnight(%q) = %v, want %v", tt.end, got, tt.want)
		}
	}
}

// Parsing "X minutes" and adding X directly must land on the same end time
// for every bookable length up to a full day.
func TestParseEndTimeRoundTrip(t *testing.T) {
	for x := 1; x <= 1440; x++ {
		text := fmt.Sprintf("%d minutes", x)
		parsed := Parse(text)
		if parsed.Defaulted {
			t.Fatalf("Parse(%q) unexpectedly defaulted", text)
		}

		viaParse, err := EndTime("09:00", parsed.Minutes)
		if err != nil {
			t.Fatalf("EndTime with parsed minutes failed: %v", err)
		}
		direct, err := EndTime("09:00", x)
		if err != nil {
			t.Fatalf("EndTime with literal minutes failed: %v", err)
		}
		if viaParse != direct {
			t.Fatalf("round-trip mismatch for %d minutes: %q != %q", x, viaParse, direct)
		}
	}
}
