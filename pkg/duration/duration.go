// Package duration converts free-form service duration text ("1 hour 30
// minutes", "45 min") into whole minutes and computes appointment end times.
package duration

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultMinutes is reserved when the duration text is absent or malformed.
// A booking is never rejected for a bad duration; the minimal block wins.
const DefaultMinutes = 30

// Result carries the parsed minutes and whether the default was applied, so
// the booking layer can decide to log the defaulting.
type Result struct {
	Minutes   int
	Defaulted bool
}

// Parse accepts "<int> hour[s] [<int> minute[s]]" or "<int> minute[s]",
// case-insensitive and whitespace-tolerant. Tokens are consumed pairwise:
// a numeric value followed by a unit whose prefix matches "hour" or "min".
// Anything else, and any non-positive sum, yields the default.
func Parse(text string) Result {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	if len(fields) == 0 || len(fields)%2 != 0 {
		return Result{Minutes: DefaultMinutes, Defaulted: true}
	}

	total := 0
	for i := 0; i < len(fields); i += 2 {
		value, err := strconv.Atoi(fields[i])
		if err != nil {
			return Result{Minutes: DefaultMinutes, Defaulted: true}
		}

		unit := strings.TrimRight(fields[i+1], ".,;")
		switch {
		case strings.HasPrefix(unit, "hour"), strings.HasPrefix(unit, "hr"):
			total += value * 60
		case strings.HasPrefix(unit, "min"):
			total += value
		default:
			return Result{Minutes: DefaultMinutes, Defaulted: true}
		}
	}

	if total <= 0 {
		return Result{Minutes: DefaultMinutes, Defaulted: true}
	}
	return Result{Minutes: total}
}

// ParseClock splits an "HH:MM" string into its minute-of-day value.
func ParseClock(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", hhmm)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", hhmm)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid minute in %q", hhmm)
	}
	return hour*60 + minute, nil
}

// EndTime adds minutes to an "HH:MM" start and formats the zero-padded
// result. The hour component may reach or exceed 24; callers reject
// cross-midnight results via CrossesMidnight before constructing an
// appointment.
func EndTime(startHHMM string, minutes int) (string, error) {
	start, err := ParseClock(startHHMM)
	if err != nil {
		return "", err
	}
	end := start + minutes
	return fmt.Sprintf("%02d:%02d", end/60, end%60), nil
}

// CrossesMidnight reports whether an end time computed by EndTime spilled
// past the end of the calendar day.
func CrossesMidnight(endHHMM string) bool {
	parts := strings.SplitN(endHHMM, ":", 2)
	if len(parts) != 2 {
		return false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	return hour >= 24
}
