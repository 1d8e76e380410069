package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// ParseDate validates an ISO calendar date and returns its weekday
// (0 = Sunday ... 6 = Saturday). Dates are naive wall-clock values; no
// timezone handling is performed anywhere in the evaluator.
func ParseDate(date string) (int, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	return int(t.Weekday()), nil
}

// ParseSlot converts a 12-hour slot label such as "9:00 AM" or "12:00 PM"
// to minutes since midnight.
func ParseSlot(label string) (int, error) {
	parts := strings.Fields(label)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time slot %q", label)
	}
	modifier := strings.ToUpper(parts[1])
	if modifier != "AM" && modifier != "PM" {
		return 0, fmt.Errorf("invalid time slot %q", label)
	}

	hm := strings.SplitN(parts[0], ":", 2)
	if len(hm) != 2 {
		return 0, fmt.Errorf("invalid time slot %q", label)
	}
	hours, err := strconv.Atoi(hm[0])
	if err != nil || hours < 1 || hours > 12 {
		return 0, fmt.Errorf("invalid time slot %q", label)
	}
	mins, err := strconv.Atoi(hm[1])
	if err != nil || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("invalid time slot %q", label)
	}

	if hours == 12 {
		hours = 0
	}
	if modifier == "PM" {
		hours += 12
	}
	return hours*60 + mins, nil
}

// ParseClock converts an "HH:MM" wall-clock string to minutes since midnight.
func ParseClock(clock string) (int, error) {
	hm := strings.SplitN(clock, ":", 2)
	if len(hm) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", clock)
	}
	hours, err := strconv.Atoi(hm[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", clock)
	}
	mins, err := strconv.Atoi(hm[1])
	if err != nil || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", clock)
	}
	return hours*60 + mins, nil
}

// AddMinutes advances a minutes-since-midnight value, rolling over the day
// boundary so very long services still yield a well-formed end time.
func AddMinutes(start, minutes int) int {
	return (start + minutes) % minutesPerDay
}

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// collide. End values are taken pre-modulo so an interval that crosses
// midnight keeps its ordering.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	m := ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
