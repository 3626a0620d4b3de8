package utils

import (
	"fmt"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"SUNDAY":    time.Sunday,
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
}

// NextWeekday resolves a weekday name to its next calendar occurrence on or
// after the reference time. A reference falling on the named day resolves to
// the reference date itself.
func NextWeekday(day string, from time.Time) (time.Time, error) {
	target, ok := weekdays[strings.ToUpper(day)]
	if !ok {
		return time.Time{}, fmt.Errorf("invalid day: %s", day)
	}

	daysAhead := (int(target) - int(from.Weekday()) + 7) % 7
	next := from.AddDate(0, 0, daysAhead)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, next.Location()), nil
}

// CombineClock attaches a "15:04" clock time to a calendar date.
func CombineClock(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM: %v", clock, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
