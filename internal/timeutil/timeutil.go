package timeutil

import (
	"fmt"
	"time"
)

// DayWindow represents a calendar-day interval [Start, End).
type DayWindow struct {
	Start time.Time
	End   time.Time
}

// DayWindowUTC returns the UTC window covering the calendar day of t.
func DayWindowUTC(t time.Time) DayWindow {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return DayWindow{Start: start, End: start.AddDate(0, 0, 1)}
}

// TomorrowWindowUTC returns the UTC window for the calendar day after now.
func TomorrowWindowUTC(now time.Time) DayWindow {
	return DayWindowUTC(now.UTC().AddDate(0, 0, 1))
}

// FormatDate renders a slot date for outgoing email.
func FormatDate(date time.Time) string {
	return date.Format("Monday, 02 Jan 2006")
}

// FormatSlotForUser formats a slot date plus "HH:MM" bounds into a single
// human-readable string.
func FormatSlotForUser(date time.Time, startTime, endTime string) string {
	return fmt.Sprintf("%s, %s–%s", FormatDate(date), startTime, endTime)
}
