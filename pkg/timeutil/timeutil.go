// Package timeutil holds the calendar-day and clock helpers shared by the
// domain services. A calendar day is a YYYY-MM-DD string in the caller's
// location; a clock time is HH:MM.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Clock returns the current time. Services take a Clock so tests can pin "now".
type Clock func() time.Time

// SystemClock is the wall clock in the local zone.
func SystemClock() time.Time { return time.Now() }

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// InLocation wraps a clock so every reading is converted to loc.
func InLocation(c Clock, loc *time.Location) Clock {
	return func() time.Time { return c().In(loc) }
}

// DateString formats t as a calendar day in t's own location.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// TimeString formats t as HH:MM.
func TimeString(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseDate parses a YYYY-MM-DD day at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
}

// ParseDateTime combines a day and an HH:MM clock time in loc.
func ParseDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, strings.TrimSpace(date)+" "+strings.TrimSpace(clock), loc)
}

// WeekDates returns the seven calendar days ending at now, oldest first.
func WeekDates(now time.Time) []string {
	week := make([]string, 0, 7)
	for i := 6; i >= 0; i-- {
		week = append(week, DateString(now.AddDate(0, 0, -i)))
	}
	return week
}

// DaysUntil counts calendar days from now until deadline, rounding partial days up.
// A deadline in the past yields a negative number.
func DaysUntil(now, deadline time.Time) int {
	diff := deadline.Sub(now)
	days := diff.Hours() / 24
	n := int(days)
	if days > float64(n) {
		n++
	}
	return n
}

// FormatDuration renders a duration as MM:SS, the way the focus timer shows it.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
