package reminders

import (
	"time"

	"github.com/focusflow/focusflow/pkg/timeutil"
)

// DueAt resolves the reminder's date and time in loc.
func DueAt(r Reminder, loc *time.Location) (time.Time, error) {
	return timeutil.ParseDateTime(r.Date, r.Time, loc)
}

// ExactMinuteDue reports whether r is due in the very minute now falls in.
// A check that misses that minute never fires the reminder.
func ExactMinuteDue(r Reminder, now time.Time) bool {
	return !r.Completed &&
		r.Date == timeutil.DateString(now) &&
		r.Time == timeutil.TimeString(now)
}

// Window is the half-open interval (From, To] a due-check covers.
type Window struct {
	From time.Time
	To   time.Time
}

// FirstWindow covers only the minute now falls in.
func FirstWindow(now time.Time) Window {
	start := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), 0, 0, now.Location())
	return Window{From: start.Add(-time.Nanosecond), To: now}
}

func (w Window) Contains(t time.Time) bool {
	return t.After(w.From) && !t.After(w.To)
}

// InWindow reports whether r should fire for w. A reminder that already
// fired at or after its due time is skipped.
func InWindow(r Reminder, w Window) bool {
	if r.Completed {
		return false
	}
	due, err := DueAt(r, w.To.Location())
	if err != nil || !w.Contains(due) {
		return false
	}
	return r.LastFiredAt == nil || r.LastFiredAt.Before(due)
}

// Advance moves a recurring reminder to its first occurrence after now.
// It returns false for one-off reminders.
func Advance(r *Reminder, now time.Time) bool {
	if r.Recurring == "" || r.Recurring == RecurNone {
		return false
	}
	due, err := DueAt(*r, now.Location())
	if err != nil {
		return false
	}
	for !due.After(now) {
		switch r.Recurring {
		case RecurDaily:
			due = due.AddDate(0, 0, 1)
		case RecurWeekly:
			due = due.AddDate(0, 0, 7)
		case RecurMonthly:
			due = due.AddDate(0, 1, 0)
		default:
			return false
		}
	}
	r.Date = timeutil.DateString(due)
	return true
}
