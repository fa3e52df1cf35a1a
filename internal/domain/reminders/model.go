package reminders

import (
	"time"

	"github.com/google/uuid"
)

type Recurrence string

const (
	RecurNone    Recurrence = "none"
	RecurDaily   Recurrence = "daily"
	RecurWeekly  Recurrence = "weekly"
	RecurMonthly Recurrence = "monthly"
)

func (r Recurrence) IsValid() bool {
	switch r {
	case RecurNone, RecurDaily, RecurWeekly, RecurMonthly:
		return true
	}
	return false
}

// Reminder fires once at Date Time. Recurring reminders move forward after firing.
type Reminder struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Completed   bool       `json:"completed"`
	Recurring   Recurrence `json:"recurring"`
	LastFiredAt *time.Time `json:"lastFiredAt,omitempty"`
}

type CreateReminderInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Recurring   Recurrence `json:"recurring"`
}
