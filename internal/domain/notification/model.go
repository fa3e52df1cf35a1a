package notification

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the type of notification
type Type string

const (
	General       Type = "general"
	Reminder      Type = "reminder"
	FocusComplete Type = "focus_complete"
	BreakComplete Type = "break_complete"
	HabitStreak   Type = "habit_streak"
	GoalCompleted Type = "goal_completed"
)

// Notification is a transient alert. It is delivered, never stored.
type Notification struct {
	ID        uuid.UUID         `json:"id"`
	Type      Type              `json:"type"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Reference string            `json:"reference,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// New builds a notification stamped with a fresh id.
func New(notificationType Type, title, content string) *Notification {
	return &Notification{
		ID:        uuid.New(),
		Type:      notificationType,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}
