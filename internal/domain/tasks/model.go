package tasks

import (
	"github.com/google/uuid"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is one planner entry. StartTime and EndTime are free-form strings;
// tasks generated from a schedule carry "YYYY-MM-DD HH:MM".
type Task struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	StartTime string    `json:"startTime,omitempty"`
	EndTime   string    `json:"endTime,omitempty"`
	Priority  Priority  `json:"priority"`
	Category  string    `json:"category,omitempty"`
}

type CreateTaskInput struct {
	Text      string   `json:"text"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Priority  Priority `json:"priority"`
	Category  string   `json:"category"`
}

type UpdateTaskInput struct {
	Text      *string   `json:"text,omitempty"`
	StartTime *string   `json:"startTime,omitempty"`
	EndTime   *string   `json:"endTime,omitempty"`
	Priority  *Priority `json:"priority,omitempty"`
	Category  *string   `json:"category,omitempty"`
}
