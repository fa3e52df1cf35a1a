package goals

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryLearning Category = "learning"
	CategoryFinance  Category = "finance"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryHealth, CategoryLearning, CategoryFinance:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusPaused, StatusCancelled:
		return true
	}
	return false
}

// Goal owns its subtasks and its derived progress. Deadline and Priority
// are fixed at creation.
type Goal struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Category    Category      `json:"category"`
	Priority    Priority      `json:"priority"`
	Deadline    time.Time     `json:"deadline"`
	Progress    float64       `json:"progress"`
	Status      Status        `json:"status"`
	Subtasks    []GoalSubtask `json:"subtasks"`
	CreatedAt   time.Time     `json:"createdAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}

type GoalSubtask struct {
	ID             uuid.UUID  `json:"id"`
	GoalID         uuid.UUID  `json:"goalId"`
	Title          string     `json:"title"`
	Completed      bool       `json:"completed"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	EstimatedHours float64    `json:"estimatedHours,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type CreateGoalInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Priority    Priority  `json:"priority"`
	Deadline    time.Time `json:"deadline"`
}

type CreateSubtaskInput struct {
	Title          string     `json:"title"`
	Deadline       *time.Time `json:"deadline"`
	EstimatedHours float64    `json:"estimatedHours"`
}
