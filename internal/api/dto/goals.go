package dto

import (
	"time"

	"github.com/focusflow/focusflow/internal/domain/goals"
)

// CreateGoalRequest represents the request to create a goal
type CreateGoalRequest struct {
	Title       string    `json:"title" validate:"required,not_empty,max=200"`
	Description string    `json:"description" validate:"max=2000"`
	Category    string    `json:"category" validate:"omitempty,oneof=work personal health learning finance"`
	Priority    string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Deadline    time.Time `json:"deadline" validate:"required"`
}

// CreateSubtaskRequest represents the request to add a subtask to a goal
type CreateSubtaskRequest struct {
	Title          string     `json:"title" validate:"required,not_empty,max=200"`
	Deadline       *time.Time `json:"deadline"`
	EstimatedHours float64    `json:"estimatedHours" validate:"min=0"`
}

// UpdateGoalStatusRequest moves a goal between states
type UpdateGoalStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active completed paused cancelled"`
}

// GoalResponse is a goal with the derived days-left count.
type GoalResponse struct {
	goals.Goal
	DaysLeft  int  `json:"daysLeft"`
	IsOverdue bool `json:"isOverdue"`
}
