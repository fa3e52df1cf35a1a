package dto

import "github.com/focusflow/focusflow/internal/domain/tasks"

// CreateTaskRequest represents the request to add a planner task
type CreateTaskRequest struct {
	Text      string `json:"text" validate:"required,not_empty,max=500"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Priority  string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category  string `json:"category" validate:"max=50"`
}

// UpdateTaskRequest carries only the fields being changed
type UpdateTaskRequest struct {
	Text      *string `json:"text,omitempty" validate:"omitempty,not_empty,max=500"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Priority  *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Category  *string `json:"category,omitempty" validate:"omitempty,max=50"`
}

// TaskListResponse is the plan plus its completion percentage.
type TaskListResponse struct {
	Tasks    []tasks.Task `json:"tasks"`
	Progress float64      `json:"progress"`
}
