package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateHabitRequest represents the request to create a new habit
type CreateHabitRequest struct {
	Name            string `json:"name" validate:"required,not_empty,max=200"`
	Description     string `json:"description" validate:"max=1000"`
	Category        string `json:"category" validate:"omitempty,oneof=health work personal learning fitness"`
	TargetFrequency string `json:"targetFrequency" validate:"omitempty,oneof=daily weekly"`
	TargetCount     int    `json:"targetCount" validate:"min=0"`
	Color           string `json:"color"`
	Icon            string `json:"icon"`
}

// HabitResponse represents a habit in API responses
type HabitResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	TargetFrequency string    `json:"targetFrequency"`
	TargetCount     int       `json:"targetCount"`
	Color           string    `json:"color"`
	Icon            string    `json:"icon"`
	Streak          int       `json:"streak"`
	XP              int       `json:"xp"`
	CompletedToday  bool      `json:"completedToday"`
	CreatedAt       time.Time `json:"createdAt"`
}

// HabitListResponse represents the response for listing habits
type HabitListResponse struct {
	Habits         []HabitResponse `json:"habits"`
	TotalCount     int             `json:"totalCount"`
	CompletedToday int             `json:"completedToday"`
	TotalXP        int             `json:"totalXp"`
}

// HabitToggleResponse reports the outcome of flipping today's completion.
type HabitToggleResponse struct {
	Habit       HabitResponse `json:"habit"`
	Completed   bool          `json:"completed"`
	XPDelta     int           `json:"xpDelta"`
	BonusEarned bool          `json:"bonusEarned"`
}

// HeatmapQuery selects the heatmap window.
type HeatmapQuery struct {
	Period string `form:"period" validate:"omitempty,oneof=week month year"`
}

// HeatmapResponse represents habit completion heatmap data
type HeatmapResponse struct {
	Data     map[string]int `json:"data"`
	Period   string         `json:"period"`
	MinValue int            `json:"minValue"`
	MaxValue int            `json:"maxValue"`
}
