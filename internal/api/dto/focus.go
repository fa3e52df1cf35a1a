package dto

import (
	"time"

	"github.com/focusflow/focusflow/internal/domain/focus"
)

// RecordSessionRequest records a finished focus or break session
type RecordSessionRequest struct {
	Type      string     `json:"type" validate:"omitempty,oneof=work study break"`
	Category  string     `json:"category" validate:"max=50"`
	Duration  int        `json:"duration" validate:"required,min=1,max=1440"`
	StartTime *time.Time `json:"startTime"`
	Completed *bool      `json:"completed"`
}

// SessionListResponse lists sessions with the completed focus total.
type SessionListResponse struct {
	Sessions          []focus.Session `json:"sessions"`
	TotalFocusMinutes int             `json:"totalFocusMinutes"`
}

// SelectPresetRequest picks a work duration for the pomodoro timer
type SelectPresetRequest struct {
	Minutes int `json:"minutes" validate:"required,min=1"`
}

// UpdateTimerSettingsRequest replaces the pomodoro lengths, in minutes
type UpdateTimerSettingsRequest struct {
	WorkMinutes            int `json:"workMinutes" validate:"required,min=1,max=180"`
	ShortBreakMinutes      int `json:"shortBreakMinutes" validate:"required,min=1,max=60"`
	LongBreakMinutes       int `json:"longBreakMinutes" validate:"required,min=1,max=120"`
	SessionsUntilLongBreak int `json:"sessionsUntilLongBreak" validate:"required,min=1,max=12"`
}

// SaveNoteRequest replaces the focus scratchpad. Empty content clears it.
type SaveNoteRequest struct {
	Content string `json:"content" validate:"max=20000"`
}
