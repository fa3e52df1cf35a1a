package focus

import (
	"time"

	"github.com/google/uuid"
)

type SessionType string

const (
	SessionWork  SessionType = "work"
	SessionStudy SessionType = "study"
	SessionBreak SessionType = "break"
)

func (t SessionType) IsValid() bool {
	switch t {
	case SessionWork, SessionStudy, SessionBreak:
		return true
	}
	return false
}

// Session is a finished or abandoned focus block. Duration is in minutes.
type Session struct {
	ID        uuid.UUID   `json:"id"`
	Type      SessionType `json:"type"`
	Category  string      `json:"category"`
	Duration  int         `json:"duration"`
	StartTime time.Time   `json:"startTime"`
	EndTime   time.Time   `json:"endTime"`
	Completed bool        `json:"completed"`
}

type RecordSessionInput struct {
	Type      SessionType `json:"type"`
	Category  string      `json:"category"`
	Duration  int         `json:"duration"`
	StartTime time.Time   `json:"startTime"`
	Completed bool        `json:"completed"`
}

type Phase string

const (
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "shortBreak"
	PhaseLongBreak  Phase = "longBreak"
)

// TimerSettings are the adjustable pomodoro lengths, in minutes.
type TimerSettings struct {
	WorkMinutes            int `json:"workMinutes"`
	ShortBreakMinutes      int `json:"shortBreakMinutes"`
	LongBreakMinutes       int `json:"longBreakMinutes"`
	SessionsUntilLongBreak int `json:"sessionsUntilLongBreak"`
}

// TimerState is the read-only view of the pomodoro timer.
type TimerState struct {
	Phase             Phase         `json:"phase"`
	Remaining         string        `json:"remaining"`
	RemainingSeconds  int           `json:"remainingSeconds"`
	Running           bool          `json:"running"`
	SessionsCompleted int           `json:"sessionsCompleted"`
	SessionsUntilLong int           `json:"sessionsUntilLongBreak"`
	Preset            int           `json:"preset"`
	Presets           []int         `json:"presets"`
	Settings          TimerSettings `json:"settings"`
}
