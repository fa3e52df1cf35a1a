package habits

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryHealth   Category = "health"
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryLearning Category = "learning"
	CategoryFitness  Category = "fitness"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryHealth, CategoryWork, CategoryPersonal, CategoryLearning, CategoryFitness:
		return true
	}
	return false
}

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

func (f Frequency) IsValid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly
}

// Habit carries its own streak and xp counters. Only the engine changes them.
type Habit struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Category        Category  `json:"category"`
	TargetFrequency Frequency `json:"targetFrequency"`
	TargetCount     int       `json:"targetCount"`
	Color           string    `json:"color"`
	Icon            string    `json:"icon"`
	CreatedAt       time.Time `json:"createdAt"`
	Streak          int       `json:"streak"`
	XP              int       `json:"xp"`
}

// HabitCompletion marks a habit done on one calendar day. There is at most
// one per (HabitID, Date).
type HabitCompletion struct {
	ID        uuid.UUID `json:"id"`
	HabitID   uuid.UUID `json:"habitId"`
	Date      string    `json:"date"`
	Completed bool      `json:"completed"`
	Timestamp time.Time `json:"timestamp"`
}

// CreateHabitInput represents the input for creating a new habit
type CreateHabitInput struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        Category  `json:"category"`
	TargetFrequency Frequency `json:"targetFrequency"`
	TargetCount     int       `json:"targetCount"`
	Color           string    `json:"color"`
	Icon            string    `json:"icon"`
}
