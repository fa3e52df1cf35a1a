package journal

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinMood     = 1
	MaxMood     = 5
	DefaultMood = 3
)

// Entry is the journal page for one calendar day.
type Entry struct {
	ID         uuid.UUID `json:"id"`
	Date       string    `json:"date"`
	Mood       int       `json:"mood"`
	Highlights string    `json:"highlights"`
	Challenges string    `json:"challenges"`
	Gratitude  string    `json:"gratitude"`
	Tomorrow   string    `json:"tomorrow"`
	Reflection string    `json:"reflection"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SaveEntryInput upserts the entry for Date. Zero Mood means DefaultMood.
type SaveEntryInput struct {
	Date       string `json:"date"`
	Mood       int    `json:"mood"`
	Highlights string `json:"highlights"`
	Challenges string `json:"challenges"`
	Gratitude  string `json:"gratitude"`
	Tomorrow   string `json:"tomorrow"`
	Reflection string `json:"reflection"`
}
