package dto

// SaveJournalRequest creates or replaces the entry for a day
type SaveJournalRequest struct {
	Date       string `json:"date" validate:"omitempty,day"`
	Mood       int    `json:"mood" validate:"omitempty,min=1,max=5"`
	Highlights string `json:"highlights" validate:"max=5000"`
	Challenges string `json:"challenges" validate:"max=5000"`
	Gratitude  string `json:"gratitude" validate:"max=5000"`
	Tomorrow   string `json:"tomorrow" validate:"max=5000"`
	Reflection string `json:"reflection" validate:"max=5000"`
}
