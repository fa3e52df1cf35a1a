package dto

// CreateReminderRequest schedules a reminder
type CreateReminderRequest struct {
	Title       string `json:"title" validate:"required,not_empty,max=200"`
	Description string `json:"description" validate:"max=1000"`
	Date        string `json:"date" validate:"required,day"`
	Time        string `json:"time" validate:"required,clock"`
	Recurring   string `json:"recurring" validate:"omitempty,oneof=none daily weekly monthly"`
}
