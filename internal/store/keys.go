package store

// Top-level collection keys. Each key holds one JSON document.
const (
	KeyMessages         = "focusflow-messages"
	KeyTasks            = "focusflow-tasks"
	KeyReminders        = "focusflow-reminders"
	KeyHabits           = "focusflow-habits"
	KeyHabitCompletions = "focusflow-habit-completions"
	KeyGoals            = "focusflow-goals"
	KeyJournal          = "focusflow-journal"
	KeyFocusSessions    = "focusflow-focus-sessions"
	KeyNotes            = "focusflow-notes"
	KeyTheme            = "focusflow-theme"
)

// AllKeys lists every collection key, used by export and reset tooling.
var AllKeys = []string{
	KeyMessages,
	KeyTasks,
	KeyReminders,
	KeyHabits,
	KeyHabitCompletions,
	KeyGoals,
	KeyJournal,
	KeyFocusSessions,
	KeyNotes,
	KeyTheme,
}
