package assistant

import (
	"time"

	"github.com/google/uuid"
)

// Message is one chat line. IsUser is false for assistant replies.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}

// FallbackReply is stored in place of a reply when the responder fails.
const FallbackReply = "I apologize, but I encountered an error processing your request. Please try again or rephrase your question."

// Tab names the screen a voice command switches to.
type Tab string

const (
	TabAssistant Tab = "assistant"
	TabPlanner   Tab = "planner"
	TabStudy     Tab = "study"
	TabReminders Tab = "reminders"
	TabHabits    Tab = "habits"
	TabGoals     Tab = "goals"
	TabAnalytics Tab = "analytics"
	TabJournal   Tab = "journal"
)
