package events

import (
	"time"
)

// Store event types
const (
	EventTypeStoreWrite   = "store_write"
	EventTypeStoreDelete  = "store_delete"
	EventTypeNotification = "notification"
)

// StoreEvent is published after a collection in the persistent store changes.
// Details carries notification payloads for EventTypeNotification.
type StoreEvent struct {
	EventType string      `json:"event_type"`
	Key       string      `json:"key"`
	Source    string      `json:"source,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Details   interface{} `json:"details,omitempty"`
}

// Handler receives store events.
type Handler func(StoreEvent)
