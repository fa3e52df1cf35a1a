package dto

import (
	"time"

	"github.com/focusflow/focusflow/internal/domain/events"
	"github.com/focusflow/focusflow/internal/domain/notification"
	"github.com/google/uuid"
)

// Event stream message kinds.
const (
	EventKindNotification = "notification"
	EventKindStore        = "store"
)

// NotificationDTO represents a notification data transfer object
type NotificationDTO struct {
	ID        uuid.UUID         `json:"id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Data      map[string]string `json:"data,omitempty"`
	Reference string            `json:"reference,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// StreamMessage is one frame on the events websocket.
type StreamMessage struct {
	Kind         string           `json:"kind"`
	Notification *NotificationDTO `json:"notification,omitempty"`
	Key          string           `json:"key,omitempty"`
	EventType    string           `json:"eventType,omitempty"`
	Timestamp    time.Time        `json:"timestamp"`
}

// ToDTO converts a notification model to a DTO
func ToDTO(n *notification.Notification) *NotificationDTO {
	if n == nil {
		return nil
	}
	return &NotificationDTO{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Content:   n.Content,
		Data:      n.Data,
		Reference: n.Reference,
		CreatedAt: n.CreatedAt,
	}
}

// NotificationMessage wraps a notification for the stream.
func NotificationMessage(n *notification.Notification) StreamMessage {
	return StreamMessage{
		Kind:         EventKindNotification,
		Notification: ToDTO(n),
		Timestamp:    n.CreatedAt,
	}
}

// StoreMessage wraps a store change for the stream.
func StoreMessage(e events.StoreEvent) StreamMessage {
	return StreamMessage{
		Kind:      EventKindStore,
		Key:       e.Key,
		EventType: e.EventType,
		Timestamp: e.Timestamp,
	}
}
