package notification

import "errors"

var (
	// ErrPermissionDenied is returned when the host refused notification permission.
	ErrPermissionDenied = errors.New("notification permission denied")
	// ErrEmptyTopic is returned when publishing without a topic
	ErrEmptyTopic = errors.New("no topic found")
)
