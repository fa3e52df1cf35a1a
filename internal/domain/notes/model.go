package notes

import (
	"time"

	"github.com/google/uuid"
)

// MaxContentLength bounds a single scratchpad note.
const MaxContentLength = 20000

// Note is the focus scratchpad. Only the first stored note is edited.
type Note struct {
	ID           uuid.UUID `json:"id"`
	Content      string    `json:"content"`
	LastModified time.Time `json:"lastModified"`
}
