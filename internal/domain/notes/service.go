package notes

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/focusflow/focusflow/pkg/timeutil"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrNoteTooLong  = errors.New("note is too long")
)

type Service interface {
	// Current returns the scratchpad note, ErrNoteNotFound before the first save.
	Current(ctx context.Context) (*Note, error)
	// Save replaces the scratchpad content, keeping its id.
	Save(ctx context.Context, content string) (*Note, error)
}

type service struct {
	mu     sync.Mutex
	repo   Repository
	clock  timeutil.Clock
	logger *zap.Logger
}

func NewService(repo Repository, clock timeutil.Clock, logger *zap.Logger) Service {
	if clock == nil {
		clock = timeutil.SystemClock
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, clock: clock, logger: logger}
}

func (s *service) Current(ctx context.Context) (*Note, error) {
	all := s.repo.FindAll(ctx)
	if len(all) == 0 {
		return nil, ErrNoteNotFound
	}
	note := all[0]
	return &note, nil
}

func (s *service) Save(ctx context.Context, content string) (*Note, error) {
	if len(content) > MaxContentLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrNoteTooLong, len(content))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.FindAll(ctx)
	note := Note{ID: uuid.New(), Content: content, LastModified: s.clock()}
	created := len(all) == 0
	if created {
		all = []Note{note}
	} else {
		note.ID = all[0].ID
		all[0] = note
	}

	if err := s.repo.SaveAll(ctx, all); err != nil {
		return nil, fmt.Errorf("save note: %w", err)
	}
	s.logger.Debug("Note saved", zap.String("id", note.ID.String()), zap.Bool("created", created))
	return &note, nil
}
