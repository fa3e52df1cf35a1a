package focus

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/focusflow/focusflow/pkg/timeutil"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrTimerRunning     = errors.New("timer is running")
	ErrTimerNotRunning  = errors.New("timer is not running")
	ErrPresetNotAllowed = errors.New("preset not allowed")
	ErrInvalidSettings  = errors.New("invalid timer settings")
)

// Service keeps the focus session log.
type Service interface {
	RecordSession(ctx context.Context, input RecordSessionInput) (*Session, error)
	ListSessions(ctx context.Context) []Session
	// TotalFocusMinutes sums the durations of completed sessions.
	TotalFocusMinutes(ctx context.Context) int
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

func (s *service) RecordSession(ctx context.Context, input RecordSessionInput) (*Session, error) {
	if input.Type == "" {
		input.Type = SessionWork
	}
	if !input.Type.IsValid() || input.Duration <= 0 {
		return nil, ErrInvalidInput
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = "general"
	}

	start := input.StartTime
	if start.IsZero() {
		start = s.clock().Add(-time.Duration(input.Duration) * time.Minute)
	}
	session := Session{
		ID:        uuid.New(),
		Type:      input.Type,
		Category:  category,
		Duration:  input.Duration,
		StartTime: start,
		EndTime:   start.Add(time.Duration(input.Duration) * time.Minute),
		Completed: input.Completed,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := append(s.repo.FindAll(ctx), session)
	if err := s.repo.SaveAll(ctx, all); err != nil {
		return nil, err
	}
	s.logger.Info("Focus session recorded",
		zap.String("type", string(session.Type)),
		zap.Int("duration", session.Duration),
		zap.Bool("completed", session.Completed),
	)
	return &session, nil
}

func (s *service) ListSessions(ctx context.Context) []Session {
	return s.repo.FindAll(ctx)
}

func (s *service) TotalFocusMinutes(ctx context.Context) int {
	total := 0
	for _, session := range s.repo.FindAll(ctx) {
		if session.Completed {
			total += session.Duration
		}
	}
	return total
}
