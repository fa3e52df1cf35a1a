package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/focusflow/focusflow/internal/domain/focus"
	"github.com/focusflow/focusflow/internal/domain/reminders"
	"github.com/focusflow/focusflow/pkg/logger"
	"github.com/focusflow/focusflow/pkg/timeutil"
	"go.uber.org/zap"
)

const (
	DefaultReminderInterval = time.Minute
	DefaultTimerInterval    = time.Second
)

// Scheduler drives the reminder poll and the focus timer until its
// context is cancelled.
type Scheduler struct {
	reminderService  reminders.Service
	timer            *focus.Timer
	reminderInterval time.Duration
	timerInterval    time.Duration
	clock            timeutil.Clock
	logger           *logger.Logger
	wg               sync.WaitGroup
}

type Option func(*Scheduler)

func WithReminderInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.reminderInterval = d
		}
	}
}

func WithTimerInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.timerInterval = d
		}
	}
}

func WithClock(clock timeutil.Clock) Option {
	return func(s *Scheduler) { s.clock = clock }
}

// NewScheduler builds a scheduler. Either service may be nil to skip its loop.
func NewScheduler(reminderService reminders.Service, timer *focus.Timer, log *logger.Logger, opts ...Option) *Scheduler {
	if log == nil {
		log = logger.NewNop()
	}
	s := &Scheduler{
		reminderService:  reminderService,
		timer:            timer,
		reminderInterval: DefaultReminderInterval,
		timerInterval:    DefaultTimerInterval,
		clock:            timeutil.SystemClock,
		logger:           log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scheduler) Start(ctx context.Context) {
	if s.reminderService != nil {
		// Run immediately at startup
		s.checkReminders(ctx)

		s.logger.Info("Reminder scheduler initialized",
			zap.Time("current_time", s.clock()),
			zap.Duration("interval", s.reminderInterval),
		)
		s.loop(ctx, s.reminderInterval, s.checkReminders)
	}
	if s.timer != nil {
		s.loop(ctx, s.timerInterval, func(ctx context.Context) {
			s.timer.Tick(ctx, s.clock())
		})
	}
}

func (s *Scheduler) loop(ctx context.Context, interval time.Duration, fn func(context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn(ctx)
			}
		}
	}()
}

// Wait blocks until every loop has returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) checkReminders(ctx context.Context) {
	startTime := s.clock()

	fired, err := s.reminderService.CheckDue(ctx, startTime)
	if err != nil {
		s.logger.Error("Failed to check due reminders",
			zap.Error(err),
		)
		return
	}
	if len(fired) == 0 {
		return
	}

	s.logger.Info("Completed reminder check",
		zap.Int("fired", len(fired)),
		zap.Time("check_time", startTime),
		zap.Duration("duration", time.Since(startTime)),
	)
}
