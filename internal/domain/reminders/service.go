package reminders

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/focusflow/focusflow/internal/domain/notification"
	"github.com/focusflow/focusflow/pkg/timeutil"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrReminderNotFound = errors.New("reminder not found")
	ErrInvalidInput     = errors.New("invalid input")
)

type Service interface {
	AddReminder(ctx context.Context, input CreateReminderInput) (*Reminder, error)
	// ListReminders returns upcoming reminders by due time, then completed ones.
	ListReminders(ctx context.Context) []Reminder
	ToggleReminder(ctx context.Context, id uuid.UUID) (*Reminder, error)
	DeleteReminder(ctx context.Context, id uuid.UUID) error
	// CheckDue fires every reminder that came due since the previous check.
	CheckDue(ctx context.Context, now time.Time) ([]Reminder, error)
}

type service struct {
	mu        sync.Mutex
	repo      Repository
	notifier  notification.Service
	clock     timeutil.Clock
	logger    *zap.Logger
	lastCheck time.Time
}

// NewService creates the reminder service. notifier may be nil.
func NewService(repo Repository, notifier notification.Service, clock timeutil.Clock, logger *zap.Logger) Service {
	if clock == nil {
		clock = timeutil.SystemClock
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, notifier: notifier, clock: clock, logger: logger}
}

func (s *service) AddReminder(ctx context.Context, input CreateReminderInput) (*Reminder, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}
	now := s.clock()
	r := Reminder{
		ID:          uuid.New(),
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Date:        strings.TrimSpace(input.Date),
		Time:        strings.TrimSpace(input.Time),
		Recurring:   input.Recurring,
	}
	if r.Date == "" {
		r.Date = timeutil.DateString(now)
	}
	if r.Time == "" {
		r.Time = timeutil.TimeString(now)
	}
	if r.Recurring == "" {
		r.Recurring = RecurNone
	}
	if !r.Recurring.IsValid() {
		return nil, ErrInvalidInput
	}
	if _, err := DueAt(r, now.Location()); err != nil {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := append(s.repo.FindAll(ctx), r)
	if err := s.repo.SaveAll(ctx, all); err != nil {
		return nil, err
	}
	s.logger.Info("Reminder added",
		zap.String("reminder_id", r.ID.String()),
		zap.String("date", r.Date),
		zap.String("time", r.Time),
	)
	return &r, nil
}

func (s *service) ListReminders(ctx context.Context) []Reminder {
	loc := s.clock().Location()
	all := s.repo.FindAll(ctx)

	var upcoming, completed []Reminder
	for _, r := range all {
		if r.Completed {
			completed = append(completed, r)
		} else {
			upcoming = append(upcoming, r)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		a, _ := DueAt(upcoming[i], loc)
		b, _ := DueAt(upcoming[j], loc)
		return a.Before(b)
	})

	result := make([]Reminder, 0, len(all))
	result = append(result, upcoming...)
	return append(result, completed...)
}

func (s *service) ToggleReminder(ctx context.Context, id uuid.UUID) (*Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.FindAll(ctx)
	for i := range all {
		if all[i].ID == id {
			all[i].Completed = !all[i].Completed
			if err := s.repo.SaveAll(ctx, all); err != nil {
				return nil, err
			}
			r := all[i]
			return &r, nil
		}
	}
	return nil, ErrReminderNotFound
}

func (s *service) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.FindAll(ctx)
	kept := make([]Reminder, 0, len(all))
	for _, r := range all {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(all) {
		return ErrReminderNotFound
	}
	return s.repo.SaveAll(ctx, kept)
}

func (s *service) CheckDue(ctx context.Context, now time.Time) ([]Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	window := FirstWindow(now)
	if !s.lastCheck.IsZero() && s.lastCheck.Before(now) {
		window = Window{From: s.lastCheck, To: now}
	}

	all := s.repo.FindAll(ctx)
	var fired []Reminder
	for i := range all {
		if !InWindow(all[i], window) {
			continue
		}
		firedAt := now
		all[i].LastFiredAt = &firedAt
		fired = append(fired, all[i])
		Advance(&all[i], now)
	}
	if len(fired) == 0 {
		s.lastCheck = now
		return nil, nil
	}

	// lastCheck stays put on failure so the next check retries this window.
	if err := s.repo.SaveAll(ctx, all); err != nil {
		return nil, err
	}
	s.lastCheck = now
	for _, r := range fired {
		s.notify(ctx, r)
	}
	s.logger.Info("Reminders fired", zap.Int("count", len(fired)), zap.Time("window_start", window.From))
	return fired, nil
}

func (s *service) notify(ctx context.Context, r Reminder) {
	if s.notifier == nil {
		return
	}
	body := r.Description
	if body == "" {
		body = "Reminder notification"
	}
	n := notification.New(notification.Reminder, r.Title, body)
	n.Reference = r.ID.String()
	s.notifier.Notify(ctx, n)
}
