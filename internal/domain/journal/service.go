package journal

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/focusflow/focusflow/pkg/timeutil"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEntryNotFound = errors.New("journal entry not found")
	ErrInvalidMood   = errors.New("mood must be between 1 and 5")
	ErrInvalidDate   = errors.New("date must be YYYY-MM-DD")
)

type Service interface {
	// SaveEntry creates or replaces the entry for input.Date (today when empty).
	SaveEntry(ctx context.Context, input SaveEntryInput) (*Entry, error)
	GetEntry(ctx context.Context, date string) (*Entry, error)
	// ListEntries returns entries newest first.
	ListEntries(ctx context.Context) []Entry
	DeleteEntry(ctx context.Context, date string) error
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

func (s *service) SaveEntry(ctx context.Context, input SaveEntryInput) (*Entry, error) {
	now := s.clock()
	date := input.Date
	if date == "" {
		date = timeutil.DateString(now)
	}
	if _, err := time.Parse(timeutil.DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	mood := input.Mood
	if mood == 0 {
		mood = DefaultMood
	}
	if mood < MinMood || mood > MaxMood {
		return nil, ErrInvalidMood
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.FindAll(ctx)
	idx := -1
	for i := range all {
		if all[i].Date == date {
			idx = i
			break
		}
	}

	entry := Entry{
		ID:         uuid.New(),
		Date:       date,
		Mood:       mood,
		Highlights: input.Highlights,
		Challenges: input.Challenges,
		Gratitude:  input.Gratitude,
		Tomorrow:   input.Tomorrow,
		Reflection: input.Reflection,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if idx >= 0 {
		entry.ID = all[idx].ID
		entry.CreatedAt = all[idx].CreatedAt
		all[idx] = entry
	} else {
		all = append(all, entry)
	}

	if err := s.repo.SaveAll(ctx, all); err != nil {
		return nil, err
	}
	s.logger.Info("Journal entry saved", zap.String("date", date), zap.Bool("created", idx < 0))
	return &entry, nil
}

func (s *service) GetEntry(ctx context.Context, date string) (*Entry, error) {
	for _, e := range s.repo.FindAll(ctx) {
		if e.Date == date {
			entry := e
			return &entry, nil
		}
	}
	return nil, ErrEntryNotFound
}

func (s *service) ListEntries(ctx context.Context) []Entry {
	all := s.repo.FindAll(ctx)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date > all[j].Date
	})
	return all
}

func (s *service) DeleteEntry(ctx context.Context, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.FindAll(ctx)
	kept := make([]Entry, 0, len(all))
	for _, e := range all {
		if e.Date != date {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(all) {
		return ErrEntryNotFound
	}
	return s.repo.SaveAll(ctx, kept)
}
