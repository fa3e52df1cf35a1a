package habits

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/focusflow/focusflow/pkg/timeutil"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrInvalidInput  = errors.New("invalid input")
)

type Service interface {
	CreateHabit(ctx context.Context, input CreateHabitInput) (*Habit, error)
	GetHabit(ctx context.Context, id uuid.UUID) (*Habit, error)
	ListHabits(ctx context.Context) []Habit
	// DeleteHabit removes the habit and every completion recorded for it.
	DeleteHabit(ctx context.Context, id uuid.UUID) error
	// ToggleHabit flips today's completion and updates streak and xp.
	ToggleHabit(ctx context.Context, id uuid.UUID) (*ToggleResult, error)
	ListCompletions(ctx context.Context) []HabitCompletion
	IsCompletedToday(ctx context.Context, id uuid.UUID) bool
	CompletedTodayCount(ctx context.Context) int
	TotalXP(ctx context.Context) int
	GetHeatmapData(ctx context.Context, period string) map[string]int
}

type service struct {
	// mu covers the habit list and the completion list together.
	mu        sync.Mutex
	repo      Repository
	notifySvc *HabitNotificationService
	policy    XPPolicy
	clock     timeutil.Clock
	logger    *zap.Logger
}

type Option func(*service)

func WithXPPolicy(policy XPPolicy) Option {
	return func(s *service) { s.policy = policy }
}

func WithClock(clock timeutil.Clock) Option {
	return func(s *service) { s.clock = clock }
}

func WithNotifications(notifySvc *HabitNotificationService) Option {
	return func(s *service) { s.notifySvc = notifySvc }
}

func NewService(repo Repository, logger *zap.Logger, opts ...Option) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &service{
		repo:   repo,
		policy: XPPolicySymmetric,
		clock:  timeutil.SystemClock,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) today() string {
	return timeutil.DateString(s.clock())
}

func (s *service) CreateHabit(ctx context.Context, input CreateHabitInput) (*Habit, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	if input.Category == "" {
		input.Category = CategoryHealth
	}
	if input.TargetFrequency == "" {
		input.TargetFrequency = FrequencyDaily
	}
	if !input.Category.IsValid() || !input.TargetFrequency.IsValid() {
		return nil, ErrInvalidInput
	}
	if input.TargetCount < 1 {
		input.TargetCount = 1
	}

	habit := Habit{
		ID:              uuid.New(),
		Name:            name,
		Description:     strings.TrimSpace(input.Description),
		Category:        input.Category,
		TargetFrequency: input.TargetFrequency,
		TargetCount:     input.TargetCount,
		Color:           input.Color,
		Icon:            input.Icon,
		CreatedAt:       s.clock(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.FindAll(ctx)
	all = append(all, habit)
	if err := s.repo.SaveAll(ctx, all); err != nil {
		return nil, err
	}

	s.logger.Info("Habit created", zap.String("habit_id", habit.ID.String()), zap.String("name", habit.Name))
	return &habit, nil
}

func (s *service) GetHabit(ctx context.Context, id uuid.UUID) (*Habit, error) {
	for _, h := range s.repo.FindAll(ctx) {
		if h.ID == id {
			habit := h
			return &habit, nil
		}
	}
	return nil, ErrHabitNotFound
}

func (s *service) ListHabits(ctx context.Context) []Habit {
	return s.repo.FindAll(ctx)
}

func (s *service) DeleteHabit(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.FindAll(ctx)
	kept := make([]Habit, 0, len(all))
	for _, h := range all {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(all) {
		return ErrHabitNotFound
	}

	completions := s.repo.FindCompletions(ctx)
	keptCompletions := make([]HabitCompletion, 0, len(completions))
	for _, c := range completions {
		if c.HabitID != id {
			keptCompletions = append(keptCompletions, c)
		}
	}

	if err := s.repo.SaveAll(ctx, kept); err != nil {
		return err
	}
	if err := s.repo.SaveCompletions(ctx, keptCompletions); err != nil {
		s.restoreHabits(ctx, all)
		return err
	}

	s.logger.Info("Habit deleted",
		zap.String("habit_id", id.String()),
		zap.Int("completions_removed", len(completions)-len(keptCompletions)))
	return nil
}

func (s *service) ToggleHabit(ctx context.Context, id uuid.UUID) (*ToggleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.FindAll(ctx)
	idx := -1
	for i := range all {
		if all[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrHabitNotFound
	}

	now := s.clock()
	previous := s.repo.FindCompletions(ctx)
	result := Toggle(all[idx], previous, timeutil.DateString(now), now, s.policy)
	updated := append([]Habit(nil), all...)
	updated[idx] = result.Habit

	if err := s.repo.SaveCompletions(ctx, result.Completions); err != nil {
		return nil, err
	}
	if err := s.repo.SaveAll(ctx, updated); err != nil {
		s.restoreCompletions(ctx, previous)
		return nil, err
	}

	s.logger.Info("Habit toggled",
		zap.String("habit_id", id.String()),
		zap.Bool("completed", result.Completed),
		zap.Int("streak", result.Habit.Streak),
		zap.Int("xp_delta", result.XPDelta))

	if result.BonusEarned {
		s.notifySvc.NotifyHabitStreak(ctx, &result.Habit)
	}
	return &result, nil
}

// The two collections are written one after the other. When the second write
// fails the first is rolled back so streak and xp never disagree with the log.
func (s *service) restoreCompletions(ctx context.Context, completions []HabitCompletion) {
	if err := s.repo.SaveCompletions(ctx, completions); err != nil {
		s.logger.Error("Failed to restore habit completions", zap.Error(err))
	}
}

func (s *service) restoreHabits(ctx context.Context, habits []Habit) {
	if err := s.repo.SaveAll(ctx, habits); err != nil {
		s.logger.Error("Failed to restore habits", zap.Error(err))
	}
}

func (s *service) ListCompletions(ctx context.Context) []HabitCompletion {
	return s.repo.FindCompletions(ctx)
}

func (s *service) IsCompletedToday(ctx context.Context, id uuid.UUID) bool {
	return CompletedOn(s.repo.FindCompletions(ctx), id, s.today())
}

func (s *service) CompletedTodayCount(ctx context.Context) int {
	today := s.today()
	count := 0
	for _, c := range s.repo.FindCompletions(ctx) {
		if c.Date == today && c.Completed {
			count++
		}
	}
	return count
}

func (s *service) TotalXP(ctx context.Context) int {
	total := 0
	for _, h := range s.repo.FindAll(ctx) {
		total += h.XP
	}
	return total
}

func (s *service) GetHeatmapData(ctx context.Context, period string) map[string]int {
	now := s.clock()
	return Heatmap(s.repo.FindCompletions(ctx), HeatmapStart(period, now), now)
}
