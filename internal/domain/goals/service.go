package goals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/focusflow/focusflow/internal/domain/notification"
	"github.com/focusflow/focusflow/pkg/timeutil"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Service interface {
	CreateGoal(ctx context.Context, input CreateGoalInput) (*Goal, error)
	GetGoal(ctx context.Context, id uuid.UUID) (*Goal, error)
	ListGoals(ctx context.Context) []Goal
	DeleteGoal(ctx context.Context, id uuid.UUID) error
	AddSubtask(ctx context.Context, goalID uuid.UUID, input CreateSubtaskInput) (*Goal, error)
	ToggleSubtask(ctx context.Context, goalID, subtaskID uuid.UUID) (*Goal, error)
	DeleteSubtask(ctx context.Context, goalID, subtaskID uuid.UUID) (*Goal, error)
	SetStatus(ctx context.Context, goalID uuid.UUID, status Status) (*Goal, error)
	// DaysUntilDeadline rounds partial days up; overdue goals give a negative count.
	DaysUntilDeadline(ctx context.Context, goalID uuid.UUID) (int, error)
}

type service struct {
	mu       sync.Mutex
	repo     Repository
	notifier notification.Service
	clock    timeutil.Clock
	logger   *zap.Logger
}

// NewService creates the goal service. notifier may be nil.
func NewService(repo Repository, notifier notification.Service, clock timeutil.Clock, logger *zap.Logger) Service {
	if clock == nil {
		clock = timeutil.SystemClock
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, notifier: notifier, clock: clock, logger: logger}
}

func (s *service) CreateGoal(ctx context.Context, input CreateGoalInput) (*Goal, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.Deadline.IsZero() {
		return nil, ErrInvalidInput
	}
	if input.Category == "" {
		input.Category = CategoryPersonal
	}
	if input.Priority == "" {
		input.Priority = PriorityMedium
	}
	if !input.Category.IsValid() || !input.Priority.IsValid() {
		return nil, ErrInvalidInput
	}

	goal := Goal{
		ID:          uuid.New(),
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Priority:    input.Priority,
		Deadline:    input.Deadline,
		Status:      StatusActive,
		Subtasks:    []GoalSubtask{},
		CreatedAt:   s.clock(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.FindAll(ctx)
	all = append(all, goal)
	if err := s.repo.SaveAll(ctx, all); err != nil {
		return nil, err
	}
	s.logger.Info("Goal created", zap.String("goal_id", goal.ID.String()))
	return &goal, nil
}

func (s *service) GetGoal(ctx context.Context, id uuid.UUID) (*Goal, error) {
	for _, g := range s.repo.FindAll(ctx) {
		if g.ID == id {
			goal := g
			return &goal, nil
		}
	}
	return nil, ErrGoalNotFound
}

func (s *service) ListGoals(ctx context.Context) []Goal {
	return s.repo.FindAll(ctx)
}

func (s *service) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.FindAll(ctx)
	kept := make([]Goal, 0, len(all))
	for _, g := range all {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(all) {
		return ErrGoalNotFound
	}
	return s.repo.SaveAll(ctx, kept)
}

// update runs fn against the stored goal and persists the result.
func (s *service) update(ctx context.Context, id uuid.UUID, fn func(*Goal) (Transition, error)) (*Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.FindAll(ctx)
	for i := range all {
		if all[i].ID != id {
			continue
		}
		transition, err := fn(&all[i])
		if err != nil {
			return nil, err
		}
		if err := s.repo.SaveAll(ctx, all); err != nil {
			return nil, err
		}
		goal := all[i]
		s.afterTransition(ctx, &goal, transition)
		return &goal, nil
	}
	return nil, ErrGoalNotFound
}

func (s *service) afterTransition(ctx context.Context, goal *Goal, transition Transition) {
	switch transition {
	case TransitionCompleted:
		s.logger.Info("Goal completed", zap.String("goal_id", goal.ID.String()))
		if s.notifier != nil {
			n := notification.New(notification.GoalCompleted, "Goal Completed",
				fmt.Sprintf("You completed every step of %q", goal.Title))
			n.Reference = "goals"
			s.notifier.Notify(ctx, n)
		}
	case TransitionReopened:
		s.logger.Info("Goal reopened", zap.String("goal_id", goal.ID.String()), zap.Float64("progress", goal.Progress))
	}
}

func (s *service) AddSubtask(ctx context.Context, goalID uuid.UUID, input CreateSubtaskInput) (*Goal, error) {
	return s.update(ctx, goalID, func(g *Goal) (Transition, error) {
		_, transition, err := AddSubtask(g, input, s.clock())
		return transition, err
	})
}

func (s *service) ToggleSubtask(ctx context.Context, goalID, subtaskID uuid.UUID) (*Goal, error) {
	return s.update(ctx, goalID, func(g *Goal) (Transition, error) {
		return ToggleSubtask(g, subtaskID, s.clock())
	})
}

func (s *service) DeleteSubtask(ctx context.Context, goalID, subtaskID uuid.UUID) (*Goal, error) {
	return s.update(ctx, goalID, func(g *Goal) (Transition, error) {
		return DeleteSubtask(g, subtaskID, s.clock())
	})
}

func (s *service) SetStatus(ctx context.Context, goalID uuid.UUID, status Status) (*Goal, error) {
	return s.update(ctx, goalID, func(g *Goal) (Transition, error) {
		return TransitionNone, SetStatus(g, status, s.clock())
	})
}

func (s *service) DaysUntilDeadline(ctx context.Context, goalID uuid.UUID) (int, error) {
	goal, err := s.GetGoal(ctx, goalID)
	if err != nil {
		return 0, err
	}
	return timeutil.DaysUntil(s.clock(), goal.Deadline), nil
}
