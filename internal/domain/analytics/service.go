package analytics

import (
	"context"
	"time"

	"github.com/focusflow/focusflow/internal/domain/focus"
	"github.com/focusflow/focusflow/internal/domain/goals"
	"github.com/focusflow/focusflow/internal/domain/habits"
	"github.com/focusflow/focusflow/internal/domain/tasks"
	"github.com/focusflow/focusflow/pkg/timeutil"
	"go.uber.org/zap"
)

type Service interface {
	// Summary recomputes every metric from the current collections.
	Summary(ctx context.Context) Summary
	Insights(ctx context.Context) []string
}

// Sources are the services a snapshot is read from.
type Sources struct {
	Tasks  tasks.Service
	Habits habits.Service
	Goals  goals.Service
	Focus  focus.Service
}

type service struct {
	sources Sources
	clock   timeutil.Clock
	logger  *zap.Logger
}

func NewService(sources Sources, clock timeutil.Clock, logger *zap.Logger) Service {
	if clock == nil {
		clock = timeutil.SystemClock
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{sources: sources, clock: clock, logger: logger}
}

func (s *service) snapshot(ctx context.Context) Snapshot {
	var snap Snapshot
	if s.sources.Tasks != nil {
		snap.Tasks = s.sources.Tasks.ListTasks(ctx)
	}
	if s.sources.Habits != nil {
		snap.Habits = s.sources.Habits.ListHabits(ctx)
		snap.Completions = s.sources.Habits.ListCompletions(ctx)
	}
	if s.sources.Goals != nil {
		snap.Goals = s.sources.Goals.ListGoals(ctx)
	}
	if s.sources.Focus != nil {
		snap.Sessions = s.sources.Focus.ListSessions(ctx)
	}
	return snap
}

func (s *service) Summary(ctx context.Context) Summary {
	start := time.Now()
	now := s.clock()

	summary := Compute(s.snapshot(ctx), now)

	summaryDuration.Observe(time.Since(start).Seconds())
	productivityScore.Set(float64(summary.ProductivityScore))
	consistencyScore.Set(float64(summary.ConsistencyScore))

	s.logger.Debug("Analytics summary computed",
		zap.String("day", timeutil.DateString(now)),
		zap.Int("productivity_score", summary.ProductivityScore),
		zap.Int("consistency_score", summary.ConsistencyScore),
	)
	return summary
}

func (s *service) Insights(ctx context.Context) []string {
	return Insights(s.Summary(ctx))
}
