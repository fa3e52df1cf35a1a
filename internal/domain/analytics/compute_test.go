package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/focusflow/focusflow/internal/domain/focus"
	"github.com/focusflow/focusflow/internal/domain/goals"
	"github.com/focusflow/focusflow/internal/domain/habits"
	"github.com/focusflow/focusflow/internal/domain/tasks"
	"github.com/focusflow/focusflow/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

func TestComputeEmpty(t *testing.T) {
	s := Compute(Snapshot{}, now)

	assert.Zero(t, s.TasksCompletionRate)
	assert.Zero(t, s.HabitCompletionRate)
	assert.Zero(t, s.AverageGoalProgress)
	assert.Zero(t, s.ProductivityScore)
	assert.Zero(t, s.ConsistencyScore)
	assert.Empty(t, s.CategoryBreakdown)
	require.Len(t, s.WeeklyTrends, 7)
	assert.Equal(t, "2024-03-04", s.WeeklyTrends[0].Date)
	assert.Equal(t, "2024-03-10", s.WeeklyTrends[6].Date)
}

func TestComputeRates(t *testing.T) {
	h1, h2 := habits.Habit{Streak: 4, XP: 40, Category: habits.CategoryHealth}, habits.Habit{Streak: 9, XP: 150, Category: habits.CategoryWork}
	snap := Snapshot{
		Tasks: []tasks.Task{
			{Text: "a", Completed: true, Category: "work"},
			{Text: "b", Completed: true},
			{Text: "c"},
		},
		Habits: []habits.Habit{h1, h2},
		Completions: []habits.HabitCompletion{
			{HabitID: h1.ID, Date: "2024-03-10", Completed: true},
			{HabitID: h2.ID, Date: "2024-03-09", Completed: true},
		},
		Goals: []goals.Goal{
			{Progress: 75, Status: goals.StatusActive, Category: goals.CategoryWork},
			{Progress: 100, Status: goals.StatusCompleted, Category: goals.CategoryWork},
			{Progress: 20, Status: goals.StatusPaused, Category: goals.CategoryFinance},
		},
	}

	s := Compute(snap, now)

	assert.InDelta(t, 66.67, s.TasksCompletionRate, 0.01)
	assert.InDelta(t, 50, s.HabitCompletionRate, 0.001)
	assert.Equal(t, 1, s.HabitsCompletedToday)
	assert.Equal(t, 9, s.BestStreak)
	assert.Equal(t, 190, s.TotalXP)
	assert.Equal(t, 1, s.CompletedGoals)
	assert.Equal(t, 1, s.ActiveGoals)
	assert.InDelta(t, 65, s.AverageGoalProgress, 0.001)
	assert.Equal(t, map[string]int{"work": 1, "uncategorized": 2}, s.CategoryBreakdown)
	assert.Equal(t, map[string]int{"health": 1, "work": 1}, s.HabitCategoryBreakdown)
	assert.Equal(t, map[string]int{"work": 2, "finance": 1}, s.GoalCategoryBreakdown)

	// 0.3*66.67 + 0.3*50 + 0.2*65 + 0.2*18 = 51.6
	assert.Equal(t, 52, s.ProductivityScore)
}

func TestProductivityScoreCapsStreak(t *testing.T) {
	assert.Equal(t, 4, ProductivityScore(0, 0, 0, 10))
	assert.Equal(t, 4, ProductivityScore(0, 0, 0, 365))
	assert.Equal(t, 100, ProductivityScore(100, 100, 100, 100))
}

func TestWeeklyTrendsAndConsistency(t *testing.T) {
	snap := Snapshot{
		Tasks: []tasks.Task{
			{Text: "today", Completed: true, StartTime: "2024-03-10 09:00"},
			{Text: "open", StartTime: "2024-03-10 10:00"},
			{Text: "old", Completed: true, StartTime: "2024-02-01 09:00"},
			{Text: "undated", Completed: true, StartTime: "09:00"},
		},
		Completions: []habits.HabitCompletion{
			{Date: "2024-03-08", Completed: true},
			{Date: "2024-03-08", Completed: false},
		},
		Sessions: []focus.Session{
			{Duration: 25, Completed: true, StartTime: time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)},
			{Duration: 50, Completed: false, StartTime: time.Date(2024, 3, 6, 8, 0, 0, 0, time.UTC)},
			{Duration: 30, Completed: true, StartTime: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)},
		},
	}

	s := Compute(snap, now)

	byDate := map[string]DayTrend{}
	for _, d := range s.WeeklyTrends {
		byDate[d.Date] = d
	}
	assert.Equal(t, 1, byDate["2024-03-10"].Tasks)
	assert.Equal(t, 1, byDate["2024-03-08"].Habits)
	assert.Equal(t, 25, byDate["2024-03-05"].FocusTime)
	assert.Zero(t, byDate["2024-03-06"].FocusTime)

	assert.Equal(t, 1, s.WeeklyTasksCompleted)
	assert.Equal(t, 1, s.WeeklyHabitsCompleted)
	assert.Equal(t, 25, s.WeeklyFocusTime)
	assert.Equal(t, 55, s.TotalFocusTime)
	// 3 of 7 days active
	assert.Equal(t, 43, s.ConsistencyScore)
}

func TestComputeDoesNotMutateSnapshot(t *testing.T) {
	snap := Snapshot{Tasks: []tasks.Task{{Text: "a"}}}
	Compute(snap, now)
	assert.Equal(t, "", snap.Tasks[0].Category)
}

func TestInsights(t *testing.T) {
	empty := Insights(Compute(Snapshot{}, now))
	assert.Equal(t, []string{
		"Every journey starts with a single step. Start small and build momentum gradually.",
		"Begin using the focus timer to track your deep work sessions and build concentration.",
	}, empty)

	busy := Insights(Summary{
		ProductivityScore:   92,
		ConsistencyScore:    100,
		BestStreak:          30,
		TotalFocusTime:      400,
		TotalTasks:          10,
		TasksCompletionRate: 95,
		TotalHabits:         2,
		HabitCompletionRate: 100,
		TotalGoals:          1,
		AverageGoalProgress: 95,
		TotalXP:             1200,
		CategoryBreakdown:   map[string]int{"work": 7, "learning": 3},
	})
	assert.Len(t, busy, MaxInsights)
	assert.Contains(t, busy[2], "30-day streak")

	weekly := Insights(Summary{WeeklyTasksCompleted: 21, WeeklyFocusTime: 605, CategoryBreakdown: map[string]int{"b": 2, "a": 2}})
	assert.Contains(t, weekly, "Productive week! You completed 21 tasks this week.")
	assert.Contains(t, weekly, "Focused week! You spent 10h 5m in deep work this week.")
	assert.Contains(t, weekly, "You're most active in a with 2 tasks.")
}

func TestFormatFocusTime(t *testing.T) {
	assert.Equal(t, "45m", FormatFocusTime(45))
	assert.Equal(t, "2h 0m", FormatFocusTime(120))
}

func TestSummarySeesWritesFromAnotherStore(t *testing.T) {
	// two stores over one backend, as the API server and focusctl share a database
	backend := store.NewMemoryBackend()
	serverStore := store.New(backend, nil)
	cliStore := store.New(backend, nil)

	serverTasks := tasks.NewService(tasks.NewRepository(serverStore), nil)
	cliTasks := tasks.NewService(tasks.NewRepository(cliStore), nil)
	svc := NewService(Sources{Tasks: serverTasks}, func() time.Time { return now }, nil)
	ctx := context.Background()

	assert.Zero(t, svc.Summary(ctx).TotalTasks)

	_, err := cliTasks.CreateTask(ctx, tasks.CreateTaskInput{Text: "write report", Category: "work"})
	require.NoError(t, err)

	summary := svc.Summary(ctx)
	assert.Equal(t, 1, summary.TotalTasks)
	assert.Equal(t, 1, summary.CategoryBreakdown["work"])
}

func TestSummaryReturnsIndependentValues(t *testing.T) {
	st := store.NewMemory(nil)
	taskSvc := tasks.NewService(tasks.NewRepository(st), nil)
	svc := NewService(Sources{Tasks: taskSvc}, func() time.Time { return now }, nil)
	ctx := context.Background()

	_, err := taskSvc.CreateTask(ctx, tasks.CreateTaskInput{Text: "write report", Category: "work"})
	require.NoError(t, err)

	first := svc.Summary(ctx)
	first.CategoryBreakdown["work"] = 99
	first.WeeklyTrends[0].Tasks = 42

	second := svc.Summary(ctx)
	assert.Equal(t, 1, second.CategoryBreakdown["work"])
	assert.Zero(t, second.WeeklyTrends[0].Tasks)
}
