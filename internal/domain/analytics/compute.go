package analytics

import (
	"math"
	"strings"
	"time"

	"github.com/focusflow/focusflow/internal/domain/goals"
	"github.com/focusflow/focusflow/pkg/timeutil"
)

const uncategorized = "uncategorized"

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// ProductivityScore blends the headline metrics into a 0-100 score.
// The weights are fixed; changing them changes every historical score.
func ProductivityScore(taskRate, habitRate, avgGoalProgress float64, bestStreak int) int {
	streakPart := math.Min(float64(bestStreak*2), 20)
	return int(math.Round(taskRate*0.3 + habitRate*0.3 + avgGoalProgress*0.2 + streakPart*0.2))
}

// Compute derives the dashboard summary for the calendar day of now.
func Compute(snap Snapshot, now time.Time) Summary {
	loc := now.Location()
	today := timeutil.DateString(now)

	s := Summary{
		CategoryBreakdown:      map[string]int{},
		HabitCategoryBreakdown: map[string]int{},
		GoalCategoryBreakdown:  map[string]int{},
	}

	for _, session := range snap.Sessions {
		if session.Completed {
			s.TotalFocusTime += session.Duration
		}
	}

	s.TotalTasks = len(snap.Tasks)
	for _, t := range snap.Tasks {
		if t.Completed {
			s.CompletedTasks++
		}
		category := t.Category
		if category == "" {
			category = uncategorized
		}
		s.CategoryBreakdown[category]++
	}
	s.TasksCompletionRate = percent(s.CompletedTasks, s.TotalTasks)

	s.TotalHabits = len(snap.Habits)
	for _, h := range snap.Habits {
		if h.Streak > s.BestStreak {
			s.BestStreak = h.Streak
		}
		s.TotalXP += h.XP
		s.HabitCategoryBreakdown[string(h.Category)]++
	}
	for _, c := range snap.Completions {
		if c.Completed && c.Date == today {
			s.HabitsCompletedToday++
		}
	}
	s.HabitCompletionRate = percent(s.HabitsCompletedToday, s.TotalHabits)

	s.TotalGoals = len(snap.Goals)
	var progressSum float64
	for _, g := range snap.Goals {
		switch g.Status {
		case goals.StatusCompleted:
			s.CompletedGoals++
		case goals.StatusActive:
			s.ActiveGoals++
		}
		progressSum += g.Progress
		s.GoalCategoryBreakdown[string(g.Category)]++
	}
	if s.TotalGoals > 0 {
		s.AverageGoalProgress = progressSum / float64(s.TotalGoals)
	}

	s.ProductivityScore = ProductivityScore(s.TasksCompletionRate, s.HabitCompletionRate, s.AverageGoalProgress, s.BestStreak)

	s.WeeklyTrends = weeklyTrends(snap, now, loc)
	activeDays := 0
	for _, day := range s.WeeklyTrends {
		s.WeeklyTasksCompleted += day.Tasks
		s.WeeklyHabitsCompleted += day.Habits
		s.WeeklyFocusTime += day.FocusTime
		if day.Tasks > 0 || day.Habits > 0 || day.FocusTime > 0 {
			activeDays++
		}
	}
	s.ConsistencyScore = int(math.Round(float64(activeDays) / 7 * 100))

	return s
}

// weeklyTrends attributes a completed task to a day when its start time
// mentions that date. Tasks without a dated start time are not counted.
func weeklyTrends(snap Snapshot, now time.Time, loc *time.Location) []DayTrend {
	dates := timeutil.WeekDates(now)
	trends := make([]DayTrend, len(dates))
	index := make(map[string]int, len(dates))
	for i, d := range dates {
		trends[i] = DayTrend{Date: d}
		index[d] = i
	}

	for _, t := range snap.Tasks {
		if !t.Completed || t.StartTime == "" {
			continue
		}
		for i, d := range dates {
			if strings.Contains(t.StartTime, d) {
				trends[i].Tasks++
			}
		}
	}
	for _, session := range snap.Sessions {
		if !session.Completed {
			continue
		}
		if i, ok := index[timeutil.DateString(session.StartTime.In(loc))]; ok {
			trends[i].FocusTime += session.Duration
		}
	}
	for _, c := range snap.Completions {
		if !c.Completed {
			continue
		}
		if i, ok := index[c.Date]; ok {
			trends[i].Habits++
		}
	}
	return trends
}
