package analytics

import (
	"github.com/focusflow/focusflow/internal/domain/focus"
	"github.com/focusflow/focusflow/internal/domain/goals"
	"github.com/focusflow/focusflow/internal/domain/habits"
	"github.com/focusflow/focusflow/internal/domain/tasks"
)

// Snapshot is everything the aggregator reads. Compute never mutates it.
type Snapshot struct {
	Tasks       []tasks.Task
	Habits      []habits.Habit
	Completions []habits.HabitCompletion
	Goals       []goals.Goal
	Sessions    []focus.Session
}

// DayTrend is one day of the trailing week.
type DayTrend struct {
	Date      string `json:"date"`
	FocusTime int    `json:"focusTime"`
	Tasks     int    `json:"tasks"`
	Habits    int    `json:"habits"`
}

// Summary is the derived dashboard. Rates and progress are percentages.
type Summary struct {
	TotalFocusTime         int            `json:"totalFocusTime"`
	TotalTasks             int            `json:"totalTasks"`
	CompletedTasks         int            `json:"completedTasks"`
	TasksCompletionRate    float64        `json:"tasksCompletionRate"`
	TotalHabits            int            `json:"totalHabits"`
	HabitsCompletedToday   int            `json:"habitsCompletedToday"`
	HabitCompletionRate    float64        `json:"habitCompletionRate"`
	BestStreak             int            `json:"bestStreak"`
	TotalGoals             int            `json:"totalGoals"`
	CompletedGoals         int            `json:"completedGoals"`
	ActiveGoals            int            `json:"activeGoals"`
	AverageGoalProgress    float64        `json:"averageGoalProgress"`
	TotalXP                int            `json:"totalXP"`
	ProductivityScore      int            `json:"productivityScore"`
	CategoryBreakdown      map[string]int `json:"categoryBreakdown"`
	HabitCategoryBreakdown map[string]int `json:"habitCategoryBreakdown"`
	GoalCategoryBreakdown  map[string]int `json:"goalCategoryBreakdown"`
	WeeklyTrends           []DayTrend     `json:"weeklyTrends"`
	WeeklyTasksCompleted   int            `json:"weeklyTasksCompleted"`
	WeeklyHabitsCompleted  int            `json:"weeklyHabitsCompleted"`
	WeeklyFocusTime        int            `json:"weeklyFocusTime"`
	ConsistencyScore       int            `json:"consistencyScore"`
}
