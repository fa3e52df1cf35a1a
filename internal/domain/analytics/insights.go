package analytics

import (
	"fmt"
	"sort"
)

// MaxInsights caps how many messages Insights returns.
const MaxInsights = 8

// FormatFocusTime renders minutes as "2h 5m" or "45m".
func FormatFocusTime(minutes int) string {
	if h := minutes / 60; h > 0 {
		return fmt.Sprintf("%dh %dm", h, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

// Insights turns a summary into short coaching messages, most general first.
func Insights(s Summary) []string {
	var out []string

	switch {
	case s.ProductivityScore >= 90:
		out = append(out, "Outstanding productivity! You're in the top 1% of performers. Keep this momentum!")
	case s.ProductivityScore >= 80:
		out = append(out, "Excellent productivity! You're crushing your goals and maintaining great habits.")
	case s.ProductivityScore >= 70:
		out = append(out, "Great progress! You're building strong momentum. Focus on consistency.")
	case s.ProductivityScore >= 60:
		out = append(out, "Good foundation! Keep building your habits and completing tasks regularly.")
	case s.ProductivityScore >= 40:
		out = append(out, "You're making progress! Focus on completing more tasks and building habit streaks.")
	default:
		out = append(out, "Every journey starts with a single step. Start small and build momentum gradually.")
	}

	switch {
	case s.ConsistencyScore >= 85:
		out = append(out, fmt.Sprintf("Amazing consistency! You've been active %d%% of this week.", s.ConsistencyScore))
	case s.ConsistencyScore >= 70:
		out = append(out, fmt.Sprintf("Good consistency at %d%%. Try to be active every day this week.", s.ConsistencyScore))
	case s.ConsistencyScore > 0:
		out = append(out, fmt.Sprintf("Work on consistency: you've been active %d%% of days. Aim for daily progress.", s.ConsistencyScore))
	}

	switch {
	case s.BestStreak >= 30:
		out = append(out, fmt.Sprintf("Incredible %d-day streak! You've mastered the art of consistency.", s.BestStreak))
	case s.BestStreak >= 21:
		out = append(out, fmt.Sprintf("Amazing %d-day streak! You've built a strong habit foundation.", s.BestStreak))
	case s.BestStreak >= 14:
		out = append(out, fmt.Sprintf("Great %d-day streak! You're developing excellent habits.", s.BestStreak))
	case s.BestStreak >= 7:
		out = append(out, fmt.Sprintf("Nice %d-day streak! Keep going to build even stronger habits.", s.BestStreak))
	case s.BestStreak >= 3:
		out = append(out, fmt.Sprintf("Good %d-day streak! You're on the right track.", s.BestStreak))
	}

	switch {
	case s.TotalFocusTime >= 300:
		out = append(out, "Exceptional focus time! You're dedicating serious time to deep work and learning.")
	case s.TotalFocusTime >= 180:
		out = append(out, "Excellent focus time! You're building strong concentration habits.")
	case s.TotalFocusTime >= 120:
		out = append(out, "Good focus time! Try to reach 3+ hours daily for maximum productivity.")
	case s.TotalFocusTime > 0:
		out = append(out, "Start increasing your focus time. Even 25-minute sessions can make a big difference.")
	default:
		out = append(out, "Begin using the focus timer to track your deep work sessions and build concentration.")
	}

	switch {
	case s.TasksCompletionRate >= 90:
		out = append(out, "Outstanding task completion rate! You're highly effective at execution.")
	case s.TasksCompletionRate >= 80:
		out = append(out, "Excellent task completion! You're great at getting things done.")
	case s.TasksCompletionRate >= 70:
		out = append(out, "Good task completion rate! Focus on prioritizing your most important tasks.")
	case s.TotalTasks > 0:
		out = append(out, "Break large tasks into smaller, manageable steps for better completion rates.")
	}

	switch {
	case s.HabitCompletionRate >= 90:
		out = append(out, "Perfect habit consistency! You're building an incredibly strong foundation.")
	case s.HabitCompletionRate >= 80:
		out = append(out, "Excellent habit consistency! You're on track for long-term success.")
	case s.TotalHabits > 0:
		out = append(out, "Focus on completing your daily habits. Small consistent actions lead to big results.")
	}

	switch {
	case s.AverageGoalProgress >= 90:
		out = append(out, "Outstanding goal progress! You're well on your way to achieving everything you set out to do.")
	case s.AverageGoalProgress >= 75:
		out = append(out, "Great progress on your goals! Keep up the momentum.")
	case s.TotalGoals > 0:
		out = append(out, "Break your goals into smaller subtasks to maintain steady progress.")
	}

	switch {
	case s.TotalXP >= 1000:
		out = append(out, fmt.Sprintf("Incredible! You've earned %d XP. You're a productivity champion!", s.TotalXP))
	case s.TotalXP >= 500:
		out = append(out, fmt.Sprintf("Amazing! %d XP earned. You're building serious momentum!", s.TotalXP))
	case s.TotalXP >= 100:
		out = append(out, fmt.Sprintf("Great job! %d XP earned. Keep building those habits!", s.TotalXP))
	case s.TotalXP > 0:
		out = append(out, fmt.Sprintf("You've earned %d XP! Complete more habits to level up.", s.TotalXP))
	}

	if s.WeeklyTasksCompleted >= 20 {
		out = append(out, fmt.Sprintf("Productive week! You completed %d tasks this week.", s.WeeklyTasksCompleted))
	}
	if s.WeeklyFocusTime >= 600 {
		out = append(out, fmt.Sprintf("Focused week! You spent %s in deep work this week.", FormatFocusTime(s.WeeklyFocusTime)))
	}

	if category, count := topCategory(s.CategoryBreakdown); count > 0 {
		out = append(out, fmt.Sprintf("You're most active in %s with %d tasks.", category, count))
	}

	if len(out) > MaxInsights {
		out = out[:MaxInsights]
	}
	return out
}

// topCategory breaks ties alphabetically so the result is stable.
func topCategory(breakdown map[string]int) (string, int) {
	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Strings(names)

	best, bestCount := "", 0
	for _, name := range names {
		if breakdown[name] > bestCount {
			best, bestCount = name, breakdown[name]
		}
	}
	return best, bestCount
}
