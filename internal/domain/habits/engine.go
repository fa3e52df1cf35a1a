package habits

import (
	"time"

	"github.com/google/uuid"
)

const (
	CompletionXP        = 10
	StreakBonusXP       = 50
	StreakBonusInterval = 7
)

// XPPolicy decides what un-completing a habit takes back.
type XPPolicy string

const (
	// XPPolicySymmetric reverses exactly what the matching completion granted,
	// bonus included, so toggle followed by un-toggle is a no-op.
	XPPolicySymmetric XPPolicy = "symmetric"
	// XPPolicyLegacy takes back a flat CompletionXP. Un-toggling at a bonus
	// streak leaves the bonus behind.
	XPPolicyLegacy XPPolicy = "legacy"
)

// ParseXPPolicy maps a config value to a policy, defaulting to symmetric.
func ParseXPPolicy(s string) XPPolicy {
	if XPPolicy(s) == XPPolicyLegacy {
		return XPPolicyLegacy
	}
	return XPPolicySymmetric
}

// ToggleResult is the new state of one habit and the full completion list.
type ToggleResult struct {
	Habit       Habit             `json:"habit"`
	Completions []HabitCompletion `json:"-"`
	Completed   bool              `json:"completed"`
	XPDelta     int               `json:"xpDelta"`
	BonusEarned bool              `json:"bonusEarned"`
}

func bonusAt(streak int) bool {
	return streak > 0 && streak%StreakBonusInterval == 0
}

// Toggle flips the habit's completion for today. Streak is a counter moved
// by toggles only; it is never recomputed from history. Neither streak nor
// xp ever drops below zero. The input slice is not modified.
func Toggle(habit Habit, completions []HabitCompletion, today string, now time.Time, policy XPPolicy) ToggleResult {
	existing := -1
	for i, c := range completions {
		if c.HabitID == habit.ID && c.Date == today {
			existing = i
			break
		}
	}

	result := ToggleResult{Habit: habit}

	if existing >= 0 {
		remaining := make([]HabitCompletion, 0, len(completions)-1)
		remaining = append(remaining, completions[:existing]...)
		remaining = append(remaining, completions[existing+1:]...)

		penalty := CompletionXP
		if policy == XPPolicySymmetric && bonusAt(habit.Streak) {
			penalty += StreakBonusXP
		}

		result.Habit.Streak = max(0, habit.Streak-1)
		result.Habit.XP = max(0, habit.XP-penalty)
		result.XPDelta = result.Habit.XP - habit.XP
		result.Completions = remaining
		return result
	}

	added := make([]HabitCompletion, 0, len(completions)+1)
	added = append(added, completions...)
	added = append(added, HabitCompletion{
		ID:        uuid.New(),
		HabitID:   habit.ID,
		Date:      today,
		Completed: true,
		Timestamp: now,
	})

	newStreak := habit.Streak + 1
	gain := CompletionXP
	if bonusAt(newStreak) {
		gain += StreakBonusXP
		result.BonusEarned = true
	}

	result.Habit.Streak = newStreak
	result.Habit.XP = habit.XP + gain
	result.XPDelta = gain
	result.Completed = true
	result.Completions = added
	return result
}

// CompletedOn reports whether habitID has a completed entry for date.
func CompletedOn(completions []HabitCompletion, habitID uuid.UUID, date string) bool {
	for _, c := range completions {
		if c.HabitID == habitID && c.Date == date && c.Completed {
			return true
		}
	}
	return false
}
