package habits

import (
	"context"
	"fmt"

	"github.com/focusflow/focusflow/internal/domain/notification"
)

// HabitNotificationService announces habit milestones.
type HabitNotificationService struct {
	notificationService notification.Service
}

// NewHabitNotificationService creates a new habit notification service. A nil
// service turns every call into a no-op.
func NewHabitNotificationService(notificationService notification.Service) *HabitNotificationService {
	return &HabitNotificationService{
		notificationService: notificationService,
	}
}

// NotifyHabitStreak sends a notification when a habit streak reaches a bonus milestone
func (s *HabitNotificationService) NotifyHabitStreak(ctx context.Context, habit *Habit) {
	if s == nil || s.notificationService == nil {
		return
	}
	n := notification.New(
		notification.HabitStreak,
		"Habit Streak",
		fmt.Sprintf("Amazing! You've maintained a %d day streak for your habit: %s (+%d XP bonus)", habit.Streak, habit.Name, StreakBonusXP),
	)
	n.Reference = "habits"
	n.Data = map[string]string{
		"habitID":       habit.ID.String(),
		"currentStreak": fmt.Sprintf("%d", habit.Streak),
	}
	s.notificationService.Notify(ctx, n)
}
