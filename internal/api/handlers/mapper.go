package handlers

import (
	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/domain/focus"
	"github.com/focusflow/focusflow/internal/domain/goals"
	"github.com/focusflow/focusflow/internal/domain/habits"
	"github.com/focusflow/focusflow/internal/domain/journal"
	"github.com/focusflow/focusflow/internal/domain/reminders"
	"github.com/focusflow/focusflow/internal/domain/tasks"
)

// Tasks
func ToCreateTaskInput(req *dto.CreateTaskRequest) tasks.CreateTaskInput {
	return tasks.CreateTaskInput{
		Text:      req.Text,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Priority:  tasks.Priority(req.Priority),
		Category:  req.Category,
	}
}

func ToUpdateTaskInput(req *dto.UpdateTaskRequest) tasks.UpdateTaskInput {
	input := tasks.UpdateTaskInput{
		Text:      req.Text,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Category:  req.Category,
	}
	if req.Priority != nil {
		p := tasks.Priority(*req.Priority)
		input.Priority = &p
	}
	return input
}

// Habits
func ToCreateHabitInput(req *dto.CreateHabitRequest) habits.CreateHabitInput {
	return habits.CreateHabitInput{
		Name:            req.Name,
		Description:     req.Description,
		Category:        habits.Category(req.Category),
		TargetFrequency: habits.Frequency(req.TargetFrequency),
		TargetCount:     req.TargetCount,
		Color:           req.Color,
		Icon:            req.Icon,
	}
}

func HabitToResponse(h *habits.Habit, completedToday bool) dto.HabitResponse {
	return dto.HabitResponse{
		ID:              h.ID,
		Name:            h.Name,
		Description:     h.Description,
		Category:        string(h.Category),
		TargetFrequency: string(h.TargetFrequency),
		TargetCount:     h.TargetCount,
		Color:           h.Color,
		Icon:            h.Icon,
		Streak:          h.Streak,
		XP:              h.XP,
		CompletedToday:  completedToday,
		CreatedAt:       h.CreatedAt,
	}
}

func HeatmapToResponse(data map[string]int, period string) dto.HeatmapResponse {
	resp := dto.HeatmapResponse{Data: data, Period: period}
	first := true
	for _, count := range data {
		if first || count < resp.MinValue {
			resp.MinValue = count
		}
		if first || count > resp.MaxValue {
			resp.MaxValue = count
		}
		first = false
	}
	return resp
}

// Goals
func ToCreateGoalInput(req *dto.CreateGoalRequest) goals.CreateGoalInput {
	return goals.CreateGoalInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    goals.Category(req.Category),
		Priority:    goals.Priority(req.Priority),
		Deadline:    req.Deadline,
	}
}

func ToCreateSubtaskInput(req *dto.CreateSubtaskRequest) goals.CreateSubtaskInput {
	return goals.CreateSubtaskInput{
		Title:          req.Title,
		Deadline:       req.Deadline,
		EstimatedHours: req.EstimatedHours,
	}
}

func GoalToResponse(g *goals.Goal, daysLeft int) dto.GoalResponse {
	return dto.GoalResponse{
		Goal:      *g,
		DaysLeft:  daysLeft,
		IsOverdue: daysLeft < 0 && g.Status == goals.StatusActive,
	}
}

// Journal
func ToSaveEntryInput(req *dto.SaveJournalRequest) journal.SaveEntryInput {
	return journal.SaveEntryInput{
		Date:       req.Date,
		Mood:       req.Mood,
		Highlights: req.Highlights,
		Challenges: req.Challenges,
		Gratitude:  req.Gratitude,
		Tomorrow:   req.Tomorrow,
		Reflection: req.Reflection,
	}
}

// Focus
func ToRecordSessionInput(req *dto.RecordSessionRequest) focus.RecordSessionInput {
	input := focus.RecordSessionInput{
		Type:      focus.SessionType(req.Type),
		Category:  req.Category,
		Duration:  req.Duration,
		Completed: true,
	}
	if req.StartTime != nil {
		input.StartTime = *req.StartTime
	}
	if req.Completed != nil {
		input.Completed = *req.Completed
	}
	return input
}

func ToTimerSettings(req *dto.UpdateTimerSettingsRequest) focus.TimerSettings {
	return focus.TimerSettings{
		WorkMinutes:            req.WorkMinutes,
		ShortBreakMinutes:      req.ShortBreakMinutes,
		LongBreakMinutes:       req.LongBreakMinutes,
		SessionsUntilLongBreak: req.SessionsUntilLongBreak,
	}
}

// Reminders
func ToCreateReminderInput(req *dto.CreateReminderRequest) reminders.CreateReminderInput {
	return reminders.CreateReminderInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Recurring:   reminders.Recurrence(req.Recurring),
	}
}
