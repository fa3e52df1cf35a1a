package goals

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrSubtaskNotFound = errors.New("subtask not found")

// Transition names a status change made by Recompute.
type Transition string

const (
	TransitionNone      Transition = ""
	TransitionCompleted Transition = "completed"
	TransitionReopened  Transition = "reopened"
)

// ComputeProgress is the completed share of subtasks in percent, 0 with none.
func ComputeProgress(subtasks []GoalSubtask) float64 {
	if len(subtasks) == 0 {
		return 0
	}
	return float64(countCompleted(subtasks)) / float64(len(subtasks)) * 100
}

func countCompleted(subtasks []GoalSubtask) int {
	n := 0
	for _, st := range subtasks {
		if st.Completed {
			n++
		}
	}
	return n
}

// allDone reports full completion on counts, not on the float progress.
func allDone(subtasks []GoalSubtask) bool {
	return len(subtasks) > 0 && countCompleted(subtasks) == len(subtasks)
}

// Recompute refreshes progress and applies the two status transitions tied to it:
//   - all subtasks done: any status becomes completed and CompletedAt is stamped
//   - not all done while completed: status becomes active and CompletedAt is cleared
//
// Paused and cancelled goals below 100 keep their status.
func Recompute(goal *Goal, now time.Time) Transition {
	goal.Progress = ComputeProgress(goal.Subtasks)

	if allDone(goal.Subtasks) {
		if goal.Status == StatusCompleted && goal.CompletedAt != nil {
			return TransitionNone
		}
		goal.Status = StatusCompleted
		stamp := now
		goal.CompletedAt = &stamp
		return TransitionCompleted
	}

	if goal.Status == StatusCompleted {
		goal.Status = StatusActive
		goal.CompletedAt = nil
		return TransitionReopened
	}
	return TransitionNone
}

// AddSubtask appends a subtask and recomputes.
func AddSubtask(goal *Goal, input CreateSubtaskInput, now time.Time) (GoalSubtask, Transition, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return GoalSubtask{}, TransitionNone, ErrInvalidInput
	}
	st := GoalSubtask{
		ID:             uuid.New(),
		GoalID:         goal.ID,
		Title:          title,
		Deadline:       input.Deadline,
		EstimatedHours: input.EstimatedHours,
		CreatedAt:      now,
	}
	goal.Subtasks = append(goal.Subtasks, st)
	return st, Recompute(goal, now), nil
}

// ToggleSubtask flips one subtask and recomputes.
func ToggleSubtask(goal *Goal, subtaskID uuid.UUID, now time.Time) (Transition, error) {
	for i := range goal.Subtasks {
		if goal.Subtasks[i].ID == subtaskID {
			goal.Subtasks[i].Completed = !goal.Subtasks[i].Completed
			return Recompute(goal, now), nil
		}
	}
	return TransitionNone, ErrSubtaskNotFound
}

// DeleteSubtask removes one subtask and recomputes.
func DeleteSubtask(goal *Goal, subtaskID uuid.UUID, now time.Time) (Transition, error) {
	for i := range goal.Subtasks {
		if goal.Subtasks[i].ID == subtaskID {
			kept := make([]GoalSubtask, 0, len(goal.Subtasks)-1)
			kept = append(kept, goal.Subtasks[:i]...)
			kept = append(kept, goal.Subtasks[i+1:]...)
			goal.Subtasks = kept
			return Recompute(goal, now), nil
		}
	}
	return TransitionNone, ErrSubtaskNotFound
}

// SetStatus sets any valid status; there is no transition graph. Setting
// completed stamps CompletedAt, leaving completed clears it. Progress is
// untouched, so the next subtask change may reopen a goal marked complete by hand.
func SetStatus(goal *Goal, status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidInput
	}
	if status == StatusCompleted && goal.Status != StatusCompleted {
		stamp := now
		goal.CompletedAt = &stamp
	}
	if status != StatusCompleted {
		goal.CompletedAt = nil
	}
	goal.Status = status
	return nil
}
