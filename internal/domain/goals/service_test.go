package goals

import (
	"context"
	"testing"
	"time"

	"github.com/focusflow/focusflow/internal/store"
	"github.com/focusflow/focusflow/pkg/timeutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewService(NewRepository(store.NewMemory(nil)), nil, timeutil.FixedClock(testNow), nil)
}

func TestCreateGoalValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.CreateGoal(ctx, CreateGoalInput{Title: "No deadline"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateGoal(ctx, CreateGoalInput{Title: "x", Deadline: testNow, Category: "hobby"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	g, err := svc.CreateGoal(ctx, CreateGoalInput{Title: "Learn Go", Deadline: testNow.AddDate(0, 1, 0), Category: CategoryLearning})
	require.NoError(t, err)
	assert.Equal(t, StatusActive, g.Status)
	assert.Equal(t, PriorityMedium, g.Priority)
	assert.Equal(t, 0.0, g.Progress)
	assert.NotNil(t, g.Subtasks)
}

func TestGoalSubtaskFlow(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	g, _ := svc.CreateGoal(ctx, CreateGoalInput{Title: "Run a 10k", Deadline: testNow.AddDate(0, 2, 0), Category: CategoryHealth})

	var err error
	for _, title := range []string{"5k", "8k", "10k", "race"} {
		g, err = svc.AddSubtask(ctx, g.ID, CreateSubtaskInput{Title: title})
		require.NoError(t, err)
	}
	require.Len(t, g.Subtasks, 4)
	assert.Equal(t, g.ID, g.Subtasks[0].GoalID)

	for i := 0; i < 3; i++ {
		g, err = svc.ToggleSubtask(ctx, g.ID, g.Subtasks[i].ID)
		require.NoError(t, err)
	}
	assert.Equal(t, 75.0, g.Progress)
	assert.Equal(t, StatusActive, g.Status)

	g, err = svc.DeleteSubtask(ctx, g.ID, g.Subtasks[3].ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, g.Status)
	require.NotNil(t, g.CompletedAt)

	stored, err := svc.GetGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, stored.Status)
	assert.Equal(t, 100.0, stored.Progress)

	_, err = svc.ToggleSubtask(ctx, uuid.New(), g.Subtasks[0].ID)
	assert.ErrorIs(t, err, ErrGoalNotFound)
	_, err = svc.ToggleSubtask(ctx, g.ID, uuid.New())
	assert.ErrorIs(t, err, ErrSubtaskNotFound)
}

func TestSetStatusAndDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	g, _ := svc.CreateGoal(ctx, CreateGoalInput{Title: "Save", Deadline: testNow.AddDate(1, 0, 0), Category: CategoryFinance})

	paused, err := svc.SetStatus(ctx, g.ID, StatusPaused)
	require.NoError(t, err)
	assert.Equal(t, StatusPaused, paused.Status)

	_, err = svc.SetStatus(ctx, g.ID, "bogus")
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, svc.DeleteGoal(ctx, g.ID))
	assert.Empty(t, svc.ListGoals(ctx))
	assert.ErrorIs(t, svc.DeleteGoal(ctx, g.ID), ErrGoalNotFound)
}

func TestDaysUntilDeadline(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	g, _ := svc.CreateGoal(ctx, CreateGoalInput{Title: "Soon", Deadline: testNow.Add(36 * time.Hour)})
	days, err := svc.DaysUntilDeadline(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, days)

	_, err = svc.DaysUntilDeadline(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrGoalNotFound)
}
