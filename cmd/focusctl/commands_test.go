package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/focusflow/focusflow/internal/app"
	"github.com/focusflow/focusflow/internal/domain/goals"
	"github.com/focusflow/focusflow/internal/domain/habits"
	"github.com/focusflow/focusflow/internal/store"
	"github.com/focusflow/focusflow/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryOpener(st *store.Store) opener {
	cfg := &config.Config{}
	return func(*rootOptions) (*session, error) {
		return &session{
			app:     app.New(cfg, st, nil, app.Options{}),
			backing: &app.Backing{Store: st},
		}, nil
	}
}

func run(t *testing.T, st *store.Store, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmdWith(memoryOpener(st))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestHabitsListAndToggle(t *testing.T) {
	st := store.NewMemory(nil)
	svc := habits.NewService(habits.NewRepository(st), nil)
	habit, err := svc.CreateHabit(context.Background(), habits.CreateHabitInput{Name: "Read"})
	require.NoError(t, err)

	out := run(t, st, "habits", "list")
	assert.Contains(t, out, "Read")
	assert.Contains(t, out, habit.ID.String())

	out = run(t, st, "habits", "toggle", habit.ID.String())
	assert.Contains(t, out, "Read: done today")

	assert.True(t, svc.IsCompletedToday(context.Background(), habit.ID))
}

func TestHabitsToggleRejectsBadID(t *testing.T) {
	cmd := newRootCmdWith(memoryOpener(store.NewMemory(nil)))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"habits", "toggle", "not-a-uuid"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid habit ID")
}

func TestGoalsList(t *testing.T) {
	st := store.NewMemory(nil)
	svc := goals.NewService(goals.NewRepository(st), nil, nil, nil)
	_, err := svc.CreateGoal(context.Background(), goals.CreateGoalInput{
		Title:    "Ship it",
		Deadline: time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)

	out := run(t, st, "goals", "list")
	assert.Contains(t, out, "Ship it")
	assert.Contains(t, out, "active")
}

func TestAnalyticsJSON(t *testing.T) {
	out := run(t, store.NewMemory(nil), "analytics", "--json")
	assert.Contains(t, out, `"productivityScore": 0`)
}
