package goals

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func goalWithSubtasks(done ...bool) *Goal {
	g := &Goal{ID: uuid.New(), Title: "Ship v1", Status: StatusActive}
	for _, d := range done {
		g.Subtasks = append(g.Subtasks, GoalSubtask{ID: uuid.New(), GoalID: g.ID, Title: "step", Completed: d})
	}
	return g
}

func TestComputeProgress(t *testing.T) {
	assert.Equal(t, 0.0, ComputeProgress(nil))
	assert.Equal(t, 75.0, ComputeProgress(goalWithSubtasks(true, true, true, false).Subtasks))
	assert.Equal(t, 100.0, ComputeProgress(goalWithSubtasks(true, true, true).Subtasks))
	assert.InDelta(t, 33.33, ComputeProgress(goalWithSubtasks(true, false, false).Subtasks), 0.01)
}

func TestThreeOfFourStaysActive(t *testing.T) {
	g := goalWithSubtasks(true, true, false, false)

	transition, err := ToggleSubtask(g, g.Subtasks[2].ID, testNow)
	require.NoError(t, err)

	assert.Equal(t, TransitionNone, transition)
	assert.Equal(t, 75.0, g.Progress)
	assert.Equal(t, StatusActive, g.Status)
	assert.Nil(t, g.CompletedAt)
}

func TestCompletingLastSubtaskCompletesGoal(t *testing.T) {
	g := goalWithSubtasks(true, true, false)

	transition, err := ToggleSubtask(g, g.Subtasks[2].ID, testNow)
	require.NoError(t, err)

	assert.Equal(t, TransitionCompleted, transition)
	assert.Equal(t, 100.0, g.Progress)
	assert.Equal(t, StatusCompleted, g.Status)
	require.NotNil(t, g.CompletedAt)
	assert.Equal(t, testNow, *g.CompletedAt)
}

func TestUncompletingReopens(t *testing.T) {
	g := goalWithSubtasks(true, true)
	Recompute(g, testNow)
	require.Equal(t, StatusCompleted, g.Status)

	transition, err := ToggleSubtask(g, g.Subtasks[0].ID, testNow.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, TransitionReopened, transition)
	assert.Equal(t, StatusActive, g.Status)
	assert.Nil(t, g.CompletedAt)
	assert.Equal(t, 50.0, g.Progress)
}

func TestAddingSubtaskReopensCompletedGoal(t *testing.T) {
	g := goalWithSubtasks(true)
	Recompute(g, testNow)

	_, transition, err := AddSubtask(g, CreateSubtaskInput{Title: "one more"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, TransitionReopened, transition)
	assert.Equal(t, 50.0, g.Progress)

	_, _, err = AddSubtask(g, CreateSubtaskInput{Title: "  "}, testNow)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeletingLastIncompleteSubtaskCompletes(t *testing.T) {
	g := goalWithSubtasks(true, false, true)

	transition, err := DeleteSubtask(g, g.Subtasks[1].ID, testNow)
	require.NoError(t, err)

	assert.Equal(t, TransitionCompleted, transition)
	assert.Equal(t, StatusCompleted, g.Status)
	require.NotNil(t, g.CompletedAt)
	assert.Len(t, g.Subtasks, 2)
}

func TestDeletingAllSubtasksZeroesProgress(t *testing.T) {
	g := goalWithSubtasks(true)
	Recompute(g, testNow)

	_, err := DeleteSubtask(g, g.Subtasks[0].ID, testNow)
	require.NoError(t, err)

	assert.Equal(t, 0.0, g.Progress)
	assert.Equal(t, StatusActive, g.Status)
	assert.Nil(t, g.CompletedAt)
}

func TestPausedGoalBelowHundredKeepsStatus(t *testing.T) {
	g := goalWithSubtasks(false, false)
	g.Status = StatusPaused

	_, err := ToggleSubtask(g, g.Subtasks[0].ID, testNow)
	require.NoError(t, err)
	assert.Equal(t, StatusPaused, g.Status)

	// reaching 100 completes from any status
	_, err = ToggleSubtask(g, g.Subtasks[1].ID, testNow)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, g.Status)
}

func TestProgressHundredIffAllDone(t *testing.T) {
	cases := [][]bool{{}, {false}, {true}, {true, false}, {true, true, true, true, true}}
	for _, c := range cases {
		g := goalWithSubtasks(c...)
		Recompute(g, testNow)

		all := len(c) > 0
		for _, d := range c {
			all = all && d
		}
		assert.Equal(t, all, g.Progress == 100, "%v", c)
	}
}

func TestUnknownSubtask(t *testing.T) {
	g := goalWithSubtasks(false)
	_, err := ToggleSubtask(g, uuid.New(), testNow)
	assert.ErrorIs(t, err, ErrSubtaskNotFound)
	_, err = DeleteSubtask(g, uuid.New(), testNow)
	assert.ErrorIs(t, err, ErrSubtaskNotFound)
}

func TestSetStatus(t *testing.T) {
	g := goalWithSubtasks(false)

	require.NoError(t, SetStatus(g, StatusCompleted, testNow))
	require.NotNil(t, g.CompletedAt)

	require.NoError(t, SetStatus(g, StatusCancelled, testNow))
	assert.Nil(t, g.CompletedAt)
	assert.Equal(t, StatusCancelled, g.Status)

	assert.ErrorIs(t, SetStatus(g, "archived", testNow), ErrInvalidInput)
}
