package tasks

import (
	"context"
	"sync"
	"testing"

	"github.com/focusflow/focusflow/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewService(NewRepository(store.NewMemory(nil)), nil)
}

func TestCreateTaskDefaults(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, CreateTaskInput{Text: "  write report  "})
	require.NoError(t, err)
	assert.Equal(t, "write report", task.Text)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.False(t, task.Completed)
	assert.NotEqual(t, uuid.Nil, task.ID)

	_, err = svc.CreateTask(ctx, CreateTaskInput{Text: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateTask(ctx, CreateTaskInput{Text: "x", Priority: "urgent"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTaskLifecycle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, _ := svc.CreateTask(ctx, CreateTaskInput{Text: "a"})
	b, _ := svc.CreateTask(ctx, CreateTaskInput{Text: "b", Priority: PriorityHigh})
	_, _ = svc.CreateTask(ctx, CreateTaskInput{Text: "c"})

	toggled, err := svc.ToggleTask(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	text := "b, edited"
	edited, err := svc.UpdateTask(ctx, b.ID, UpdateTaskInput{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "b, edited", edited.Text)
	assert.Equal(t, PriorityHigh, edited.Priority)

	blank := " "
	_, err = svc.UpdateTask(ctx, b.ID, UpdateTaskInput{Text: &blank})
	assert.ErrorIs(t, err, ErrInvalidInput)

	list := svc.ListTasks(ctx)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"a", "b, edited", "c"}, []string{list[0].Text, list[1].Text, list[2].Text})
	assert.InDelta(t, 33.33, svc.Progress(ctx), 0.01)

	require.NoError(t, svc.DeleteTask(ctx, b.ID))
	assert.Len(t, svc.ListTasks(ctx), 2)
	assert.ErrorIs(t, svc.DeleteTask(ctx, b.ID), ErrTaskNotFound)

	_, err = svc.ToggleTask(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestReplaceTasks(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	_, _ = svc.CreateTask(ctx, CreateTaskInput{Text: "old"})

	replaced, err := svc.ReplaceTasks(ctx, []CreateTaskInput{
		{Text: "Deep work", StartTime: "2024-01-01 09:00", EndTime: "2024-01-01 11:00", Category: "work"},
		{Text: "Lunch", Category: "break"},
	})
	require.NoError(t, err)
	require.Len(t, replaced, 2)

	list := svc.ListTasks(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "Deep work", list[0].Text)
	assert.Equal(t, "work", list[0].Category)
}

func TestProgressEmpty(t *testing.T) {
	assert.Equal(t, 0.0, newTestService().Progress(context.Background()))
}

func TestConcurrentCreatesAreSerialized(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.CreateTask(ctx, CreateTaskInput{Text: "parallel"})
		}()
	}
	wg.Wait()

	assert.Len(t, svc.ListTasks(ctx), 20)
}
