package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/focusflow/focusflow/internal/domain/reminders"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type countingReminders struct {
	checks atomic.Int32
}

func (c *countingReminders) AddReminder(context.Context, reminders.CreateReminderInput) (*reminders.Reminder, error) {
	return nil, nil
}
func (c *countingReminders) ListReminders(context.Context) []reminders.Reminder { return nil }
func (c *countingReminders) ToggleReminder(context.Context, uuid.UUID) (*reminders.Reminder, error) {
	return nil, nil
}
func (c *countingReminders) DeleteReminder(context.Context, uuid.UUID) error { return nil }
func (c *countingReminders) CheckDue(context.Context, time.Time) ([]reminders.Reminder, error) {
	c.checks.Add(1)
	return nil, nil
}

func TestSchedulerChecksAtStartupAndOnEveryTick(t *testing.T) {
	svc := &countingReminders{}
	s := NewScheduler(svc, nil, nil, WithReminderInterval(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	assert.GreaterOrEqual(t, svc.checks.Load(), int32(1))

	assert.Eventually(t, func() bool { return svc.checks.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	s.Wait()

	stopped := svc.checks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, svc.checks.Load())
}
