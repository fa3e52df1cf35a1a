package journal

import (
	"context"
	"testing"
	"time"

	"github.com/focusflow/focusflow/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func TestSaveEntryUpsertsByDate(t *testing.T) {
	clock := &stepClock{now: time.Date(2024, 4, 2, 21, 0, 0, 0, time.UTC)}
	svc := NewService(NewRepository(store.NewMemory(nil)), clock.Now, nil)
	ctx := context.Background()

	first, err := svc.SaveEntry(ctx, SaveEntryInput{Highlights: "shipped"})
	require.NoError(t, err)
	assert.Equal(t, "2024-04-02", first.Date)
	assert.Equal(t, DefaultMood, first.Mood)

	clock.now = clock.now.Add(time.Hour)
	second, err := svc.SaveEntry(ctx, SaveEntryInput{Date: "2024-04-02", Mood: 5, Highlights: "shipped and celebrated"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
	assert.Len(t, svc.ListEntries(ctx), 1)

	got, err := svc.GetEntry(ctx, "2024-04-02")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Mood)
	assert.Equal(t, "shipped and celebrated", got.Highlights)
}

func TestSaveEntryValidation(t *testing.T) {
	svc := NewService(NewRepository(store.NewMemory(nil)), nil, nil)
	ctx := context.Background()

	_, err := svc.SaveEntry(ctx, SaveEntryInput{Date: "2024-04-02", Mood: 6})
	assert.ErrorIs(t, err, ErrInvalidMood)
	_, err = svc.SaveEntry(ctx, SaveEntryInput{Date: "2024-04-02", Mood: -1})
	assert.ErrorIs(t, err, ErrInvalidMood)
	_, err = svc.SaveEntry(ctx, SaveEntryInput{Date: "April 2nd"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestListNewestFirstAndDelete(t *testing.T) {
	svc := NewService(NewRepository(store.NewMemory(nil)), nil, nil)
	ctx := context.Background()

	for _, d := range []string{"2024-04-01", "2024-04-03", "2024-04-02"} {
		_, err := svc.SaveEntry(ctx, SaveEntryInput{Date: d})
		require.NoError(t, err)
	}

	list := svc.ListEntries(ctx)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"2024-04-03", "2024-04-02", "2024-04-01"}, []string{list[0].Date, list[1].Date, list[2].Date})

	require.NoError(t, svc.DeleteEntry(ctx, "2024-04-02"))
	assert.ErrorIs(t, svc.DeleteEntry(ctx, "2024-04-02"), ErrEntryNotFound)
	_, err := svc.GetEntry(ctx, "2024-04-02")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}
