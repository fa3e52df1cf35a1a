package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekDates(t *testing.T) {
	now := time.Date(2024, 3, 2, 15, 4, 0, 0, time.UTC)
	week := WeekDates(now)

	require.Len(t, week, 7)
	assert.Equal(t, "2024-02-25", week[0])
	assert.Equal(t, "2024-02-29", week[4])
	assert.Equal(t, "2024-03-02", week[6])
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		expected int
	}{
		{"same instant", now, 0},
		{"half a day rounds up", now.Add(12 * time.Hour), 1},
		{"exactly two days", now.Add(48 * time.Hour), 2},
		{"two and a bit", now.Add(49 * time.Hour), 3},
		{"past deadline", now.Add(-36 * time.Hour), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysUntil(now, tt.deadline))
		})
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2024-05-06", "09:30", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 6, 9, 30, 0, 0, time.UTC), got)

	_, err = ParseDateTime("2024-05-06", "9h", time.UTC)
	assert.Error(t, err)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "24:59", FormatDuration(25*time.Minute-time.Second))
	assert.Equal(t, "00:00", FormatDuration(-time.Second))
}
