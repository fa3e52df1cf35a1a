package habits

import (
	"time"

	"github.com/focusflow/focusflow/pkg/timeutil"
)

// HeatmapStart returns the first day covered by a heatmap period ending at now.
// Unknown periods cover a year.
func HeatmapStart(period string, now time.Time) time.Time {
	switch period {
	case "week":
		return now.AddDate(0, 0, -7)
	case "month":
		return now.AddDate(0, -1, 0)
	default:
		return now.AddDate(-1, 0, 0)
	}
}

// Heatmap counts completed entries per day between from and to, inclusive.
func Heatmap(completions []HabitCompletion, from, to time.Time) map[string]int {
	start := timeutil.DateString(from)
	end := timeutil.DateString(to)

	counts := make(map[string]int)
	for _, c := range completions {
		if !c.Completed || c.Date < start || c.Date > end {
			continue
		}
		counts[c.Date]++
	}
	return counts
}
