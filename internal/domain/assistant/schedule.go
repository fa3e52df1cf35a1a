package assistant

import (
	"regexp"
	"strings"
	"time"

	"github.com/focusflow/focusflow/internal/domain/tasks"
	"github.com/focusflow/focusflow/pkg/timeutil"
)

var scheduleLine = regexp.MustCompile(`^\s*[-*•]?\s*(\d{1,2}:\d{2})\s*(?:AM|PM|am|pm)?\s*-\s*(\d{1,2}:\d{2})\s*(?:AM|PM|am|pm)?\s*[:\-]?\s*(.+)$`)

var categoryRules = []struct {
	category string
	keywords []string
}{
	{"work", []string{"work", "meeting", "project", "email", "admin"}},
	{"learning", []string{"study", "learn", "read", "exam", "research"}},
	{"fitness", []string{"exercise", "workout", "gym", "run", "fitness"}},
	{"health", []string{"eat", "meal", "breakfast", "lunch", "dinner", "cook"}},
	{"personal", []string{"family", "friend", "social", "hobby", "relax"}},
	{"break", []string{"break", "rest", "walk", "stretch"}},
}

// DetectCategory files a planner line under the first matching category.
func DetectCategory(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		if containsAny(lower, rule.keywords) {
			return rule.category
		}
	}
	return "general"
}

func padClock(clock string) string {
	if len(clock) == 4 {
		return "0" + clock
	}
	return clock
}

// ParseSchedule turns every "HH:MM - HH:MM activity" line of text into a
// planner task dated day. Headings and bold markup are skipped.
func ParseSchedule(text string, day time.Time) []tasks.CreateTaskInput {
	date := timeutil.DateString(day)
	var out []tasks.CreateTaskInput
	for _, line := range strings.Split(text, "\n") {
		m := scheduleLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		activity := strings.TrimSpace(m[3])
		activity = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(activity, "**"), "**"))
		if len(activity) <= 3 || strings.Contains(activity, "**") || strings.Contains(activity, "##") {
			continue
		}
		out = append(out, tasks.CreateTaskInput{
			Text:      activity,
			StartTime: date + " " + padClock(m[1]),
			EndTime:   date + " " + padClock(m[2]),
			Priority:  tasks.PriorityMedium,
			Category:  DetectCategory(activity),
		})
	}
	return out
}
