package assistant

import "strings"

type Intent string

const (
	IntentSchedule    Intent = "schedule"
	IntentExplanation Intent = "explanation"
	IntentKnowledge   Intent = "knowledge"
	IntentAdvice      Intent = "advice"
	IntentProblem     Intent = "problem"
	IntentCreative    Intent = "creative"
	IntentGeneral     Intent = "general"
)

type TimeOfDay string

const (
	TimeUnspecified  TimeOfDay = ""
	TimeMorning      TimeOfDay = "morning"
	TimeAfternoon    TimeOfDay = "afternoon"
	TimeEvening      TimeOfDay = "evening"
	TimeNight        TimeOfDay = "night"
	TimeMorningEve   TimeOfDay = "morning-evening"
	TimeMorningNight TimeOfDay = "morning-night"
	TimeEveningNight TimeOfDay = "evening-night"
)

type intentRule struct {
	intent   Intent
	keywords []string
}

// intentRules is checked top to bottom; the first rule with a matching
// keyword wins.
var intentRules = []intentRule{
	{IntentSchedule, []string{"schedule", "plan", "routine", "timetable", "organize", "time", "when", "study plan", "work plan", "create a", "design"}},
	{IntentExplanation, []string{"explain", "how does", "what is"}},
	{IntentKnowledge, []string{"what", "how", "why", "when", "where", "who", "which", "explain", "tell me about"}},
	{IntentAdvice, []string{"help", "advice", "suggest", "recommend", "should i", "what do you think", "opinion"}},
	{IntentProblem, []string{"problem", "issue", "solve", "fix", "error", "trouble", "stuck", "challenge"}},
	{IntentCreative, []string{"create", "write", "generate", "make", "design", "compose", "story", "poem", "idea"}},
}

var timeOfDayRules = []struct {
	tod      TimeOfDay
	keywords []string
}{
	{TimeNight, []string{"night", "midnight", "late", "10 pm", "11 pm", "12 am", "1 am", "2 am"}},
	{TimeMorning, []string{"morning", "early", "dawn", "5 am", "6 am", "7 am", "8 am", "9 am"}},
	{TimeEvening, []string{"evening", "after work", "6 pm", "7 pm", "8 pm", "9 pm", "10 pm"}},
	{TimeAfternoon, []string{"afternoon", "lunch", "1 pm", "2 pm", "3 pm"}},
}

var subjects = []struct {
	key   string
	label string
}{
	{"quantum", "quantum physics"},
	{"ai", "artificial intelligence"},
	{"machine learning", "machine learning"},
	{"programming", "programming"},
	{"javascript", "JavaScript"},
	{"python", "Python"},
	{"react", "React"},
	{"health", "health and wellness"},
	{"fitness", "fitness and exercise"},
	{"nutrition", "nutrition"},
	{"business", "business"},
	{"marketing", "marketing"},
	{"finance", "finance"},
	{"investment", "investing"},
	{"science", "science"},
	{"history", "history"},
	{"geography", "geography"},
	{"math", "mathematics"},
	{"physics", "physics"},
	{"chemistry", "chemistry"},
	{"biology", "biology"},
}

// Analysis is what the classifier extracted from one message.
type Analysis struct {
	Input     string
	Intent    Intent
	TimeOfDay TimeOfDay
	Subject   string
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// Analyze lower-cases input and classifies it.
func Analyze(input string) Analysis {
	lower := strings.ToLower(strings.TrimSpace(input))
	a := Analysis{Input: lower, Intent: IntentGeneral}
	for _, rule := range intentRules {
		if containsAny(lower, rule.keywords) {
			a.Intent = rule.intent
			break
		}
	}
	if a.Intent == IntentSchedule {
		a.TimeOfDay = DetectTimeOfDay(lower)
	}
	if a.Intent == IntentKnowledge || a.Intent == IntentExplanation {
		a.Subject = ExtractSubject(lower)
	}
	return a
}

// DetectTimeOfDay expects lower-case input. Combined periods win over single ones.
func DetectTimeOfDay(input string) TimeOfDay {
	morning := strings.Contains(input, "morning")
	evening := strings.Contains(input, "evening")
	night := strings.Contains(input, "night")
	switch {
	case morning && evening:
		return TimeMorningEve
	case morning && night:
		return TimeMorningNight
	case evening && night:
		return TimeEveningNight
	}
	for _, rule := range timeOfDayRules {
		if containsAny(input, rule.keywords) {
			return rule.tod
		}
	}
	return TimeUnspecified
}

// ExtractSubject returns the first known topic in input. Single-word keys
// must match a whole word so "explain" is not read as "ai".
func ExtractSubject(input string) string {
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(input, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	}) {
		words[w] = true
	}
	for _, s := range subjects {
		if strings.Contains(s.key, " ") {
			if strings.Contains(input, s.key) {
				return s.label
			}
			continue
		}
		if words[s.key] {
			return s.label
		}
	}
	return "general topic"
}
