package assistant

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeIntent(t *testing.T) {
	cases := []struct {
		input string
		want  Intent
	}{
		{"Plan my study schedule for tonight", IntentSchedule},
		{"Design an energizing morning routine", IntentSchedule},
		{"Explain photosynthesis", IntentExplanation},
		{"What is quantum entanglement?", IntentExplanation},
		{"Who invented the printing press?", IntentKnowledge},
		{"Can you give me some advice?", IntentAdvice},
		{"I'm stuck on a bug", IntentProblem},
		{"Compose a poem about rain", IntentCreative},
		{"hello there", IntentGeneral},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, Analyze(tc.input).Intent)
		})
	}
}

func TestDetectTimeOfDay(t *testing.T) {
	assert.Equal(t, TimeMorningEve, DetectTimeOfDay("a morning and evening routine"))
	assert.Equal(t, TimeMorningNight, DetectTimeOfDay("morning and night"))
	assert.Equal(t, TimeEveningNight, DetectTimeOfDay("evening into the night"))
	assert.Equal(t, TimeNight, DetectTimeOfDay("from 10 pm until 2 am"))
	assert.Equal(t, TimeMorning, DetectTimeOfDay("starting at 6 am"))
	assert.Equal(t, TimeEvening, DetectTimeOfDay("after work"))
	assert.Equal(t, TimeAfternoon, DetectTimeOfDay("around lunch"))
	assert.Equal(t, TimeUnspecified, DetectTimeOfDay("my day"))
}

func TestExtractSubject(t *testing.T) {
	assert.Equal(t, "quantum physics", ExtractSubject("tell me about quantum computers"))
	assert.Equal(t, "artificial intelligence", ExtractSubject("what is ai"))
	assert.Equal(t, "machine learning", ExtractSubject("how does machine learning work"))
	assert.Equal(t, "general topic", ExtractSubject("explain the rules"))
}

func TestReplyIsDeterministicForSeed(t *testing.T) {
	a := NewRuleResponder(rand.New(rand.NewSource(7)), 0, 0)
	b := NewRuleResponder(rand.New(rand.NewSource(7)), 0, 0)

	for _, input := range []string{"plan my morning", "hello", "write a story", "plan my evening"} {
		assert.Equal(t, a.Reply(Analyze(input)), b.Reply(Analyze(input)))
	}
}

func TestReplyFillsSubject(t *testing.T) {
	r := NewRuleResponder(rand.New(rand.NewSource(1)), 0, 0)
	reply := r.Reply(Analyze("Explain python decorators"))
	assert.Contains(t, reply, "Python")
	assert.NotContains(t, reply, "%s")
	assert.NotContains(t, reply, "%!")
}

func TestEveryScheduleTemplateParses(t *testing.T) {
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	for tod, options := range scheduleTemplates {
		for i, tmpl := range options {
			parsed := ParseSchedule(tmpl, day)
			require.NotEmpty(t, parsed, "template %q #%d", tod, i)
		}
	}
}

func TestDelayWithinBounds(t *testing.T) {
	r := NewRuleResponder(rand.New(rand.NewSource(3)), time.Second, 3*time.Second)
	for i := 0; i < 100; i++ {
		d := r.delay()
		assert.GreaterOrEqual(t, d, time.Second)
		assert.Less(t, d, 3*time.Second)
	}
}
