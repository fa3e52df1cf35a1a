package assistant

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/focusflow/focusflow/pkg/config"
)

// Responder produces the assistant's reply to one user message.
type Responder interface {
	Respond(ctx context.Context, input string, history []Message) (string, error)
}

// RuleResponder replies from the fixed template tables, waiting a random
// delay in [MinDelay, MaxDelay) first.
type RuleResponder struct {
	mu       sync.Mutex
	rng      *rand.Rand
	minDelay time.Duration
	maxDelay time.Duration
}

func NewRuleResponder(rng *rand.Rand, minDelay, maxDelay time.Duration) *RuleResponder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &RuleResponder{rng: rng, minDelay: minDelay, maxDelay: maxDelay}
}

// NewRuleResponderFromConfig seeds the generator from cfg.Seed; zero means
// seed from the clock.
func NewRuleResponderFromConfig(cfg config.AssistantConfig) *RuleResponder {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewRuleResponder(rand.New(rand.NewSource(seed)), cfg.MinDelay, cfg.MaxDelay)
}

func (r *RuleResponder) intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

func (r *RuleResponder) delay() time.Duration {
	span := r.maxDelay - r.minDelay
	if span <= 0 {
		return r.minDelay
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.minDelay + time.Duration(r.rng.Int63n(int64(span)))
}

func (r *RuleResponder) Respond(ctx context.Context, input string, _ []Message) (string, error) {
	if d := r.delay(); d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	return r.Reply(Analyze(input)), nil
}

// Reply picks a template for a without waiting.
func (r *RuleResponder) Reply(a Analysis) string {
	if a.Intent == IntentSchedule {
		options := scheduleTemplates[a.TimeOfDay]
		if len(options) == 0 {
			options = scheduleTemplates[TimeUnspecified]
		}
		return options[r.intn(len(options))]
	}

	options := intentTemplates[a.Intent]
	if len(options) == 0 {
		options = intentTemplates[IntentGeneral]
	}
	tmpl := options[r.intn(len(options))]
	if n := strings.Count(tmpl, "%s"); n > 0 {
		args := make([]interface{}, n)
		for i := range args {
			args[i] = a.Subject
		}
		return fmt.Sprintf(tmpl, args...)
	}
	return tmpl
}
