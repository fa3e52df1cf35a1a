package focus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/focusflow/focusflow/internal/domain/notification"
	"github.com/focusflow/focusflow/pkg/config"
	"github.com/focusflow/focusflow/pkg/timeutil"
	"go.uber.org/zap"
)

// BreakMinutes is the short break that follows a work phase.
const BreakMinutes = 10

// LongBreakMinutes replaces the short break once every SessionsUntilLong
// work phases.
const LongBreakMinutes = 15

type TimerConfig struct {
	Presets           []int
	DefaultPreset     int
	BreakMinutes      int
	LongBreakMinutes  int
	SessionsUntilLong int
}

func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Presets:           []int{25, 30, 45},
		DefaultPreset:     25,
		BreakMinutes:      BreakMinutes,
		LongBreakMinutes:  LongBreakMinutes,
		SessionsUntilLong: 4,
	}
}

// NewTimerConfig builds the timer settings from the focus section of the config.
func NewTimerConfig(cfg config.FocusConfig) TimerConfig {
	tc := DefaultTimerConfig()
	if len(cfg.Presets) > 0 {
		tc.Presets = append([]int(nil), cfg.Presets...)
	}
	if cfg.WorkMinutes > 0 {
		tc.DefaultPreset = cfg.WorkMinutes
	}
	if cfg.ShortBreakMinutes > 0 {
		tc.BreakMinutes = cfg.ShortBreakMinutes
	}
	if cfg.LongBreakMinutes > 0 {
		tc.LongBreakMinutes = cfg.LongBreakMinutes
	}
	if cfg.SessionsUntilLong > 0 {
		tc.SessionsUntilLong = cfg.SessionsUntilLong
	}
	return tc
}

// Timer is the single pomodoro timer. Tick must be driven from outside,
// normally once a second by the scheduler.
type Timer struct {
	mu        sync.Mutex
	cfg       TimerConfig
	phase     Phase
	remaining time.Duration
	running   bool
	lastTick  time.Time
	completed int
	preset    int

	sessions Service
	notifier notification.Service
	clock    timeutil.Clock
	logger   *zap.Logger
}

func NewTimer(cfg TimerConfig, sessions Service, notifier notification.Service, clock timeutil.Clock, logger *zap.Logger) *Timer {
	if clock == nil {
		clock = timeutil.SystemClock
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DefaultPreset <= 0 {
		cfg.DefaultPreset = DefaultTimerConfig().DefaultPreset
	}
	if cfg.BreakMinutes <= 0 {
		cfg.BreakMinutes = BreakMinutes
	}
	if cfg.LongBreakMinutes <= 0 {
		cfg.LongBreakMinutes = cfg.BreakMinutes
	}
	return &Timer{
		cfg:       cfg,
		phase:     PhaseWork,
		remaining: minutes(cfg.DefaultPreset),
		preset:    cfg.DefaultPreset,
		sessions:  sessions,
		notifier:  notifier,
		clock:     clock,
		logger:    logger,
	}
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

func (t *Timer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return ErrTimerRunning
	}
	t.running = true
	t.lastTick = t.clock()
	t.logger.Info("Focus timer started", zap.String("phase", string(t.phase)), zap.Duration("remaining", t.remaining))
	return nil
}

func (t *Timer) Pause() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return ErrTimerNotRunning
	}
	t.advance(t.clock())
	t.running = false
	return nil
}

// Reset stops the timer and returns to a fresh work phase.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.running = false
	t.phase = PhaseWork
	t.remaining = minutes(t.preset)
	t.completed = 0
}

// SelectPreset switches the work length. Only allowed while paused.
func (t *Timer) SelectPreset(m int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return ErrTimerRunning
	}
	if !t.allowed(m) {
		return fmt.Errorf("%w: %d minutes", ErrPresetNotAllowed, m)
	}
	t.preset = m
	t.phase = PhaseWork
	t.remaining = minutes(m)
	return nil
}

// UpdateSettings replaces the pomodoro lengths. The work length becomes the
// selected preset; a paused timer restarts the current phase at its new length.
func (t *Timer) UpdateSettings(settings TimerSettings) error {
	if settings.WorkMinutes <= 0 || settings.ShortBreakMinutes <= 0 ||
		settings.LongBreakMinutes <= 0 || settings.SessionsUntilLongBreak <= 0 {
		return fmt.Errorf("%w: lengths and cycle must be positive", ErrInvalidSettings)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.cfg.DefaultPreset = settings.WorkMinutes
	t.cfg.BreakMinutes = settings.ShortBreakMinutes
	t.cfg.LongBreakMinutes = settings.LongBreakMinutes
	t.cfg.SessionsUntilLong = settings.SessionsUntilLongBreak
	t.preset = settings.WorkMinutes
	if !t.running {
		t.remaining = minutes(t.phaseLength(t.phase))
	}
	t.logger.Info("Focus timer settings updated",
		zap.Int("work", settings.WorkMinutes),
		zap.Int("shortBreak", settings.ShortBreakMinutes),
		zap.Int("longBreak", settings.LongBreakMinutes),
		zap.Int("sessionsUntilLongBreak", settings.SessionsUntilLongBreak))
	return nil
}

func (t *Timer) phaseLength(p Phase) int {
	switch p {
	case PhaseShortBreak:
		return t.cfg.BreakMinutes
	case PhaseLongBreak:
		return t.cfg.LongBreakMinutes
	default:
		return t.preset
	}
}

// untilLong is how many work phases remain before the next long break.
func (t *Timer) untilLong() int {
	if t.cfg.SessionsUntilLong <= 0 {
		return 0
	}
	return t.cfg.SessionsUntilLong - t.completed%t.cfg.SessionsUntilLong
}

func (t *Timer) allowed(m int) bool {
	if m == t.cfg.DefaultPreset {
		return true
	}
	for _, p := range t.cfg.Presets {
		if p == m {
			return true
		}
	}
	return false
}

// Tick consumes wall time elapsed since the last tick and completes the
// phase when it runs out.
func (t *Timer) Tick(ctx context.Context, now time.Time) {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.advance(now)
	if t.remaining > 0 {
		t.mu.Unlock()
		return
	}

	finished := t.phase
	preset := t.preset
	t.running = false
	if finished == PhaseWork {
		t.completed++
		t.phase = PhaseShortBreak
		if t.cfg.SessionsUntilLong > 0 && t.completed%t.cfg.SessionsUntilLong == 0 {
			t.phase = PhaseLongBreak
		}
	} else {
		t.phase = PhaseWork
	}
	t.remaining = minutes(t.phaseLength(t.phase))
	breakMinutes := t.phaseLength(t.phase)
	t.mu.Unlock()

	t.complete(ctx, finished, preset, breakMinutes, now)
}

func (t *Timer) advance(now time.Time) {
	if elapsed := now.Sub(t.lastTick); elapsed > 0 {
		t.remaining -= elapsed
	}
	t.lastTick = now
	if t.remaining < 0 {
		t.remaining = 0
	}
}

func (t *Timer) complete(ctx context.Context, finished Phase, preset, breakMinutes int, now time.Time) {
	var n *notification.Notification
	if finished == PhaseWork {
		if t.sessions != nil {
			_, err := t.sessions.RecordSession(ctx, RecordSessionInput{
				Type:      SessionWork,
				Category:  "focus",
				Duration:  preset,
				StartTime: now.Add(-minutes(preset)),
				Completed: true,
			})
			if err != nil {
				t.logger.Error("Failed to record focus session", zap.Error(err))
			}
		}
		n = notification.New(notification.FocusComplete, "Work session completed!",
			fmt.Sprintf("Time for a %d-minute break!", breakMinutes))
	} else {
		n = notification.New(notification.BreakComplete, "Break session completed!", "Time to get back to work!")
	}

	t.logger.Info("Focus phase completed", zap.String("phase", string(finished)))
	if t.notifier != nil {
		t.notifier.Notify(ctx, n)
	}
}

func (t *Timer) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()

	return TimerState{
		Phase:             t.phase,
		Remaining:         timeutil.FormatDuration(t.remaining),
		RemainingSeconds:  int(t.remaining.Round(time.Second) / time.Second),
		Running:           t.running,
		SessionsCompleted: t.completed,
		SessionsUntilLong: t.untilLong(),
		Preset:            t.preset,
		Presets:           append([]int(nil), t.cfg.Presets...),
		Settings: TimerSettings{
			WorkMinutes:            t.cfg.DefaultPreset,
			ShortBreakMinutes:      t.cfg.BreakMinutes,
			LongBreakMinutes:       t.cfg.LongBreakMinutes,
			SessionsUntilLongBreak: t.cfg.SessionsUntilLong,
		},
	}
}
