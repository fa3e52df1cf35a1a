package app

import (
	"github.com/focusflow/focusflow/internal/api/handlers"
	"github.com/focusflow/focusflow/internal/api/routes"
	"github.com/focusflow/focusflow/internal/domain/analytics"
	"github.com/focusflow/focusflow/internal/domain/assistant"
	"github.com/focusflow/focusflow/internal/domain/focus"
	"github.com/focusflow/focusflow/internal/domain/goals"
	"github.com/focusflow/focusflow/internal/domain/habits"
	"github.com/focusflow/focusflow/internal/domain/journal"
	"github.com/focusflow/focusflow/internal/domain/notes"
	"github.com/focusflow/focusflow/internal/domain/notification"
	"github.com/focusflow/focusflow/internal/domain/reminders"
	"github.com/focusflow/focusflow/internal/domain/settings"
	"github.com/focusflow/focusflow/internal/domain/tasks"
	"github.com/focusflow/focusflow/internal/infrastructure/scheduler"
	"github.com/focusflow/focusflow/internal/store"
	"github.com/focusflow/focusflow/pkg/config"
	"github.com/focusflow/focusflow/pkg/logger"
	"github.com/focusflow/focusflow/pkg/timeutil"
)

// Options override the pieces tests want to control.
type Options struct {
	Clock     timeutil.Clock
	Responder assistant.Responder
	Notifier  notification.Service
}

// App is every FocusFlow service wired over one store.
type App struct {
	Store     *store.Store
	Notifier  notification.Service
	Tasks     tasks.Service
	Habits    habits.Service
	Goals     goals.Service
	Journal   journal.Service
	Focus     focus.Service
	Timer     *focus.Timer
	Notes     notes.Service
	Reminders reminders.Service
	Assistant assistant.Service
	Analytics analytics.Service
	Settings  settings.Service
	Scheduler *scheduler.Scheduler

	log *logger.Logger
}

// New builds the services. Calendar days follow cfg.Timezone.
func New(cfg *config.Config, st *store.Store, log *logger.Logger, opts Options) *App {
	if log == nil {
		log = logger.NewNop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = timeutil.SystemClock
	}
	clock = timeutil.InLocation(clock, cfg.Location())

	notifier := opts.Notifier
	if notifier == nil {
		notifier = SetupNotificationSystem(cfg).Service
	}
	responder := opts.Responder
	if responder == nil {
		responder = assistant.NewRuleResponderFromConfig(cfg.Assistant)
	}

	a := &App{Store: st, Notifier: notifier, log: log}

	a.Tasks = tasks.NewService(tasks.NewRepository(st), log.Named("tasks"))
	a.Habits = habits.NewService(habits.NewRepository(st), log.Named("habits"),
		habits.WithXPPolicy(habits.ParseXPPolicy(cfg.Habits.XPPolicy)),
		habits.WithClock(clock),
		habits.WithNotifications(habits.NewHabitNotificationService(notifier)),
	)
	a.Goals = goals.NewService(goals.NewRepository(st), notifier, clock, log.Named("goals"))
	a.Journal = journal.NewService(journal.NewRepository(st), clock, log.Named("journal"))
	a.Focus = focus.NewService(focus.NewRepository(st), clock, log.Named("focus"))
	a.Timer = focus.NewTimer(focus.NewTimerConfig(cfg.Focus), a.Focus, notifier, clock, log.Named("timer"))
	a.Notes = notes.NewService(notes.NewRepository(st), clock, log.Named("notes"))
	a.Reminders = reminders.NewService(reminders.NewRepository(st), notifier, clock, log.Named("reminders"))
	a.Assistant = assistant.NewService(assistant.NewRepository(st), responder, a.Tasks, clock, log.Named("assistant"))
	a.Analytics = analytics.NewService(analytics.Sources{
		Tasks:  a.Tasks,
		Habits: a.Habits,
		Goals:  a.Goals,
		Focus:  a.Focus,
	}, clock, log.Named("analytics"))
	a.Settings = settings.NewService(st, log.Named("settings"))

	schedOpts := []scheduler.Option{scheduler.WithClock(clock)}
	if cfg.Reminders.Interval > 0 {
		schedOpts = append(schedOpts, scheduler.WithReminderInterval(cfg.Reminders.Interval))
	}
	a.Scheduler = scheduler.NewScheduler(a.Reminders, a.Timer, log, schedOpts...)

	return a
}

// Handlers builds the HTTP handlers over the app's services.
func (a *App) Handlers() routes.Handlers {
	return routes.Handlers{
		Tasks:     handlers.NewTaskHandler(a.Tasks),
		Habits:    handlers.NewHabitsHandler(a.Habits),
		Goals:     handlers.NewGoalsHandler(a.Goals),
		Journal:   handlers.NewJournalHandler(a.Journal),
		Focus:     handlers.NewFocusHandler(a.Focus, a.Timer, a.Notes),
		Reminders: handlers.NewRemindersHandler(a.Reminders),
		Assistant: handlers.NewAssistantHandler(a.Assistant),
		Analytics: handlers.NewAnalyticsHandler(a.Analytics),
		Settings:  handlers.NewSettingsHandler(a.Settings),
		Events:    handlers.NewEventsHandler(a.Notifier, a.Store, a.log),
	}
}

// Close waits for background work.
func (a *App) Close() {
	a.Scheduler.Wait()
	a.Notifier.Wait()
}
