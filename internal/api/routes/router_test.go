package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/focusflow/focusflow/internal/api/middleware"
	"github.com/focusflow/focusflow/internal/api/routes"
	"github.com/focusflow/focusflow/internal/app"
	"github.com/focusflow/focusflow/internal/domain/assistant"
	"github.com/focusflow/focusflow/internal/domain/notification"
	"github.com/focusflow/focusflow/internal/store"
	"github.com/focusflow/focusflow/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router http.Handler
	app    *app.App
}

func newTestServer(t *testing.T, readiness map[string]routes.HealthCheck) *testServer {
	return newLimitedTestServer(t, readiness, nil)
}

func newLimitedTestServer(t *testing.T, readiness map[string]routes.HealthCheck, limiter middleware.RateLimiter) *testServer {
	t.Helper()

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	cfg := &config.Config{Timezone: "UTC"}
	a := app.New(cfg, store.NewMemory(nil), nil, app.Options{
		Clock:     func() time.Time { return testNow },
		Responder: assistant.NewRuleResponder(rand.New(rand.NewSource(7)), 0, 0),
		Notifier:  notification.NewService(notification.ServiceConfig{Logger: quiet}),
	})
	t.Cleanup(a.Close)

	router := routes.NewRouter(routes.RouterConfig{
		CORS:        config.CORSConfig{AllowedOrigins: []string{"*"}},
		Readiness:   readiness,
		RateLimiter: limiter,
	}, a.Handlers())
	return &testServer{router: router, app: a}
}

type envelope struct {
	Data    json.RawMessage   `json:"data"`
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestHealthRoutes(t *testing.T) {
	s := newTestServer(t, map[string]routes.HealthCheck{
		"database": func(ctx context.Context) error { return errors.New("connection refused") },
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp routes.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unavailable", resp.Status)
	assert.Equal(t, "connection refused", resp.Checks["database"])
}

func TestReadinessReportsBackendDetails(t *testing.T) {
	router := gin.New()
	routes.SetupHealthRoutes(router, map[string]routes.HealthCheck{
		"redis": func(ctx context.Context) error { return nil },
	}, map[string]routes.HealthDetail{
		"redis": func() map[string]interface{} {
			return map[string]interface{}{"hits": 3, "misses": 1}
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status  string                        `json:"status"`
		Details map[string]map[string]float64 `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)
	assert.Equal(t, float64(3), resp.Details["redis"]["hits"])
	assert.Equal(t, float64(1), resp.Details["redis"]["misses"])
}

func TestTaskRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	code, env := s.do(t, http.MethodPost, "/api/tasks", map[string]string{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "validation failed", env.Error)
	assert.Contains(t, env.Details, "text")

	code, env = s.do(t, http.MethodPost, "/api/tasks", map[string]string{"text": "Write report", "priority": "high"})
	require.Equal(t, http.StatusCreated, code)
	task := decode[struct {
		ID       string `json:"id"`
		Text     string `json:"text"`
		Priority string `json:"priority"`
	}](t, env.Data)
	assert.Equal(t, "Write report", task.Text)
	assert.Equal(t, "high", task.Priority)

	code, _ = s.do(t, http.MethodPost, "/api/tasks/"+task.ID+"/toggle", nil)
	require.Equal(t, http.StatusOK, code)

	code, env = s.do(t, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, code)
	list := decode[struct {
		Tasks    []json.RawMessage `json:"tasks"`
		Progress float64           `json:"progress"`
	}](t, env.Data)
	assert.Len(t, list.Tasks, 1)
	assert.Equal(t, 100.0, list.Progress)

	code, _ = s.do(t, http.MethodPut, "/api/tasks/"+task.ID, map[string]string{"text": "Write final report"})
	assert.Equal(t, http.StatusOK, code)

	code, env = s.do(t, http.MethodDelete, "/api/tasks/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid task ID", env.Error)

	code, _ = s.do(t, http.MethodDelete, "/api/tasks/"+task.ID, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(t, http.MethodPost, "/api/tasks/"+task.ID+"/toggle", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestHabitRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	code, env := s.do(t, http.MethodPost, "/api/habits", map[string]interface{}{
		"name":     "Meditate",
		"category": "health",
	})
	require.Equal(t, http.StatusCreated, code)
	habit := decode[struct {
		ID string `json:"id"`
	}](t, env.Data)

	code, env = s.do(t, http.MethodPost, "/api/habits/"+habit.ID+"/toggle", nil)
	require.Equal(t, http.StatusOK, code)
	toggled := decode[struct {
		Completed bool `json:"completed"`
		XPDelta   int  `json:"xpDelta"`
		Habit     struct {
			Streak         int  `json:"streak"`
			CompletedToday bool `json:"completedToday"`
		} `json:"habit"`
	}](t, env.Data)
	assert.True(t, toggled.Completed)
	assert.Positive(t, toggled.XPDelta)
	assert.Equal(t, 1, toggled.Habit.Streak)
	assert.True(t, toggled.Habit.CompletedToday)

	code, env = s.do(t, http.MethodGet, "/api/habits", nil)
	require.Equal(t, http.StatusOK, code)
	list := decode[struct {
		TotalCount     int `json:"totalCount"`
		CompletedToday int `json:"completedToday"`
		TotalXP        int `json:"totalXp"`
	}](t, env.Data)
	assert.Equal(t, 1, list.TotalCount)
	assert.Equal(t, 1, list.CompletedToday)
	assert.Equal(t, toggled.XPDelta, list.TotalXP)

	code, env = s.do(t, http.MethodGet, "/api/habits/heatmap?period=week", nil)
	require.Equal(t, http.StatusOK, code)
	heatmap := decode[struct {
		Data     map[string]int `json:"data"`
		Period   string         `json:"period"`
		MaxValue int            `json:"maxValue"`
	}](t, env.Data)
	assert.Equal(t, "week", heatmap.Period)
	assert.Equal(t, 1, heatmap.Data["2026-03-10"])
	assert.Equal(t, 1, heatmap.MaxValue)

	code, _ = s.do(t, http.MethodGet, "/api/habits/heatmap?period=decade", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(t, http.MethodPost, "/api/habits", map[string]interface{}{"name": "Run", "category": "sleep"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGoalRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	code, env := s.do(t, http.MethodPost, "/api/goals", map[string]interface{}{
		"title":    "Learn Go",
		"category": "learning",
		"deadline": testNow.Add(72 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, code)
	goal := decode[struct {
		ID       string `json:"id"`
		DaysLeft int    `json:"daysLeft"`
		Status   string `json:"status"`
	}](t, env.Data)
	assert.Equal(t, 3, goal.DaysLeft)
	assert.Equal(t, "active", goal.Status)

	code, env = s.do(t, http.MethodPost, "/api/goals/"+goal.ID+"/subtasks", map[string]string{"title": "Read the tour"})
	require.Equal(t, http.StatusCreated, code)
	withSubtask := decode[struct {
		Progress float64 `json:"progress"`
		Subtasks []struct {
			ID string `json:"id"`
		} `json:"subtasks"`
	}](t, env.Data)
	require.Len(t, withSubtask.Subtasks, 1)
	assert.Zero(t, withSubtask.Progress)

	subtaskPath := "/api/goals/" + goal.ID + "/subtasks/" + withSubtask.Subtasks[0].ID
	code, env = s.do(t, http.MethodPost, subtaskPath+"/toggle", nil)
	require.Equal(t, http.StatusOK, code)
	done := decode[struct {
		Progress float64 `json:"progress"`
	}](t, env.Data)
	assert.Equal(t, 100.0, done.Progress)

	code, _ = s.do(t, http.MethodPut, "/api/goals/"+goal.ID+"/status", map[string]string{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = s.do(t, http.MethodPut, "/api/goals/"+goal.ID+"/status", map[string]string{"status": "paused"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "paused", decode[struct {
		Status string `json:"status"`
	}](t, env.Data).Status)

	code, _ = s.do(t, http.MethodDelete, subtaskPath, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(t, http.MethodDelete, subtaskPath, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestJournalRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	code, env := s.do(t, http.MethodPut, "/api/journal", map[string]interface{}{"mood": 6})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Details, "mood")

	code, env = s.do(t, http.MethodPut, "/api/journal", map[string]interface{}{
		"mood":       4,
		"highlights": "Finished the draft",
	})
	require.Equal(t, http.StatusOK, code)
	entry := decode[struct {
		Date string `json:"date"`
		Mood int    `json:"mood"`
	}](t, env.Data)
	assert.Equal(t, "2026-03-10", entry.Date)
	assert.Equal(t, 4, entry.Mood)

	code, _ = s.do(t, http.MethodGet, "/api/journal/2026-03-10", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(t, http.MethodGet, "/api/journal/2026-03-09", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(t, http.MethodDelete, "/api/journal/2026-03-10", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestFocusTimerRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	code, _ := s.do(t, http.MethodPost, "/api/focus/timer/pause", nil)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = s.do(t, http.MethodPost, "/api/focus/timer/preset", map[string]int{"minutes": 17})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env := s.do(t, http.MethodPost, "/api/focus/timer/preset", map[string]int{"minutes": 45})
	require.Equal(t, http.StatusOK, code)
	state := decode[struct {
		Remaining string `json:"remaining"`
		Preset    int    `json:"preset"`
	}](t, env.Data)
	assert.Equal(t, 45, state.Preset)
	assert.Equal(t, "45:00", state.Remaining)

	code, _ = s.do(t, http.MethodPost, "/api/focus/timer/start", nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(t, http.MethodPost, "/api/focus/timer/start", nil)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = s.do(t, http.MethodPost, "/api/focus/timer/preset", map[string]int{"minutes": 25})
	assert.Equal(t, http.StatusConflict, code)

	code, env = s.do(t, http.MethodPost, "/api/focus/timer/reset", nil)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, decode[struct {
		Running bool `json:"running"`
	}](t, env.Data).Running)
}

func TestFocusTimerSettingsRoute(t *testing.T) {
	s := newTestServer(t, nil)

	code, _ := s.do(t, http.MethodPut, "/api/focus/timer/settings", map[string]int{
		"workMinutes":            50,
		"shortBreakMinutes":      0,
		"longBreakMinutes":       20,
		"sessionsUntilLongBreak": 2,
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env := s.do(t, http.MethodPut, "/api/focus/timer/settings", map[string]int{
		"workMinutes":            50,
		"shortBreakMinutes":      5,
		"longBreakMinutes":       20,
		"sessionsUntilLongBreak": 2,
	})
	require.Equal(t, http.StatusOK, code)
	state := decode[struct {
		Remaining              string `json:"remaining"`
		Preset                 int    `json:"preset"`
		SessionsUntilLongBreak int    `json:"sessionsUntilLongBreak"`
		Settings               struct {
			LongBreakMinutes int `json:"longBreakMinutes"`
		} `json:"settings"`
	}](t, env.Data)
	assert.Equal(t, "50:00", state.Remaining)
	assert.Equal(t, 50, state.Preset)
	assert.Equal(t, 2, state.SessionsUntilLongBreak)
	assert.Equal(t, 20, state.Settings.LongBreakMinutes)
}

func TestFocusNoteRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	code, _ := s.do(t, http.MethodGet, "/api/focus/notes", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, env := s.do(t, http.MethodPut, "/api/focus/notes", map[string]string{"content": "review flashcards"})
	require.Equal(t, http.StatusOK, code)
	type note struct {
		ID           string    `json:"id"`
		Content      string    `json:"content"`
		LastModified time.Time `json:"lastModified"`
	}
	saved := decode[note](t, env.Data)
	assert.True(t, testNow.Equal(saved.LastModified))

	code, _ = s.do(t, http.MethodPut, "/api/focus/notes", map[string]string{"content": "review flashcards, then chapter 4"})
	require.Equal(t, http.StatusOK, code)

	code, env = s.do(t, http.MethodGet, "/api/focus/notes", nil)
	require.Equal(t, http.StatusOK, code)
	got := decode[note](t, env.Data)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "review flashcards, then chapter 4", got.Content)
}

func TestFocusSessionRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	code, _ := s.do(t, http.MethodPost, "/api/focus/sessions", map[string]interface{}{"duration": 0})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(t, http.MethodPost, "/api/focus/sessions", map[string]interface{}{"duration": 30, "type": "study"})
	require.Equal(t, http.StatusCreated, code)

	code, env := s.do(t, http.MethodGet, "/api/focus/sessions", nil)
	require.Equal(t, http.StatusOK, code)
	list := decode[struct {
		Sessions          []json.RawMessage `json:"sessions"`
		TotalFocusMinutes int               `json:"totalFocusMinutes"`
	}](t, env.Data)
	assert.Len(t, list.Sessions, 1)
	assert.Equal(t, 30, list.TotalFocusMinutes)
}

func TestReminderRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	code, env := s.do(t, http.MethodPost, "/api/reminders", map[string]string{
		"title": "Stand up",
		"date":  "2026-03-10",
		"time":  "25:00",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "time must be HH:MM", env.Details["time"])

	code, env = s.do(t, http.MethodPost, "/api/reminders", map[string]string{
		"title":     "Stand up",
		"date":      "2026-03-10",
		"time":      "10:30",
		"recurring": "daily",
	})
	require.Equal(t, http.StatusCreated, code)
	reminder := decode[struct {
		ID string `json:"id"`
	}](t, env.Data)

	code, _ = s.do(t, http.MethodPost, "/api/reminders/"+reminder.ID+"/toggle", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(t, http.MethodDelete, "/api/reminders/"+reminder.ID, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestAssistantRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	code, _ := s.do(t, http.MethodPost, "/api/assistant/messages", map[string]string{"text": ""})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env := s.do(t, http.MethodPost, "/api/assistant/messages", map[string]string{"text": "Plan my morning routine"})
	require.Equal(t, http.StatusCreated, code)
	result := decode[struct {
		Reply struct {
			IsUser bool `json:"isUser"`
		} `json:"reply"`
		Tasks []json.RawMessage `json:"tasks"`
	}](t, env.Data)
	assert.False(t, result.Reply.IsUser)
	assert.NotEmpty(t, result.Tasks)

	code, env = s.do(t, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[struct {
		Tasks []json.RawMessage `json:"tasks"`
	}](t, env.Data).Tasks, len(result.Tasks))

	code, env = s.do(t, http.MethodPost, "/api/assistant/voice", map[string]string{"command": "show my habits"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "habits", decode[struct {
		Tab string `json:"tab"`
	}](t, env.Data).Tab)

	code, env = s.do(t, http.MethodGet, "/api/assistant/messages", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]json.RawMessage](t, env.Data), 2)

	code, _ = s.do(t, http.MethodDelete, "/api/assistant/messages", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestAssistantRateLimit(t *testing.T) {
	s := newLimitedTestServer(t, nil, middleware.NewMemoryRateLimiter(time.Hour, 1))

	code, _ := s.do(t, http.MethodPost, "/api/assistant/voice", map[string]string{"command": "show stats"})
	assert.Equal(t, http.StatusOK, code)

	code, env := s.do(t, http.MethodPost, "/api/assistant/voice", map[string]string{"command": "show stats"})
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Equal(t, "too many requests", env.Error)

	code, _ = s.do(t, http.MethodGet, "/api/assistant/messages", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestAnalyticsAndSettingsRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	code, env := s.do(t, http.MethodGet, "/api/analytics", nil)
	require.Equal(t, http.StatusOK, code)
	summary := decode[struct {
		TotalTasks   int               `json:"totalTasks"`
		WeeklyTrends []json.RawMessage `json:"weeklyTrends"`
	}](t, env.Data)
	assert.Zero(t, summary.TotalTasks)
	assert.Len(t, summary.WeeklyTrends, 7)

	code, _ = s.do(t, http.MethodGet, "/api/analytics/insights", nil)
	assert.Equal(t, http.StatusOK, code)

	code, env = s.do(t, http.MethodGet, "/api/settings/theme", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"theme":"light"}`, string(env.Data))

	code, env = s.do(t, http.MethodPost, "/api/settings/theme/toggle", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"theme":"dark"}`, string(env.Data))

	code, _ = s.do(t, http.MethodPut, "/api/settings/theme", map[string]string{"theme": "sepia"})
	assert.Equal(t, http.StatusBadRequest, code)
}
