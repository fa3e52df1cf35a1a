package handlers

import (
	"errors"
	"net/http"

	"github.com/focusflow/focusflow/internal/api/middleware"
	"github.com/focusflow/focusflow/internal/domain/assistant"
	"github.com/focusflow/focusflow/internal/domain/focus"
	"github.com/focusflow/focusflow/internal/domain/goals"
	"github.com/focusflow/focusflow/internal/domain/habits"
	"github.com/focusflow/focusflow/internal/domain/journal"
	"github.com/focusflow/focusflow/internal/domain/notes"
	"github.com/focusflow/focusflow/internal/domain/reminders"
	"github.com/focusflow/focusflow/internal/domain/settings"
	"github.com/focusflow/focusflow/internal/domain/tasks"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindRequest returns the body checked by the validation middleware, or binds
// it directly when the route was registered without one.
func bindRequest[T any](c *gin.Context) (*T, bool) {
	if validated, exists := c.Get(middleware.ValidatedModelKey); exists {
		req, ok := validated.(*T)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model type from validation"})
			return nil, false
		}
		return req, true
	}

	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &req, true
}

func bindQuery[T any](c *gin.Context) (*T, bool) {
	if validated, exists := c.Get(middleware.ValidatedQueryKey); exists {
		if req, ok := validated.(*T); ok {
			return req, true
		}
	}
	var req T
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return nil, false
	}
	return &req, true
}

func parseIDParam(c *gin.Context, param, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + what + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

var (
	notFoundErrors = []error{
		tasks.ErrTaskNotFound,
		habits.ErrHabitNotFound,
		goals.ErrGoalNotFound,
		goals.ErrSubtaskNotFound,
		journal.ErrEntryNotFound,
		reminders.ErrReminderNotFound,
		notes.ErrNoteNotFound,
	}
	badRequestErrors = []error{
		tasks.ErrInvalidInput,
		habits.ErrInvalidInput,
		goals.ErrInvalidInput,
		journal.ErrInvalidMood,
		journal.ErrInvalidDate,
		reminders.ErrInvalidInput,
		focus.ErrInvalidInput,
		focus.ErrPresetNotAllowed,
		focus.ErrInvalidSettings,
		notes.ErrNoteTooLong,
		assistant.ErrEmptyMessage,
		settings.ErrInvalidTheme,
	}
	conflictErrors = []error{
		focus.ErrTimerRunning,
		focus.ErrTimerNotRunning,
	}
)

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func errorStatus(err error) int {
	switch {
	case isAny(err, notFoundErrors):
		return http.StatusNotFound
	case isAny(err, badRequestErrors):
		return http.StatusBadRequest
	case isAny(err, conflictErrors):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
