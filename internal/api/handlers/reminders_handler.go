package handlers

import (
	"net/http"

	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/domain/reminders"
	"github.com/gin-gonic/gin"
)

// RemindersHandler handles HTTP requests for reminders
type RemindersHandler struct {
	service reminders.Service
}

// NewRemindersHandler creates a new RemindersHandler instance
func NewRemindersHandler(service reminders.Service) *RemindersHandler {
	return &RemindersHandler{service: service}
}

func (h *RemindersHandler) ListReminders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.service.ListReminders(c.Request.Context())})
}

// AddReminder godoc
// @Summary Schedule a reminder at a local date and HH:MM time
// @Tags reminders
// @Param reminder body dto.CreateReminderRequest true "Reminder"
// @Router /api/reminders [post]
func (h *RemindersHandler) AddReminder(c *gin.Context) {
	req, ok := bindRequest[dto.CreateReminderRequest](c)
	if !ok {
		return
	}

	reminder, err := h.service.AddReminder(c.Request.Context(), ToCreateReminderInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": reminder})
}

func (h *RemindersHandler) ToggleReminder(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "reminder")
	if !ok {
		return
	}

	reminder, err := h.service.ToggleReminder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reminder})
}

func (h *RemindersHandler) DeleteReminder(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "reminder")
	if !ok {
		return
	}

	if err := h.service.DeleteReminder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reminder deleted successfully"})
}
